package summary_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/pluginwho/internal/contributors"
	"github.com/temirov/pluginwho/internal/repos/filesystem"
	"github.com/temirov/pluginwho/internal/summary"
)

func writeReportFixtures(testInstance *testing.T, directory string) contributors.OutputPaths {
	testInstance.Helper()

	paths := contributors.OutputPaths{
		Authors:      filepath.Join(directory, "who.json"),
		Repositories: filepath.Join(directory, "repos.json"),
		Dates:        filepath.Join(directory, "who-date.json"),
	}
	require.NoError(testInstance, os.WriteFile(paths.Authors, []byte(`[{"name":"phanium","repos":{"fzf-lua":7},"repo_count":1,"commit_count":7}]`), 0o644))
	require.NoError(testInstance, os.WriteFile(paths.Repositories, []byte(`[{"name":"fzf-lua","contributors":1}]`), 0o644))
	require.NoError(testInstance, os.WriteFile(paths.Dates, []byte(`[{"name":"fzf-lua","date":"Fri Jan 31 10:39:15 2014 -0300","time":1391175555}]`), 0o644))
	return paths
}

func TestLoadReportsDecodesCensusDocuments(testInstance *testing.T) {
	paths := writeReportFixtures(testInstance, testInstance.TempDir())

	reports, loadError := summary.LoadReports(filesystem.OSFileSystem{}, paths)
	require.NoError(testInstance, loadError)

	require.Equal(testInstance, []contributors.Author{{Name: "phanium", Repositories: map[string]int{"fzf-lua": 7}, RepositoryCount: 1, CommitCount: 7}}, reports.Authors)
	require.Equal(testInstance, []contributors.RepositorySummary{{Name: "fzf-lua", Contributors: 1}}, reports.Repositories)
	require.Equal(testInstance, []contributors.RepositoryFirstCommit{{Name: "fzf-lua", Date: "Fri Jan 31 10:39:15 2014 -0300", Time: 1391175555}}, reports.FirstCommits)
}

func TestLoadReportsFailures(testInstance *testing.T) {
	directory := testInstance.TempDir()
	paths := writeReportFixtures(testInstance, directory)

	missingPaths := paths
	missingPaths.Dates = filepath.Join(directory, "missing.json")
	_, missingError := summary.LoadReports(filesystem.OSFileSystem{}, missingPaths)
	require.ErrorIs(testInstance, missingError, os.ErrNotExist)

	require.NoError(testInstance, os.WriteFile(paths.Repositories, []byte("not json"), 0o644))
	_, decodeError := summary.LoadReports(filesystem.OSFileSystem{}, paths)
	require.Error(testInstance, decodeError)
	require.Contains(testInstance, decodeError.Error(), paths.Repositories)
}
