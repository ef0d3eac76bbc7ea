package summary

import (
	"encoding/json"
	"fmt"

	"github.com/temirov/pluginwho/internal/contributors"
	"github.com/temirov/pluginwho/internal/repos/shared"
)

const (
	reportReadErrorTemplateConstant   = "unable to read report %s: %w"
	reportDecodeErrorTemplateConstant = "unable to decode report %s: %w"
)

// Reports holds the decoded census documents.
type Reports struct {
	Authors      []contributors.Author
	Repositories []contributors.RepositorySummary
	FirstCommits []contributors.RepositoryFirstCommit
}

// LoadReports reads and decodes the three census reports.
func LoadReports(fileSystem shared.FileSystem, paths contributors.OutputPaths) (Reports, error) {
	var reports Reports
	if loadError := loadReport(fileSystem, paths.Authors, &reports.Authors); loadError != nil {
		return Reports{}, loadError
	}
	if loadError := loadReport(fileSystem, paths.Repositories, &reports.Repositories); loadError != nil {
		return Reports{}, loadError
	}
	if loadError := loadReport(fileSystem, paths.Dates, &reports.FirstCommits); loadError != nil {
		return Reports{}, loadError
	}
	return reports, nil
}

func loadReport(fileSystem shared.FileSystem, path string, target any) error {
	content, readError := fileSystem.ReadFile(path)
	if readError != nil {
		return fmt.Errorf(reportReadErrorTemplateConstant, path, readError)
	}
	if decodeError := json.Unmarshal(content, target); decodeError != nil {
		return fmt.Errorf(reportDecodeErrorTemplateConstant, path, decodeError)
	}
	return nil
}
