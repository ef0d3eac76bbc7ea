package shared

import (
	"context"
	"io/fs"
	"time"

	"github.com/temirov/pluginwho/internal/execshell"
)

const (
	// GitMetadataDirectoryNameConstant marks a directory as a git working tree.
	GitMetadataDirectoryNameConstant = ".git"
)

// Repository identifies a scanned plugin checkout.
type Repository struct {
	Name string
	Path string
}

// Clock abstracts time acquisition for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time source.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FileSystem exposes the filesystem operations required by the census.
type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// GitExecutor exposes the subset of shell execution used by repository services.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryScanner lists the plugin checkouts directly under a base directory.
type RepositoryScanner interface {
	ScanRepositories(baseDirectory string, ignoredNames map[string]struct{}) ([]Repository, error)
}
