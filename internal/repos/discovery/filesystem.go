package discovery

import (
	"fmt"
	"path/filepath"

	"github.com/temirov/pluginwho/internal/repos/filesystem"
	"github.com/temirov/pluginwho/internal/repos/shared"
)

const baseDirectoryReadErrorTemplateConstant = "unable to read plugin directory %s: %w"

// PluginDirectoryScanner locates git checkouts placed directly under a base directory.
type PluginDirectoryScanner struct {
	fileSystem shared.FileSystem
}

// NewPluginDirectoryScanner constructs a scanner; a nil filesystem falls back to the OS.
func NewPluginDirectoryScanner(fileSystem shared.FileSystem) *PluginDirectoryScanner {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	return &PluginDirectoryScanner{fileSystem: fileSystem}
}

// ScanRepositories returns the immediate subdirectories of baseDirectory that hold a .git directory.
// Ignored names are dropped before anything else is inspected. Results follow the listing order.
func (scanner *PluginDirectoryScanner) ScanRepositories(baseDirectory string, ignoredNames map[string]struct{}) ([]shared.Repository, error) {
	directoryEntries, readError := scanner.fileSystem.ReadDir(baseDirectory)
	if readError != nil {
		return nil, fmt.Errorf(baseDirectoryReadErrorTemplateConstant, baseDirectory, readError)
	}

	repositories := make([]shared.Repository, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if _, ignored := ignoredNames[entryName]; ignored {
			continue
		}

		entryPath := filepath.Join(baseDirectory, entryName)
		if !scanner.isDirectory(entryPath) {
			continue
		}
		if !scanner.isDirectory(filepath.Join(entryPath, shared.GitMetadataDirectoryNameConstant)) {
			continue
		}

		repositories = append(repositories, shared.Repository{Name: entryName, Path: entryPath})
	}

	return repositories, nil
}

func (scanner *PluginDirectoryScanner) isDirectory(path string) bool {
	fileInfo, statError := scanner.fileSystem.Stat(path)
	if statError != nil {
		return false
	}
	return fileInfo.IsDir()
}
