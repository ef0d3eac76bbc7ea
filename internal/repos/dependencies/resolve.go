package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/pluginwho/internal/execshell"
	"github.com/temirov/pluginwho/internal/repos/discovery"
	"github.com/temirov/pluginwho/internal/repos/filesystem"
	"github.com/temirov/pluginwho/internal/repos/shared"
)

// ResolveRepositoryScanner returns the provided scanner or a filesystem-backed default.
func ResolveRepositoryScanner(existing shared.RepositoryScanner, fileSystem shared.FileSystem) shared.RepositoryScanner {
	if existing != nil {
		return existing
	}
	return discovery.NewPluginDirectoryScanner(fileSystem)
}

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing shared.FileSystem) shared.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
func ResolveGitExecutor(existing shared.GitExecutor, logger *zap.Logger, observers ...execshell.CommandEventObserver) (shared.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, observers...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}
