// Package testsupport builds real git checkouts for tests that exercise the git executable.
package testsupport

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	gitExecutableConstant             = "git"
	gitMissingSkipMessageConstant     = "git executable not available"
	gitInitSubcommandConstant         = "init"
	gitQuietFlagConstant              = "-q"
	gitCommitSubcommandConstant       = "commit"
	gitAllowEmptyFlagConstant         = "--allow-empty"
	gitMessageFlagConstant            = "-m"
	gitDirectoryFlagConstant          = "-C"
	commitMessageConstant             = "plugin change"
	authorEmailDomainConstant         = "@plugins.invalid"
	directoryPermissionsConstant      = 0o755
	gitConfigGlobalVariableConstant   = "GIT_CONFIG_GLOBAL"
	gitConfigNoSystemVariableConstant = "GIT_CONFIG_NOSYSTEM"
	gitTerminalPromptVariableConstant = "GIT_TERMINAL_PROMPT"
	gitAuthorNameVariableConstant     = "GIT_AUTHOR_NAME"
	gitAuthorEmailVariableConstant    = "GIT_AUTHOR_EMAIL"
	gitAuthorDateVariableConstant     = "GIT_AUTHOR_DATE"
	gitCommitterNameVariableConstant  = "GIT_COMMITTER_NAME"
	gitCommitterEmailVariableConstant = "GIT_COMMITTER_EMAIL"
	gitCommitterDateVariableConstant  = "GIT_COMMITTER_DATE"
	enabledEnvironmentValueConstant   = "1"
	disabledEnvironmentValueConstant  = "0"
	environmentAssignmentConstant     = "="
)

// Commit describes one empty commit. Date uses git's internal "<unix seconds> <offset>" form.
type Commit struct {
	AuthorName string
	Date       string
}

// RequireGit skips the test when git is not installed and isolates git from user and system configuration.
func RequireGit(testInstance *testing.T) {
	testInstance.Helper()

	if _, lookupError := exec.LookPath(gitExecutableConstant); lookupError != nil {
		testInstance.Skip(gitMissingSkipMessageConstant)
	}

	testInstance.Setenv(gitConfigGlobalVariableConstant, os.DevNull)
	testInstance.Setenv(gitConfigNoSystemVariableConstant, enabledEnvironmentValueConstant)
	testInstance.Setenv(gitTerminalPromptVariableConstant, disabledEnvironmentValueConstant)
}

// InitRepository creates directory and initializes an empty repository inside it.
func InitRepository(testInstance *testing.T, directory string) string {
	testInstance.Helper()

	require.NoError(testInstance, os.MkdirAll(directory, directoryPermissionsConstant))
	runGit(testInstance, nil, gitInitSubcommandConstant, gitQuietFlagConstant, directory)
	return directory
}

// CreateRepository initializes a repository under parent and records commits in order.
func CreateRepository(testInstance *testing.T, parent string, name string, commits ...Commit) string {
	testInstance.Helper()

	repositoryPath := InitRepository(testInstance, filepath.Join(parent, name))
	for _, commit := range commits {
		authorEmail := commit.AuthorName + authorEmailDomainConstant
		environment := []string{
			gitAuthorNameVariableConstant + environmentAssignmentConstant + commit.AuthorName,
			gitAuthorEmailVariableConstant + environmentAssignmentConstant + authorEmail,
			gitAuthorDateVariableConstant + environmentAssignmentConstant + commit.Date,
			gitCommitterNameVariableConstant + environmentAssignmentConstant + commit.AuthorName,
			gitCommitterEmailVariableConstant + environmentAssignmentConstant + authorEmail,
			gitCommitterDateVariableConstant + environmentAssignmentConstant + commit.Date,
		}
		runGit(testInstance, environment, gitDirectoryFlagConstant, repositoryPath, gitCommitSubcommandConstant, gitQuietFlagConstant, gitAllowEmptyFlagConstant, gitMessageFlagConstant, commitMessageConstant)
	}
	return repositoryPath
}

func runGit(testInstance *testing.T, environment []string, arguments ...string) {
	testInstance.Helper()

	command := exec.Command(gitExecutableConstant, arguments...)
	command.Env = append(os.Environ(), environment...)
	output, runError := command.CombinedOutput()
	require.NoError(testInstance, runError, string(output))
}
