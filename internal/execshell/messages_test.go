package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForHistoryLog(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"log", "--pretty=short"},
			WorkingDirectory: "/home/user/lazy/telescope.nvim",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Reading commit history in /home/user/lazy/telescope.nvim", message)
}

func TestBuildFailureMessageForFirstCommitLookupIncludesStandardError(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"log", "--reverse", "--format=format:%ad"},
			WorkingDirectory: "/workspace/empty",
		},
	}

	message := formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 128, StandardError: "fatal: your current branch does not have any commits yet\n"})

	require.Equal(t, "Failed to look up first commit in /workspace/empty (exit code 128: fatal: your current branch does not have any commits yet)", message)
}

func TestBuildSuccessMessageForShortlogWithoutWorkingDirectory(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandGit,
		Details: CommandDetails{Arguments: []string{"shortlog", "-sn"}},
	}

	message := formatter.BuildSuccessMessage(command)

	require.Equal(t, "Summarized contributors in current directory", message)
}

func TestBuildExecutionFailureMessageFallsBackToGenericLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"rev-parse", "HEAD"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildExecutionFailureMessage(command, errors.New("signal: killed"))

	require.Equal(t, "git rev-parse HEAD (in /workspace/repo) failed: signal: killed", message)
}
