package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/pluginwho/internal/execshell"
)

const (
	gitLogSubcommandConstant             = "log"
	gitShortlogSubcommandConstant        = "shortlog"
	gitShortPrettyFlagConstant           = "--pretty=short"
	gitSummaryNumberedFlagConstant       = "-sn"
	gitReverseFlagConstant               = "--reverse"
	gitAuthorDateFormatFlagConstant      = "--format=format:%ad"
	gitPagerEnvironmentVariableConstant  = "GIT_PAGER"
	pagerEnvironmentVariableConstant     = "PAGER"
	lineSeparatorConstant                = "\n"
	executorNotConfiguredMessageConstant = "git executor not configured"
	historyReadErrorTemplateConstant     = "read history of %s: %w"
	shortlogErrorTemplateConstant        = "summarize contributors of %s: %w"
	firstCommitErrorTemplateConstant     = "read first commit date of %s: %w"
)

// ErrGitExecutorNotConfigured indicates a HistoryReader was constructed without an executor.
var ErrGitExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// GitExecutor runs git commands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// HistoryReader extracts contributor summaries and first commit dates from repositories.
type HistoryReader struct {
	executor GitExecutor
}

// NewHistoryReader constructs a HistoryReader around the provided executor.
func NewHistoryReader(executor GitExecutor) (*HistoryReader, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &HistoryReader{executor: executor}, nil
}

// ContributorSummary returns the `git shortlog -sn` output for the repository.
//
// The short log is produced by git log and fed to shortlog on standard input
// with the pager variables cleared; shortlog prints nothing under cron otherwise.
func (reader *HistoryReader) ContributorSummary(executionContext context.Context, repositoryPath string) (string, error) {
	logResult, logError := reader.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitLogSubcommandConstant, gitShortPrettyFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if logError != nil {
		return "", fmt.Errorf(historyReadErrorTemplateConstant, repositoryPath, logError)
	}

	if len(strings.TrimSpace(logResult.StandardOutput)) == 0 {
		return "", nil
	}

	shortlogResult, shortlogError := reader.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitShortlogSubcommandConstant, gitSummaryNumberedFlagConstant},
		WorkingDirectory: repositoryPath,
		EnvironmentVariables: map[string]string{
			gitPagerEnvironmentVariableConstant: "",
			pagerEnvironmentVariableConstant:    "",
		},
		StandardInput: []byte(logResult.StandardOutput),
	})
	if shortlogError != nil {
		return "", fmt.Errorf(shortlogErrorTemplateConstant, repositoryPath, shortlogError)
	}

	return shortlogResult.StandardOutput, nil
}

// FirstCommitDate returns the trimmed author date of the oldest commit, or an empty string for an empty log.
func (reader *HistoryReader) FirstCommitDate(executionContext context.Context, repositoryPath string) (string, error) {
	logResult, logError := reader.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitLogSubcommandConstant, gitReverseFlagConstant, gitAuthorDateFormatFlagConstant},
		WorkingDirectory: repositoryPath,
	})
	if logError != nil {
		return "", fmt.Errorf(firstCommitErrorTemplateConstant, repositoryPath, logError)
	}

	firstLine, _, _ := strings.Cut(logResult.StandardOutput, lineSeparatorConstant)
	return strings.TrimSpace(firstLine), nil
}
