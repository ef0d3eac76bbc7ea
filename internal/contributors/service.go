package contributors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/temirov/pluginwho/internal/execshell"
	"github.com/temirov/pluginwho/internal/repos/shared"
)

const (
	scanErrorTemplateConstant          = "unable to scan plugin directory %s: %w"
	historyStageErrorTemplateConstant  = "unable to collect contributor history: %w"
	datingStageErrorTemplateConstant   = "unable to collect first commit dates: %w"
	censusStartedMessageConstant       = "Starting contributor census"
	repositoriesScannedMessageConstant = "Scanned plugin directories"
	gitFailureSkippedMessageConstant   = "Git reported an error; treating repository output as empty"
	gitTimeoutSkippedMessageConstant   = "Git timed out; treating repository output as empty"
	unparseableDateMessageConstant     = "First commit date could not be parsed"
	reportWrittenMessageConstant       = "Wrote census report"
	censusCompletedMessageConstant     = "Contributor census completed"
	logFieldBaseDirectoryConstant      = "base_directory"
	logFieldRepositoryCountConstant    = "repository_count"
	logFieldAuthorCountConstant        = "author_count"
	logFieldRepositoryConstant         = "repository"
	logFieldWorkersConstant            = "workers"
	logFieldPathConstant               = "path"
	logFieldRecordCountConstant        = "record_count"
	logFieldRawDateConstant            = "date"
	logFieldTimeoutConstant            = "timeout"
	logFieldDurationConstant           = "duration"
)

// HistorySource reads the raw git output consumed by the census.
type HistorySource interface {
	ContributorSummary(executionContext context.Context, repositoryPath string) (string, error)
	FirstCommitDate(executionContext context.Context, repositoryPath string) (string, error)
}

// Service coordinates scanning, history aggregation, dating, and report writing.
type Service struct {
	scanner      shared.RepositoryScanner
	history      HistorySource
	reportWriter *ReportWriter
	logger       *zap.Logger
	clock        shared.Clock
}

// NewService constructs a Service using the provided dependencies.
func NewService(scanner shared.RepositoryScanner, history HistorySource, fileSystem shared.FileSystem, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		scanner:      scanner,
		history:      history,
		reportWriter: NewReportWriter(fileSystem),
		logger:       logger,
		clock:        shared.SystemClock{},
	}
}

// WithClock replaces the clock used to time the census.
func (service *Service) WithClock(clock shared.Clock) *Service {
	if clock != nil {
		service.clock = clock
	}
	return service
}

// Run performs a census of options.BaseDirectory and writes the three reports.
//
// The authors and repositories reports are written before dating starts, so a
// failure while dating leaves them in place.
func (service *Service) Run(executionContext context.Context, options CensusOptions) (CensusResult, error) {
	startedAt := service.clock.Now()
	service.logger.Info(censusStartedMessageConstant,
		zap.String(logFieldBaseDirectoryConstant, options.BaseDirectory),
		zap.Int(logFieldWorkersConstant, options.Workers),
	)

	repositories, scanError := service.scanner.ScanRepositories(options.BaseDirectory, options.Tables.Ignored)
	if scanError != nil {
		return CensusResult{}, fmt.Errorf(scanErrorTemplateConstant, options.BaseDirectory, scanError)
	}
	service.logger.Info(repositoriesScannedMessageConstant, zap.Int(logFieldRepositoryCountConstant, len(repositories)))

	contributorSummaries, historyError := runOrdered(executionContext, options.Workers, repositories, func(taskContext context.Context, repository shared.Repository) (string, error) {
		return service.readTolerantly(taskContext, options.CommandTimeout, repository, service.history.ContributorSummary)
	})
	if historyError != nil {
		return CensusResult{}, fmt.Errorf(historyStageErrorTemplateConstant, historyError)
	}

	aggregator := NewHistoryAggregator(options.Tables.Aliases)
	for repositoryIndex, repository := range repositories {
		aggregator.AddRepository(repository.Name, contributorSummaries[repositoryIndex])
	}

	result := CensusResult{
		Authors:      aggregator.Authors(),
		Repositories: aggregator.Repositories(),
	}

	if writeError := service.reportWriter.WriteAuthors(options.Outputs.Authors, result.Authors); writeError != nil {
		return result, writeError
	}
	service.logReportWritten(options.Outputs.Authors, len(result.Authors))

	if writeError := service.reportWriter.WriteRepositories(options.Outputs.Repositories, result.Repositories); writeError != nil {
		return result, writeError
	}
	service.logReportWritten(options.Outputs.Repositories, len(result.Repositories))

	rawDates, datingError := runOrdered(executionContext, options.Workers, repositories, func(taskContext context.Context, repository shared.Repository) (string, error) {
		return service.readTolerantly(taskContext, options.CommandTimeout, repository, service.history.FirstCommitDate)
	})
	if datingError != nil {
		return result, fmt.Errorf(datingStageErrorTemplateConstant, datingError)
	}

	firstCommits := make([]RepositoryFirstCommit, 0, len(repositories))
	for repositoryIndex, repository := range repositories {
		record := NewRepositoryFirstCommit(repository.Name, rawDates[repositoryIndex])
		if record.Time == 0 {
			service.logger.Debug(unparseableDateMessageConstant,
				zap.String(logFieldRepositoryConstant, repository.Name),
				zap.String(logFieldRawDateConstant, record.Date),
			)
		}
		firstCommits = append(firstCommits, record)
	}
	result.FirstCommits = OrderFirstCommits(firstCommits)

	if writeError := service.reportWriter.WriteFirstCommits(options.Outputs.Dates, result.FirstCommits); writeError != nil {
		return result, writeError
	}
	service.logReportWritten(options.Outputs.Dates, len(result.FirstCommits))

	service.logger.Info(censusCompletedMessageConstant,
		zap.Int(logFieldRepositoryCountConstant, len(repositories)),
		zap.Int(logFieldAuthorCountConstant, len(result.Authors)),
		zap.Duration(logFieldDurationConstant, service.clock.Now().Sub(startedAt)),
	)
	return result, nil
}

type historyRead func(executionContext context.Context, repositoryPath string) (string, error)

// readTolerantly runs read for one repository. Git exiting non-zero and an
// expired per-repository timeout yield empty output; launch failures and
// cancellation of the census itself are returned.
func (service *Service) readTolerantly(executionContext context.Context, commandTimeout time.Duration, repository shared.Repository, read historyRead) (string, error) {
	readContext := executionContext
	if commandTimeout > 0 {
		var cancel context.CancelFunc
		readContext, cancel = context.WithTimeout(executionContext, commandTimeout)
		defer cancel()
	}

	output, readError := read(readContext, repository.Path)
	if readError == nil {
		return output, nil
	}

	var commandFailure execshell.CommandFailedError
	if errors.As(readError, &commandFailure) {
		service.logger.Warn(gitFailureSkippedMessageConstant,
			zap.String(logFieldRepositoryConstant, repository.Name),
			zap.Error(readError),
		)
		return "", nil
	}

	if commandTimeout > 0 && errors.Is(readError, context.DeadlineExceeded) && executionContext.Err() == nil {
		service.logger.Warn(gitTimeoutSkippedMessageConstant,
			zap.String(logFieldRepositoryConstant, repository.Name),
			zap.Duration(logFieldTimeoutConstant, commandTimeout),
		)
		return "", nil
	}

	return "", readError
}

func (service *Service) logReportWritten(path string, recordCount int) {
	service.logger.Info(reportWrittenMessageConstant,
		zap.String(logFieldPathConstant, path),
		zap.Int(logFieldRecordCountConstant, recordCount),
	)
}
