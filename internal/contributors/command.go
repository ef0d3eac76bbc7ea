package contributors

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/pluginwho/internal/execshell"
	"github.com/temirov/pluginwho/internal/gitrepo"
	"github.com/temirov/pluginwho/internal/repos/dependencies"
	"github.com/temirov/pluginwho/internal/repos/shared"
	"github.com/temirov/pluginwho/internal/ui"
	"github.com/temirov/pluginwho/internal/utils"
	pathutils "github.com/temirov/pluginwho/internal/utils/path"
)

const (
	commandUseConstant                        = "census"
	commandShortDescriptionConstant           = "Summarize plugin contributors and first commit dates"
	commandLongDescriptionConstant            = "census scans every git checkout under the plugin directory, tallies commits per author and contributors per repository, dates each repository by its oldest commit, and writes three JSON reports."
	baseDirectoryFlagNameConstant             = "base-dir"
	baseDirectoryFlagUsageConstant            = "Directory holding the plugin checkouts"
	tablesFlagNameConstant                    = "tables"
	tablesFlagUsageConstant                   = "YAML file with author aliases and ignored directories (replaces the built-in tables)"
	authorsOutputFlagNameConstant             = "authors-output"
	authorsOutputFlagUsageConstant            = "Destination of the authors report"
	repositoriesOutputFlagNameConstant        = "repositories-output"
	repositoriesOutputFlagUsageConstant       = "Destination of the repositories report"
	datesOutputFlagNameConstant               = "dates-output"
	datesOutputFlagUsageConstant              = "Destination of the first commit dates report"
	workersFlagNameConstant                   = "workers"
	workersFlagUsageConstant                  = "Number of repositories inspected concurrently"
	configurationInvalidErrorTemplateConstant = "invalid census configuration: %w"
	pathResolutionErrorTemplateConstant       = "unable to resolve census path: %w"
	configurationSourcesMessageConstant       = "Census configuration sources"
	logFieldConfigurationFileConstant         = "config_file"
	logFieldEnvironmentFilesConstant          = "environment_files"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current census configuration.
type ConfigurationProvider func() Configuration

// HumanReadableLoggingProvider reports whether console event logging is enabled.
type HumanReadableLoggingProvider func() bool

// CommandBuilder assembles the census cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        ConfigurationProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	Scanner                      shared.RepositoryScanner
	GitExecutor                  shared.GitExecutor
	FileSystem                   shared.FileSystem
	HomeExpander                 *pathutils.HomeExpander
}

// Build constructs the census command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.Run,
	}

	defaults := DefaultConfiguration()
	command.Flags().String(baseDirectoryFlagNameConstant, defaults.BaseDirectory, baseDirectoryFlagUsageConstant)
	command.Flags().String(tablesFlagNameConstant, defaults.TablesFile, tablesFlagUsageConstant)
	command.Flags().String(authorsOutputFlagNameConstant, defaults.Outputs.Authors, authorsOutputFlagUsageConstant)
	command.Flags().String(repositoriesOutputFlagNameConstant, defaults.Outputs.Repositories, repositoriesOutputFlagUsageConstant)
	command.Flags().String(datesOutputFlagNameConstant, defaults.Outputs.Dates, datesOutputFlagUsageConstant)
	command.Flags().Int(workersFlagNameConstant, defaults.Workers, workersFlagUsageConstant)

	return command, nil
}

// Run executes the census for the provided command.
// Flags absent from the command leave the configured values untouched.
func (builder *CommandBuilder) Run(command *cobra.Command, arguments []string) error {
	logger := builder.resolveLogger()
	builder.logConfigurationSources(command, logger)

	configuration, configurationError := builder.resolveConfiguration(command)
	if configurationError != nil {
		return configurationError
	}

	fileSystem := dependencies.ResolveFileSystem(builder.FileSystem)

	options, optionsError := builder.buildOptions(configuration, fileSystem)
	if optionsError != nil {
		return optionsError
	}

	gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, builder.resolveEventObserver(logger))
	if executorError != nil {
		return executorError
	}

	historyReader, readerError := gitrepo.NewHistoryReader(gitExecutor)
	if readerError != nil {
		return readerError
	}

	scanner := dependencies.ResolveRepositoryScanner(builder.Scanner, fileSystem)
	service := NewService(scanner, historyReader, fileSystem, logger)

	_, runError := service.Run(command.Context(), options)
	return runError
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) (Configuration, error) {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	if command != nil {
		flagSet := command.Flags()
		if flagSet.Changed(baseDirectoryFlagNameConstant) {
			configuration.BaseDirectory, _ = flagSet.GetString(baseDirectoryFlagNameConstant)
		}
		if flagSet.Changed(tablesFlagNameConstant) {
			configuration.TablesFile, _ = flagSet.GetString(tablesFlagNameConstant)
		}
		if flagSet.Changed(authorsOutputFlagNameConstant) {
			configuration.Outputs.Authors, _ = flagSet.GetString(authorsOutputFlagNameConstant)
		}
		if flagSet.Changed(repositoriesOutputFlagNameConstant) {
			configuration.Outputs.Repositories, _ = flagSet.GetString(repositoriesOutputFlagNameConstant)
		}
		if flagSet.Changed(datesOutputFlagNameConstant) {
			configuration.Outputs.Dates, _ = flagSet.GetString(datesOutputFlagNameConstant)
		}
		if flagSet.Changed(workersFlagNameConstant) {
			configuration.Workers, _ = flagSet.GetInt(workersFlagNameConstant)
		}
	}

	configuration = configuration.Sanitize()
	if validationError := configuration.Validate(); validationError != nil {
		return Configuration{}, fmt.Errorf(configurationInvalidErrorTemplateConstant, validationError)
	}
	return configuration, nil
}

func (builder *CommandBuilder) buildOptions(configuration Configuration, fileSystem shared.FileSystem) (CensusOptions, error) {
	homeExpander := builder.HomeExpander
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}

	resolvedPaths := make([]string, 0, 4)
	for _, configuredPath := range []string{configuration.BaseDirectory, configuration.Outputs.Authors, configuration.Outputs.Repositories, configuration.Outputs.Dates} {
		resolvedPath, resolveError := homeExpander.ResolveAbsolute(configuredPath)
		if resolveError != nil {
			return CensusOptions{}, fmt.Errorf(pathResolutionErrorTemplateConstant, resolveError)
		}
		resolvedPaths = append(resolvedPaths, resolvedPath)
	}

	tablesPath := configuration.TablesFile
	if len(tablesPath) > 0 {
		resolvedTablesPath, resolveError := homeExpander.ResolveAbsolute(tablesPath)
		if resolveError != nil {
			return CensusOptions{}, fmt.Errorf(pathResolutionErrorTemplateConstant, resolveError)
		}
		tablesPath = resolvedTablesPath
	}

	tables, tablesError := LoadTables(fileSystem, tablesPath)
	if tablesError != nil {
		return CensusOptions{}, tablesError
	}

	return CensusOptions{
		BaseDirectory: resolvedPaths[0],
		Tables:        tables,
		Outputs: OutputPaths{
			Authors:      resolvedPaths[1],
			Repositories: resolvedPaths[2],
			Dates:        resolvedPaths[3],
		},
		Workers:        configuration.Workers,
		CommandTimeout: configuration.CommandTimeout,
	}, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveEventObserver(logger *zap.Logger) execshell.CommandEventObserver {
	if builder.HumanReadableLoggingProvider == nil || !builder.HumanReadableLoggingProvider() {
		return nil
	}
	return ui.NewConsoleCommandEventLogger(logger)
}

func (builder *CommandBuilder) logConfigurationSources(command *cobra.Command, logger *zap.Logger) {
	if command == nil {
		return
	}
	loadedConfiguration, available := utils.NewCommandContextAccessor().LoadedConfiguration(command.Context())
	if !available {
		return
	}
	logger.Debug(configurationSourcesMessageConstant,
		zap.String(logFieldConfigurationFileConstant, loadedConfiguration.ConfigFileUsed),
		zap.Strings(logFieldEnvironmentFilesConstant, loadedConfiguration.EnvironmentFilesLoaded),
	)
}
