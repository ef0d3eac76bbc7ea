package summary

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/temirov/pluginwho/internal/contributors"
	"github.com/temirov/pluginwho/internal/repos/dependencies"
	"github.com/temirov/pluginwho/internal/repos/shared"
	pathutils "github.com/temirov/pluginwho/internal/utils/path"
)

const (
	commandUseConstant                        = "summary"
	commandShortDescriptionConstant           = "Print census reports as tables"
	commandLongDescriptionConstant            = "summary reads the JSON reports written by the last census run and prints the top authors, the plugins with the most contributors, and the oldest plugins."
	limitFlagNameConstant                     = "limit"
	limitFlagUsageConstant                    = "Rows per table (0 prints every row)"
	colorFlagNameConstant                     = "color"
	colorFlagUsageConstant                    = "Colorize tables: auto, always, or never"
	authorsOutputFlagNameConstant             = "authors-output"
	authorsOutputFlagUsageConstant            = "Authors report to read"
	repositoriesOutputFlagNameConstant        = "repositories-output"
	repositoriesOutputFlagUsageConstant       = "Repositories report to read"
	datesOutputFlagNameConstant               = "dates-output"
	datesOutputFlagUsageConstant              = "First commit dates report to read"
	configurationInvalidErrorTemplateConstant = "invalid summary configuration: %w"
	pathResolutionErrorTemplateConstant       = "unable to resolve report path: %w"
	reportsLoadedMessageConstant              = "Loaded census reports"
	logFieldAuthorCountConstant               = "author_count"
	logFieldRepositoryCountConstant           = "repository_count"
)

// LoggerProvider yields the logger used by the command.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider yields the summary configuration.
type ConfigurationProvider func() Configuration

// ReportPathsProvider yields the report locations configured for the census.
type ReportPathsProvider func() contributors.OutputConfiguration

// TerminalDetector reports whether writer is an interactive terminal.
type TerminalDetector func(writer io.Writer) bool

// CommandBuilder assembles the summary command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	ReportPathsProvider   ReportPathsProvider
	TerminalDetector      TerminalDetector
	FileSystem            shared.FileSystem
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs the summary command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	defaults := DefaultConfiguration()
	reportDefaults := contributors.DefaultConfiguration().Outputs
	command.Flags().Int(limitFlagNameConstant, defaults.Limit, limitFlagUsageConstant)
	command.Flags().String(colorFlagNameConstant, defaults.Color, colorFlagUsageConstant)
	command.Flags().String(authorsOutputFlagNameConstant, reportDefaults.Authors, authorsOutputFlagUsageConstant)
	command.Flags().String(repositoriesOutputFlagNameConstant, reportDefaults.Repositories, repositoriesOutputFlagUsageConstant)
	command.Flags().String(datesOutputFlagNameConstant, reportDefaults.Dates, datesOutputFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	logger := builder.resolveLogger()

	configuration, configurationError := builder.resolveConfiguration(command)
	if configurationError != nil {
		return configurationError
	}

	reportPaths, pathsError := builder.resolveReportPaths(command)
	if pathsError != nil {
		return pathsError
	}

	reports, loadError := LoadReports(dependencies.ResolveFileSystem(builder.FileSystem), reportPaths)
	if loadError != nil {
		return loadError
	}
	logger.Debug(reportsLoadedMessageConstant,
		zap.Int(logFieldAuthorCountConstant, len(reports.Authors)),
		zap.Int(logFieldRepositoryCountConstant, len(reports.Repositories)),
	)

	writer := command.OutOrStdout()
	renderer := NewTableRenderer(writer, builder.colorsEnabled(configuration.ColorMode(), writer))
	return renderer.Render(reports, configuration.Limit)
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) (Configuration, error) {
	configuration := DefaultConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	flagSet := command.Flags()
	if flagSet.Changed(limitFlagNameConstant) {
		configuration.Limit, _ = flagSet.GetInt(limitFlagNameConstant)
	}
	if flagSet.Changed(colorFlagNameConstant) {
		configuration.Color, _ = flagSet.GetString(colorFlagNameConstant)
	}

	if validationError := configuration.Validate(); validationError != nil {
		return Configuration{}, fmt.Errorf(configurationInvalidErrorTemplateConstant, validationError)
	}
	return configuration, nil
}

func (builder *CommandBuilder) resolveReportPaths(command *cobra.Command) (contributors.OutputPaths, error) {
	configuredPaths := contributors.DefaultConfiguration().Outputs
	if builder.ReportPathsProvider != nil {
		configuredPaths = builder.ReportPathsProvider()
	}

	flagSet := command.Flags()
	if flagSet.Changed(authorsOutputFlagNameConstant) {
		configuredPaths.Authors, _ = flagSet.GetString(authorsOutputFlagNameConstant)
	}
	if flagSet.Changed(repositoriesOutputFlagNameConstant) {
		configuredPaths.Repositories, _ = flagSet.GetString(repositoriesOutputFlagNameConstant)
	}
	if flagSet.Changed(datesOutputFlagNameConstant) {
		configuredPaths.Dates, _ = flagSet.GetString(datesOutputFlagNameConstant)
	}

	homeExpander := builder.HomeExpander
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}

	resolvedPaths := make([]string, 0, 3)
	for _, configuredPath := range []string{configuredPaths.Authors, configuredPaths.Repositories, configuredPaths.Dates} {
		resolvedPath, resolveError := homeExpander.ResolveAbsolute(configuredPath)
		if resolveError != nil {
			return contributors.OutputPaths{}, fmt.Errorf(pathResolutionErrorTemplateConstant, resolveError)
		}
		resolvedPaths = append(resolvedPaths, resolvedPath)
	}

	return contributors.OutputPaths{
		Authors:      resolvedPaths[0],
		Repositories: resolvedPaths[1],
		Dates:        resolvedPaths[2],
	}, nil
}

func (builder *CommandBuilder) colorsEnabled(mode ColorMode, writer io.Writer) bool {
	switch mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	}
	detector := builder.TerminalDetector
	if detector == nil {
		detector = IsTerminal
	}
	return detector(writer)
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

// IsTerminal reports whether writer is a file attached to a terminal.
func IsTerminal(writer io.Writer) bool {
	file, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
