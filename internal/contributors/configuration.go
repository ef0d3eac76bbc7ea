package contributors

import (
	"errors"
	"strings"
	"time"
)

const (
	baseDirectoryConfigurationKeyConstant      = "base_directory"
	tablesFileConfigurationKeyConstant         = "tables_file"
	workersConfigurationKeyConstant            = "workers"
	commandTimeoutConfigurationKeyConstant     = "command_timeout"
	authorsOutputConfigurationKeyConstant      = "outputs.authors"
	repositoriesOutputConfigurationKeyConstant = "outputs.repositories"
	datesOutputConfigurationKeyConstant        = "outputs.dates"
	configurationKeySeparatorConstant          = "."
	defaultBaseDirectoryConstant               = "~/lazy"
	defaultAuthorsOutputPathConstant           = "/tmp/tmp/who.json"
	defaultRepositoriesOutputPathConstant      = "/tmp/tmp/repos.json"
	defaultDatesOutputPathConstant             = "/tmp/tmp/who-date.json"
	defaultWorkerCountConstant                 = 1
	baseDirectoryMissingMessageConstant        = "census base directory is not configured"
	authorsOutputMissingMessageConstant        = "census authors output path is not configured"
	repositoriesOutputMissingMessageConstant   = "census repositories output path is not configured"
	datesOutputMissingMessageConstant          = "census dates output path is not configured"
	workerCountInvalidMessageConstant          = "census workers must be at least 1"
	commandTimeoutNegativeMessageConstant      = "census command timeout must not be negative"
)

var (
	// ErrBaseDirectoryMissing indicates an empty base directory.
	ErrBaseDirectoryMissing = errors.New(baseDirectoryMissingMessageConstant)
	// ErrAuthorsOutputMissing indicates an empty authors report path.
	ErrAuthorsOutputMissing = errors.New(authorsOutputMissingMessageConstant)
	// ErrRepositoriesOutputMissing indicates an empty repositories report path.
	ErrRepositoriesOutputMissing = errors.New(repositoriesOutputMissingMessageConstant)
	// ErrDatesOutputMissing indicates an empty dates report path.
	ErrDatesOutputMissing = errors.New(datesOutputMissingMessageConstant)
	// ErrWorkerCountInvalid indicates a worker count below one.
	ErrWorkerCountInvalid = errors.New(workerCountInvalidMessageConstant)
	// ErrCommandTimeoutNegative indicates a negative per-repository timeout.
	ErrCommandTimeoutNegative = errors.New(commandTimeoutNegativeMessageConstant)
)

// Configuration captures persistent settings for the census command.
type Configuration struct {
	BaseDirectory  string              `mapstructure:"base_directory"`
	TablesFile     string              `mapstructure:"tables_file"`
	Workers        int                 `mapstructure:"workers"`
	CommandTimeout time.Duration       `mapstructure:"command_timeout"`
	Outputs        OutputConfiguration `mapstructure:"outputs"`
}

// OutputConfiguration names the report destinations.
type OutputConfiguration struct {
	Authors      string `mapstructure:"authors"`
	Repositories string `mapstructure:"repositories"`
	Dates        string `mapstructure:"dates"`
}

// DefaultConfiguration returns baseline configuration values for the census command.
func DefaultConfiguration() Configuration {
	return Configuration{
		BaseDirectory: defaultBaseDirectoryConstant,
		Workers:       defaultWorkerCountConstant,
		Outputs: OutputConfiguration{
			Authors:      defaultAuthorsOutputPathConstant,
			Repositories: defaultRepositoriesOutputPathConstant,
			Dates:        defaultDatesOutputPathConstant,
		},
	}
}

// DefaultConfigurationValues flattens DefaultConfiguration into Viper keys under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	qualify := func(key string) string {
		trimmedPrefix := strings.TrimSpace(prefix)
		if len(trimmedPrefix) == 0 {
			return key
		}
		return trimmedPrefix + configurationKeySeparatorConstant + key
	}

	return map[string]any{
		qualify(baseDirectoryConfigurationKeyConstant):      defaults.BaseDirectory,
		qualify(tablesFileConfigurationKeyConstant):         defaults.TablesFile,
		qualify(workersConfigurationKeyConstant):            defaults.Workers,
		qualify(commandTimeoutConfigurationKeyConstant):     defaults.CommandTimeout,
		qualify(authorsOutputConfigurationKeyConstant):      defaults.Outputs.Authors,
		qualify(repositoriesOutputConfigurationKeyConstant): defaults.Outputs.Repositories,
		qualify(datesOutputConfigurationKeyConstant):        defaults.Outputs.Dates,
	}
}

// Sanitize trims whitespace from configured paths.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.BaseDirectory = strings.TrimSpace(configuration.BaseDirectory)
	sanitized.TablesFile = strings.TrimSpace(configuration.TablesFile)
	sanitized.Outputs.Authors = strings.TrimSpace(configuration.Outputs.Authors)
	sanitized.Outputs.Repositories = strings.TrimSpace(configuration.Outputs.Repositories)
	sanitized.Outputs.Dates = strings.TrimSpace(configuration.Outputs.Dates)
	return sanitized
}

// Validate reports the first unusable setting.
func (configuration Configuration) Validate() error {
	switch {
	case len(configuration.BaseDirectory) == 0:
		return ErrBaseDirectoryMissing
	case len(configuration.Outputs.Authors) == 0:
		return ErrAuthorsOutputMissing
	case len(configuration.Outputs.Repositories) == 0:
		return ErrRepositoriesOutputMissing
	case len(configuration.Outputs.Dates) == 0:
		return ErrDatesOutputMissing
	case configuration.Workers < 1:
		return ErrWorkerCountInvalid
	case configuration.CommandTimeout < 0:
		return ErrCommandTimeoutNegative
	default:
		return nil
	}
}
