package summary

import (
	"errors"
	"strings"
)

const (
	limitConfigurationKeyConstant     = "limit"
	colorConfigurationKeyConstant     = "color"
	configurationKeySeparatorConstant = "."
	defaultRowLimitConstant           = 10
	limitNegativeMessageConstant      = "summary limit must not be negative"
	colorModeInvalidMessageConstant   = "summary color must be one of auto, always, never"
)

// ColorMode selects when tables are colored.
type ColorMode string

// Supported color modes.
const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)

var (
	// ErrLimitNegative indicates a negative row limit.
	ErrLimitNegative = errors.New(limitNegativeMessageConstant)
	// ErrColorModeInvalid indicates an unsupported color mode.
	ErrColorModeInvalid = errors.New(colorModeInvalidMessageConstant)
)

// Configuration captures persistent settings for the summary command.
type Configuration struct {
	Limit int    `mapstructure:"limit"`
	Color string `mapstructure:"color"`
}

// DefaultConfiguration returns baseline configuration values for the summary command.
func DefaultConfiguration() Configuration {
	return Configuration{
		Limit: defaultRowLimitConstant,
		Color: string(ColorModeAuto),
	}
}

// DefaultConfigurationValues flattens DefaultConfiguration into Viper keys under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	keyPrefix := ""
	if trimmedPrefix := strings.TrimSpace(prefix); len(trimmedPrefix) > 0 {
		keyPrefix = trimmedPrefix + configurationKeySeparatorConstant
	}
	return map[string]any{
		keyPrefix + limitConfigurationKeyConstant: defaults.Limit,
		keyPrefix + colorConfigurationKeyConstant: defaults.Color,
	}
}

// ColorMode returns the normalized color mode.
func (configuration Configuration) ColorMode() ColorMode {
	return ColorMode(strings.ToLower(strings.TrimSpace(configuration.Color)))
}

// Validate reports the first unusable setting.
func (configuration Configuration) Validate() error {
	if configuration.Limit < 0 {
		return ErrLimitNegative
	}
	switch configuration.ColorMode() {
	case ColorModeAuto, ColorModeAlways, ColorModeNever:
		return nil
	default:
		return ErrColorModeInvalid
	}
}
