package cli_test

import (
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/pluginwho/cmd/cli"
	"github.com/temirov/pluginwho/internal/contributors"
	"github.com/temirov/pluginwho/internal/summary"
)

const (
	embeddedCommonSectionConstant  = "common"
	embeddedCensusSectionConstant  = "census"
	embeddedSummarySectionConstant = "summary"
	embeddedLogLevelKeyConstant    = "log_level"
	embeddedLogFormatKeyConstant   = "log_format"
)

func decodeEmbeddedSection(testInstance *testing.T, sectionName string, target any) {
	testInstance.Helper()

	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)

	document := map[string]any{}
	require.NoError(testInstance, yaml.Unmarshal(configurationData, &document))
	require.Contains(testInstance, document, sectionName)

	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      target,
	})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(document[sectionName]))
}

func TestEmbeddedDefaultsMatchCensusDefaults(testInstance *testing.T) {
	var censusConfiguration contributors.Configuration
	decodeEmbeddedSection(testInstance, embeddedCensusSectionConstant, &censusConfiguration)

	require.Equal(testInstance, contributors.DefaultConfiguration(), censusConfiguration)
	require.NoError(testInstance, censusConfiguration.Validate())
}

func TestEmbeddedDefaultsMatchSummaryDefaults(testInstance *testing.T) {
	var summaryConfiguration summary.Configuration
	decodeEmbeddedSection(testInstance, embeddedSummarySectionConstant, &summaryConfiguration)

	require.Equal(testInstance, summary.DefaultConfiguration(), summaryConfiguration)
	require.NoError(testInstance, summaryConfiguration.Validate())
}

func TestEmbeddedDefaultsConfigureQuietStructuredLogging(testInstance *testing.T) {
	commonSection := map[string]string{}
	decodeEmbeddedSection(testInstance, embeddedCommonSectionConstant, &commonSection)

	require.Equal(testInstance, "error", commonSection[embeddedLogLevelKeyConstant])
	require.Equal(testInstance, "structured", commonSection[embeddedLogFormatKeyConstant])
}

func TestEmbeddedDefaultConfigurationReturnsIndependentCopies(testInstance *testing.T) {
	firstCopy, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEmpty(testInstance, firstCopy)
	firstCopy[0] = '#'

	secondCopy, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEqual(testInstance, firstCopy[0], secondCopy[0])
}
