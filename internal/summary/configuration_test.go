package summary_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/pluginwho/internal/summary"
)

func TestSummaryConfigurationValidate(testInstance *testing.T) {
	testCases := []struct {
		name          string
		configuration summary.Configuration
		expectedError error
	}{
		{name: "defaults", configuration: summary.DefaultConfiguration()},
		{name: "unlimited_always", configuration: summary.Configuration{Limit: 0, Color: " Always "}},
		{name: "negative_limit", configuration: summary.Configuration{Limit: -1, Color: "never"}, expectedError: summary.ErrLimitNegative},
		{name: "unknown_color", configuration: summary.Configuration{Limit: 5, Color: "sometimes"}, expectedError: summary.ErrColorModeInvalid},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testRendererSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			validationError := testCase.configuration.Validate()
			if testCase.expectedError == nil {
				require.NoError(testInstance, validationError)
				return
			}
			require.ErrorIs(testInstance, validationError, testCase.expectedError)
		})
	}
}

func TestSummaryDefaultConfigurationValues(testInstance *testing.T) {
	require.Equal(testInstance, map[string]any{"summary.limit": 10, "summary.color": "auto"}, summary.DefaultConfigurationValues("summary"))
	require.Equal(testInstance, map[string]any{"limit": 10, "color": "auto"}, summary.DefaultConfigurationValues(""))
}
