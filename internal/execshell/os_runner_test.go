package execshell

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/pluginwho/internal/gitrepo/testsupport"
)

const (
	testRunnerSubtestTemplateConstant = "%d_%s"
	testHashedContentConstant         = "hello\n"
	testHashedContentObjectConstant   = "ce013625030ba8dba906f756967f9e9ca394464a\n"
	testConfigurationKeyConstant      = "census.marker"
	testConfigurationValueConstant    = "pager-cleared"
)

func TestMergeEnvironmentAppendsSortedOverridesAfterInheritedValues(t *testing.T) {
	inherited := []string{"HOME=/home/user", "PAGER=less"}

	merged := mergeEnvironment(inherited, map[string]string{"PAGER": "", "GIT_PAGER": ""})

	require.Equal(t, []string{"HOME=/home/user", "PAGER=less", "GIT_PAGER=", "PAGER="}, merged)
	require.Equal(t, []string{"HOME=/home/user", "PAGER=less"}, inherited)
}

func TestOSCommandRunnerReportsLaunchFailure(t *testing.T) {
	runner := NewOSCommandRunner()

	_, runError := runner.Run(context.Background(), ShellCommand{Name: CommandName("plugin-who-missing-executable")})

	require.Error(t, runError)
}

func TestOSCommandRunnerRunsGit(testInstance *testing.T) {
	testsupport.RequireGit(testInstance)
	emptyRepository := testsupport.InitRepository(testInstance, filepath.Join(testInstance.TempDir(), "empty.nvim"))

	testCases := []struct {
		name                string
		details             CommandDetails
		expectedExitCode    int
		expectedOutput      string
		expectStandardError bool
	}{
		{
			name: "standard_input_is_piped",
			details: CommandDetails{
				Arguments:     []string{"hash-object", "--stdin"},
				StandardInput: []byte(testHashedContentConstant),
			},
			expectedOutput: testHashedContentObjectConstant,
		},
		{
			name: "environment_overrides_reach_git",
			details: CommandDetails{
				Arguments: []string{"config", "--get", testConfigurationKeyConstant},
				EnvironmentVariables: map[string]string{
					"GIT_PAGER":          "",
					"PAGER":              "",
					"GIT_CONFIG_COUNT":   "1",
					"GIT_CONFIG_KEY_0":   testConfigurationKeyConstant,
					"GIT_CONFIG_VALUE_0": testConfigurationValueConstant,
				},
			},
			expectedOutput: testConfigurationValueConstant + "\n",
		},
		{
			name:             "missing_configuration_exits_non_zero",
			details:          CommandDetails{Arguments: []string{"config", "--get", testConfigurationKeyConstant}},
			expectedExitCode: 1,
		},
		{
			name: "empty_repository_log_exits_non_zero",
			details: CommandDetails{
				Arguments:        []string{"log", "--pretty=short"},
				WorkingDirectory: emptyRepository,
			},
			expectedExitCode:    128,
			expectStandardError: true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testRunnerSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			runner := NewOSCommandRunner()

			result, runError := runner.Run(context.Background(), ShellCommand{Name: CommandGit, Details: testCase.details})

			require.NoError(testInstance, runError)
			require.Equal(testInstance, testCase.expectedExitCode, result.ExitCode)
			if testCase.expectedExitCode == 0 {
				require.Equal(testInstance, testCase.expectedOutput, result.StandardOutput)
			} else {
				require.Empty(testInstance, strings.TrimSpace(result.StandardOutput))
			}
			if testCase.expectStandardError {
				require.NotEmpty(testInstance, strings.TrimSpace(result.StandardError))
			}
		})
	}
}
