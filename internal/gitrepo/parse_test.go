package gitrepo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/pluginwho/internal/gitrepo"
)

const testSubtestNameTemplateConstant = "%d_%s"

func TestParseContributorLine(testInstance *testing.T) {
	testCases := []struct {
		name             string
		line             string
		expectedAccepted bool
		expectedLine     gitrepo.ContributorLine
	}{
		{
			name:             "shortlog_padding",
			line:             "   12\tAlice ",
			expectedAccepted: true,
			expectedLine:     gitrepo.ContributorLine{CommitCount: 12, AuthorName: "Alice"},
		},
		{
			name:             "compact",
			line:             "12\tAlice",
			expectedAccepted: true,
			expectedLine:     gitrepo.ContributorLine{CommitCount: 12, AuthorName: "Alice"},
		},
		{
			name:             "space_before_tab",
			line:             "7 \tBob Smith",
			expectedAccepted: true,
			expectedLine:     gitrepo.ContributorLine{CommitCount: 7, AuthorName: "Bob Smith"},
		},
		{
			name:             "non_numeric_count",
			line:             "x\tAlice",
			expectedAccepted: true,
			expectedLine:     gitrepo.ContributorLine{CommitCount: 0, AuthorName: "Alice"},
		},
		{
			name:             "negative_count",
			line:             "-3\tAlice",
			expectedAccepted: true,
			expectedLine:     gitrepo.ContributorLine{CommitCount: 0, AuthorName: "Alice"},
		},
		{
			name:             "splits_at_first_tab_only",
			line:             "4\tCarol\tExtra",
			expectedAccepted: true,
			expectedLine:     gitrepo.ContributorLine{CommitCount: 4, AuthorName: "Carol\tExtra"},
		},
		{
			name:             "missing_tab",
			line:             "12 Alice",
			expectedAccepted: false,
		},
		{
			name:             "empty",
			line:             "",
			expectedAccepted: false,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			contributorLine, accepted := gitrepo.ParseContributorLine(testCase.line)
			require.Equal(testInstance, testCase.expectedAccepted, accepted)
			require.Equal(testInstance, testCase.expectedLine, contributorLine)
		})
	}
}

func TestParseContributorSummarySkipsMalformedLines(testInstance *testing.T) {
	summary := "   120\tfolke\n    3\tphanen\nnot a contributor line\n     1\tJohn Doe\r\n"

	contributorLines := gitrepo.ParseContributorSummary(summary)

	require.Equal(testInstance, []gitrepo.ContributorLine{
		{CommitCount: 120, AuthorName: "folke"},
		{CommitCount: 3, AuthorName: "phanen"},
		{CommitCount: 1, AuthorName: "John Doe"},
	}, contributorLines)
}

func TestParseAuthorDate(testInstance *testing.T) {
	testCases := []struct {
		name          string
		rawDate       string
		expectedEpoch int64
		expectError   bool
	}{
		{
			name:          "two_digit_day",
			rawDate:       "Fri Jan 31 10:39:15 2014 -0300",
			expectedEpoch: 1391175555,
		},
		{
			name:          "single_digit_day",
			rawDate:       "Mon Feb 3 08:00:00 2020 +0100",
			expectedEpoch: 1580713200,
		},
		{
			name:          "surrounding_whitespace",
			rawDate:       "  Sat Jun 1 12:00:00 2019 +0000\n",
			expectedEpoch: 1559390400,
		},
		{
			name:        "empty",
			rawDate:     "",
			expectError: true,
		},
		{
			name:        "iso_format",
			rawDate:     "2014-01-31T10:39:15-03:00",
			expectError: true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			parsedDate, parseError := gitrepo.ParseAuthorDate(testCase.rawDate)
			if testCase.expectError {
				require.Error(testInstance, parseError)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedEpoch, parsedDate.Unix())
		})
	}
}
