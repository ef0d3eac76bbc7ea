package gitrepo

import (
	"strconv"
	"strings"
	"time"
)

const (
	contributorFieldSeparatorConstant = "\t"
	commitCountBitSizeConstant        = 32
	commitCountBaseConstant           = 10

	// AuthorDateLayout matches git's default date format, e.g. "Fri Jan 31 10:39:15 2014 -0300".
	AuthorDateLayout = "Mon Jan 2 15:04:05 2006 -0700"
)

// ContributorLine is one author entry of a shortlog summary.
type ContributorLine struct {
	CommitCount int
	AuthorName  string
}

// ParseContributorLine splits a shortlog line at its first tab.
// Lines without a tab are rejected. A count that is not an unsigned 32-bit
// integer becomes zero and the line is still accepted.
func ParseContributorLine(line string) (ContributorLine, bool) {
	countField, authorField, found := strings.Cut(strings.TrimSpace(line), contributorFieldSeparatorConstant)
	if !found {
		return ContributorLine{}, false
	}

	commitCount := 0
	if parsedCount, parseError := strconv.ParseUint(strings.TrimSpace(countField), commitCountBaseConstant, commitCountBitSizeConstant); parseError == nil {
		commitCount = int(parsedCount)
	}

	return ContributorLine{
		CommitCount: commitCount,
		AuthorName:  strings.TrimSpace(authorField),
	}, true
}

// ParseContributorSummary parses every acceptable line of a shortlog summary, in output order.
func ParseContributorSummary(summary string) []ContributorLine {
	var contributorLines []ContributorLine
	for _, line := range strings.Split(summary, lineSeparatorConstant) {
		contributorLine, accepted := ParseContributorLine(line)
		if !accepted {
			continue
		}
		contributorLines = append(contributorLines, contributorLine)
	}
	return contributorLines
}

// ParseAuthorDate parses a date printed by `git log --format=%ad` with the default date style.
func ParseAuthorDate(rawDate string) (time.Time, error) {
	return time.Parse(AuthorDateLayout, strings.TrimSpace(rawDate))
}
