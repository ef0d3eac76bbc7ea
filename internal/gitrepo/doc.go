// Package gitrepo reads authorship history out of git checkouts.
//
// HistoryReader runs the git invocations the census depends on and returns
// their raw text; ParseContributorLine and ParseAuthorDate turn that loosely
// structured text into records so the aggregation code never touches git's
// output format directly.
package gitrepo
