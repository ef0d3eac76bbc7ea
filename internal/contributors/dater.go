package contributors

import (
	"sort"

	"github.com/temirov/pluginwho/internal/gitrepo"
)

// NewRepositoryFirstCommit pairs a raw first-commit date with its epoch seconds.
// Dates that are empty or do not match gitrepo.AuthorDateLayout yield a zero time.
func NewRepositoryFirstCommit(repositoryName string, rawDate string) RepositoryFirstCommit {
	record := RepositoryFirstCommit{Name: repositoryName, Date: rawDate}
	if parsedDate, parseError := gitrepo.ParseAuthorDate(rawDate); parseError == nil {
		record.Time = parsedDate.Unix()
	}
	return record
}

// OrderFirstCommits returns a copy of records stably sorted by time, ascending.
func OrderFirstCommits(records []RepositoryFirstCommit) []RepositoryFirstCommit {
	ordered := make([]RepositoryFirstCommit, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(leftIndex int, rightIndex int) bool {
		return ordered[leftIndex].Time < ordered[rightIndex].Time
	})
	return ordered
}
