package contributors

import (
	"sort"

	"github.com/temirov/pluginwho/internal/gitrepo"
)

// HistoryAggregator folds repository shortlogs into the author table and per-repository tallies.
// It is not safe for concurrent use; repositories are folded in scan order.
type HistoryAggregator struct {
	aliases      AliasTable
	authors      map[string]*Author
	repositories []RepositorySummary
}

// NewHistoryAggregator constructs an empty aggregator resolving names through aliases.
func NewHistoryAggregator(aliases AliasTable) *HistoryAggregator {
	return &HistoryAggregator{
		aliases: aliases,
		authors: make(map[string]*Author),
	}
}

// AddRepository folds the shortlog summary of one repository and returns its contributor tally.
//
// The tally counts raw shortlog lines. When two raw names resolve to the same
// canonical author within one repository their commits are summed under a
// single repository entry. The earlier single-binary census overwrote the
// repository count and bumped repo_count on every line instead, which broke
// commit_count == sum(repos) and repo_count == len(repos) for aliased authors.
func (aggregator *HistoryAggregator) AddRepository(repositoryName string, contributorSummary string) RepositorySummary {
	summary := RepositorySummary{Name: repositoryName}

	for _, contributorLine := range gitrepo.ParseContributorSummary(contributorSummary) {
		summary.Contributors++
		aggregator.recordCommits(repositoryName, aggregator.aliases.Resolve(contributorLine.AuthorName), contributorLine.CommitCount)
	}

	aggregator.repositories = append(aggregator.repositories, summary)
	return summary
}

func (aggregator *HistoryAggregator) recordCommits(repositoryName string, authorName string, commitCount int) {
	author, known := aggregator.authors[authorName]
	if !known {
		author = &Author{Name: authorName, Repositories: make(map[string]int)}
		aggregator.authors[authorName] = author
	}

	if _, seen := author.Repositories[repositoryName]; !seen {
		author.RepositoryCount++
	}
	author.Repositories[repositoryName] += commitCount
	author.CommitCount += commitCount
}

// Authors returns a copy of the author table ordered by commit count, then name.
func (aggregator *HistoryAggregator) Authors() []Author {
	authors := make([]Author, 0, len(aggregator.authors))
	for _, author := range aggregator.authors {
		repositories := make(map[string]int, len(author.Repositories))
		for repositoryName, commitCount := range author.Repositories {
			repositories[repositoryName] = commitCount
		}
		authors = append(authors, Author{
			Name:            author.Name,
			Repositories:    repositories,
			RepositoryCount: author.RepositoryCount,
			CommitCount:     author.CommitCount,
		})
	}

	sort.Slice(authors, func(leftIndex int, rightIndex int) bool {
		if authors[leftIndex].CommitCount != authors[rightIndex].CommitCount {
			return authors[leftIndex].CommitCount > authors[rightIndex].CommitCount
		}
		return authors[leftIndex].Name < authors[rightIndex].Name
	})
	return authors
}

// Repositories returns the repository tallies ordered by contributor count, descending.
// Ties keep the order in which repositories were added.
func (aggregator *HistoryAggregator) Repositories() []RepositorySummary {
	return RankRepositories(aggregator.repositories)
}

// RankRepositories returns a copy of summaries stably sorted by contributor count, descending.
func RankRepositories(summaries []RepositorySummary) []RepositorySummary {
	ranked := make([]RepositorySummary, len(summaries))
	copy(ranked, summaries)
	sort.SliceStable(ranked, func(leftIndex int, rightIndex int) bool {
		return ranked[leftIndex].Contributors > ranked[rightIndex].Contributors
	})
	return ranked
}
