package contributors

import "time"

// Author aggregates the commits of one canonical identity across repositories.
type Author struct {
	Name            string         `json:"name"`
	Repositories    map[string]int `json:"repos"`
	RepositoryCount int            `json:"repo_count"`
	CommitCount     int            `json:"commit_count"`
}

// RepositorySummary counts the contributor lines reported for one repository.
type RepositorySummary struct {
	Name         string `json:"name"`
	Contributors int    `json:"contributors"`
}

// RepositoryFirstCommit records when a repository received its oldest commit.
// Time is zero when Date could not be parsed.
type RepositoryFirstCommit struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Time int64  `json:"time"`
}

// OutputPaths names the three report destinations.
type OutputPaths struct {
	Authors      string
	Repositories string
	Dates        string
}

// CensusOptions configures a single census run.
type CensusOptions struct {
	BaseDirectory  string
	Tables         IdentityTables
	Outputs        OutputPaths
	Workers        int
	CommandTimeout time.Duration
}

// CensusResult holds the collections written by a census run, in report order.
type CensusResult struct {
	Authors      []Author
	Repositories []RepositorySummary
	FirstCommits []RepositoryFirstCommit
}
