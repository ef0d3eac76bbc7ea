// Package contributors runs the plugin contributor census.
//
// A census scans a plugin directory for git checkouts, folds every
// repository's shortlog into a per-author table, dates each repository by its
// oldest commit, and writes three JSON reports: authors, repositories ranked
// by contributor count, and repositories ordered by first commit.
package contributors
