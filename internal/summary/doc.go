// Package summary renders census reports as terminal tables.
//
// The summary command reads the JSON documents written by a previous census
// run and prints the top authors, the most contributed repositories, and the
// oldest plugins.
package summary
