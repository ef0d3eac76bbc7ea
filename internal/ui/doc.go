// Package ui provides helpers for formatting human-readable console output.
//
// ConsoleCommandEventLogger turns git lifecycle events into short sentences
// such as "Reading commit history in /home/user/lazy/telescope.nvim" when the console
// log format is selected.
package ui
