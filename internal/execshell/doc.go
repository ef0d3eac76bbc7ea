// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and publishes command lifecycle events so the
// census can run git against many plugin checkouts in a testable manner.
package execshell
