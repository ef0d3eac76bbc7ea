// Package cli constructs the plugin-who command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives. Running the root command without a subcommand performs the
// contributor census.
package cli
