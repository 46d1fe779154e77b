// Package cli implements the subcommands of the prefs tool.
//
// Global configuration flags are parsed by package config before the
// command name; each command then parses its own flags from the remaining
// arguments. Results go to the App's output writer, diagnostics to its
// logger.
package cli
