// Package cli defines the command-line interface: loading an export,
// validating it, and producing reports (statistics, a DOT graph, importance
// rankings) from the resulting database. It translates flags and the
// optional YAML options file into calls against the library packages.
package cli
