// Package cli implements the command-line interface for the census tool.
//
// # Commands
//
// collect - query hosts and export the combined dataset:
//
//	census collect --host node-a --host node-b --html --csv --list -O report
//
// Exports are written next to the invoking process as <base>.html,
// <base>.csv, and <base>.txt. A run summary (per-host status, record
// counts, artifacts) is written to stdout or --summary in JSON, YAML, or
// table form.
package cli
