// Package cli wires together the Cobra command tree for the censor binary.
//
// It defines the root command and all subcommands (redact, demo, words,
// config, version), binds flags, reads configuration, loads word lists, runs
// the redactor and returns deterministic exit codes for scripting.
package cli
