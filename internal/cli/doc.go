// Package cli defines the Cobra command tree for create-claudecraft. The root
// command scaffolds a new project, or with --init merges skills into the
// project in the current directory. list, doctor, config and version are
// subcommands. Commands gather flags and configuration, delegate to the
// scaffold engine, and only handle prompting and output formatting.
package cli
