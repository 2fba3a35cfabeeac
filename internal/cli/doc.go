// Package cli defines the Cobra command tree for the swarmgen CLI. The root
// command runs generation; each other file registers one subcommand
// (runtimes, validate, init, config, version). Commands delegate to the spec,
// templates and scaffold packages and only handle flags and output.
package cli
