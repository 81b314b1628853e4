// Package main is the entry point for the checkrun CLI.
//
// The binary runs the project's verification steps (format check, lint,
// test, build) in a fixed order with fail-fast semantics. It delegates
// all functionality to the internal/cli package, which defines the cobra
// command.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/aleexeyy/checkrun/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// They provide binary identification for the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package.
	// This decouples the build system (ldflags) from the CLI framework
	// (cobra), keeping main.go minimal.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Create the root command, then execute it. Execute maps a failing
	// step's exit status onto the process exit code.
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
