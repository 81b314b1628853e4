// Package cli implements the cobra-based command surface for checkrun.
//
// The tool has no subcommands: the root command itself runs the check
// sequence. This file defines that command, the global --verbose flag,
// and the error-to-exit-code translation in Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aleexeyy/checkrun/internal/model"
	"github.com/aleexeyy/checkrun/internal/sequencer"
	"github.com/aleexeyy/checkrun/internal/toolchain"
)

// verbose enables step progress output for debugging. When true, a line
// per step start and pass is printed to stderr. When false (default), the
// only output is what the invoked tools write themselves.
//
// It is bound to a cobra persistent flag on the root command.
var verbose bool

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Unlike a multi-command CLI, the root command here performs the actual
// work: running the four check steps in order. It accepts no positional
// arguments and reads no configuration.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "checkrun",
		Short: "Run the project's format, lint, test, and build checks in order",
		Long: `checkrun runs the project's verification steps in a fixed order,
stopping at the first failure:

  1. cargo fmt --all -- --check
  2. cargo clippy --all-targets --all-features
  3. cargo test
  4. cargo build

Each step inherits the current environment and working directory, and its
output passes through untouched. The exit status is 0 when every step
passes, otherwise the exact status of the first failing step.`,

		// The tool takes no arguments: the sequence is fixed.
		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// A failing check step is not a usage problem.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute handles errors itself so a step failure produces no
		// extra output beyond the failing tool's own diagnostics.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return rootCmd
}

// runChecks executes the fixed toolchain sequence through an ExecRunner.
// A *model.StepFailure from the sequencer propagates to Execute, which
// turns it into the process exit code.
func runChecks(cmd *cobra.Command) error {
	seq := sequencer.New(sequencer.NewExecRunner(), VerboseLog)

	// cmd.Context() is cobra's way of threading the process context into
	// command logic; child processes are bound to it via CommandContext.
	return seq.Run(cmd.Context(), toolchain.Steps())
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// A step failure carries the failing child's exact exit status, which
// becomes the process exit code. The child has already written its own
// diagnostics to the shared streams, so nothing is printed for it here
// outside verbose mode. Any other error (e.g., unexpected arguments)
// is printed and exits with code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a StepFailure with a specific exit
		// status. errors.As would also work here, but a type assertion
		// is simpler for this single-level check.
		if failure, ok := err.(*model.StepFailure); ok {
			VerboseLog("%s", failure.Error())
			os.Exit(failure.Status)
		}

		// Generic error — print it and exit with code 1.
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(model.ExitInternalError)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is the only output the sequencer itself ever produces; on the
// default verbosity the invoked tools' streams are all the user sees.
func VerboseLog(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}
