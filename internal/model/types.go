package model

import (
	"fmt"
	"strings"
)

// Step describes a single external invocation in the check sequence:
// a command name resolved via PATH plus its fixed arguments.
//
// Steps are value objects — they carry no state about a particular run.
// The outcome of running a step is a plain exit status (see StepFailure).
type Step struct {
	// Name is the short human-readable label for the step
	// (e.g., "format check"). Used in verbose logging and error messages.
	Name string

	// Command is the executable name, looked up via PATH
	// (e.g., "cargo").
	Command string

	// Args are the fixed arguments passed to the command. They are
	// decided at authoring time; nothing is interpolated at runtime.
	Args []string
}

// String returns the full command line for the step, space-joined.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in verbose logs and error messages.
func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Command
	}
	return s.Command + " " + strings.Join(s.Args, " ")
}

// Validate checks that the step is runnable: it must have a command name.
// A step with an empty command can never be resolved via PATH, so it is
// rejected before any process is spawned.
func (s Step) Validate() error {
	if s.Command == "" {
		return fmt.Errorf("step %q: command must not be empty", s.Name)
	}
	return nil
}

// Exit statuses the sequencer itself produces. Statuses of failing child
// processes are propagated verbatim and are not enumerated here.
const (
	// ExitSuccess indicates every step in the sequence exited zero.
	ExitSuccess = 0

	// ExitInternalError indicates the sequencer failed before a child
	// process produced an exit status (e.g., fork failure).
	ExitInternalError = 1

	// ExitPermissionDenied is the shell convention for a command that
	// was found but could not be executed.
	ExitPermissionDenied = 126

	// ExitCommandNotFound is the shell convention for a command that
	// could not be resolved via PATH.
	ExitCommandNotFound = 127
)

// StepFailure is the error returned when a step exits non-zero.
// It carries the failing step and the exact status the child process
// returned, which the CLI layer uses as the overall process exit code.
//
// There is exactly one failure kind at the sequencer's level: a formatting
// violation, a lint error, a test failure, and a broken build all surface
// identically as "a step returned non-zero".
type StepFailure struct {
	// Step is the invocation that failed.
	Step Step

	// Status is the child's exit status. Always non-zero.
	Status int

	// Err is the underlying error, if any. It is set only when the
	// failure happened in the sequencer itself (e.g., the process could
	// not be started) rather than in the child.
	Err error
}

// Error satisfies the error interface. The message is for verbose logging
// only — on the default verbosity the failing tool's own diagnostics are
// the only output the user sees.
func (e *StepFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s) failed with status %d: %v", e.Step.Name, e.Step, e.Status, e.Err)
	}
	return fmt.Sprintf("%s (%s) exited with status %d", e.Step.Name, e.Step, e.Status)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *StepFailure) Unwrap() error {
	return e.Err
}

// NewStepFailure creates a StepFailure for a child that exited non-zero.
func NewStepFailure(step Step, status int) *StepFailure {
	return &StepFailure{Step: step, Status: status}
}

// WrapStepFailure creates a StepFailure for an error raised by the
// sequencer itself while trying to run the step.
func WrapStepFailure(step Step, status int, err error) *StepFailure {
	return &StepFailure{Step: step, Status: status, Err: err}
}
