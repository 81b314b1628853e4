package sequencer

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"syscall"

	"github.com/aleexeyy/checkrun/internal/model"
)

// Runner executes a single step to completion and reports its exit status.
//
// The (status, error) split separates the two outcomes a caller must
// distinguish: a child process that ran and returned a status (error is
// nil, status may be non-zero), and a runner that could not produce a
// status at all (error is non-nil). Unrunnable commands are reported as
// statuses, not errors, because the shell convention assigns them exit
// codes of their own (127 for not found, 126 for not executable).
type Runner interface {
	Run(ctx context.Context, step model.Step) (int, error)
}

// ExecRunner runs steps as real OS processes via os/exec.
//
// Each child inherits the parent's environment, working directory, stdin,
// stdout, and stderr. Output passes straight through to the caller's
// streams — nothing is captured, filtered, or transformed.
type ExecRunner struct{}

// NewExecRunner creates an ExecRunner.
//
// There is no initialization logic, but the constructor follows the
// package convention and leaves room for future options (e.g., a custom
// working directory) without breaking callers.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the step and blocks until the child exits.
//
// The returned status follows shell conventions:
//   - the child's own exit code when it ran and exited
//   - 128+N when the child was killed by signal N
//   - 127 when the command could not be resolved via PATH
//   - 126 when the command was found but not executable
//
// A non-nil error is returned only when no meaningful status could be
// derived (e.g., the fork itself failed); the caller decides what status
// to exit with in that case.
func (r *ExecRunner) Run(ctx context.Context, step model.Step) (int, error) {
	if err := step.Validate(); err != nil {
		return model.ExitInternalError, err
	}

	// #nosec G204 — step command lines are fixed at authoring time,
	// not constructed from user input
	cmd := exec.CommandContext(ctx, step.Command, step.Args...)

	// Wire the child directly to the parent's streams. The tools being
	// run produce their own diagnostics; the sequencer never inserts
	// itself between them and the user.
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return model.ExitSuccess, nil
	}

	// The child ran and exited non-zero (or was signaled).
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}

		// ExitCode is -1 when the child died from a signal. Shells
		// report this as 128 plus the signal number.
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
		return model.ExitInternalError, nil
	}

	// The child never ran. Map the two well-known lookup failures to
	// their shell statuses; anything else is an internal error.
	if errors.Is(err, exec.ErrNotFound) {
		return model.ExitCommandNotFound, nil
	}
	if errors.Is(err, os.ErrPermission) {
		return model.ExitPermissionDenied, nil
	}

	return model.ExitInternalError, err
}

// Sequencer runs a fixed, ordered list of steps with fail-fast semantics.
type Sequencer struct {
	runner Runner

	// logf receives verbose progress messages. It is never nil; New
	// substitutes a no-op when no logger is provided, so the default
	// run adds no output of its own.
	logf func(format string, args ...any)
}

// New creates a Sequencer that executes steps through the given runner.
// logf may be nil to disable progress logging.
func New(runner Runner, logf func(format string, args ...any)) *Sequencer {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Sequencer{runner: runner, logf: logf}
}

// Run executes the steps strictly in order, each to completion before the
// next starts.
//
// The fail-fast check is explicit: the first step that yields a non-zero
// status stops the sequence, and the returned *model.StepFailure carries
// that exact status. Steps after the failing one are never invoked.
// Returns nil when every step exits zero.
func (s *Sequencer) Run(ctx context.Context, steps []model.Step) error {
	for i, step := range steps {
		s.logf("step %d/%d: %s (%s)", i+1, len(steps), step.Name, step)

		status, err := s.runner.Run(ctx, step)
		if err != nil {
			// The runner could not produce a child status. Surface it
			// with the internal-error code unless the runner supplied
			// a more specific one.
			if status == 0 {
				status = model.ExitInternalError
			}
			return model.WrapStepFailure(step, status, err)
		}
		if status != model.ExitSuccess {
			return model.NewStepFailure(step, status)
		}

		s.logf("step %d/%d passed: %s", i+1, len(steps), step.Name)
	}
	return nil
}
