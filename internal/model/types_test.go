package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStep_String verifies that Step values render as the full command line,
// which is what verbose logs and error messages display.
func TestStep_String(t *testing.T) {
	tests := []struct {
		name     string
		step     Step
		expected string
	}{
		{
			name:     "command with args",
			step:     Step{Name: "format check", Command: "cargo", Args: []string{"fmt", "--all", "--", "--check"}},
			expected: "cargo fmt --all -- --check",
		},
		{
			name:     "command without args",
			step:     Step{Name: "build", Command: "cargo"},
			expected: "cargo",
		},
		{
			name:     "single arg",
			step:     Step{Name: "test", Command: "cargo", Args: []string{"test"}},
			expected: "cargo test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.step.String())
		})
	}
}

// TestStep_Validate verifies that only steps with a command name pass
// validation. A step without a command can never be spawned.
func TestStep_Validate(t *testing.T) {
	valid := Step{Name: "test", Command: "cargo", Args: []string{"test"}}
	assert.NoError(t, valid.Validate())

	// Args are optional — a bare command is a valid step.
	assert.NoError(t, Step{Name: "bare", Command: "true"}.Validate())

	err := Step{Name: "broken"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

// TestStepFailure_Error verifies the error message formats for both
// failure sources: a child exiting non-zero, and the sequencer failing
// to run the child at all.
func TestStepFailure_Error(t *testing.T) {
	step := Step{Name: "lint", Command: "cargo", Args: []string{"clippy"}}

	childExit := NewStepFailure(step, 2)
	assert.Equal(t, "lint (cargo clippy) exited with status 2", childExit.Error())

	spawnErr := WrapStepFailure(step, ExitInternalError, errors.New("fork failed"))
	assert.Equal(t, "lint (cargo clippy) failed with status 1: fork failed", spawnErr.Error())
}

// TestStepFailure_Unwrap verifies errors.Is/errors.As compatibility,
// which the CLI layer relies on to translate failures into exit codes.
func TestStepFailure_Unwrap(t *testing.T) {
	underlying := errors.New("spawn error")
	failure := WrapStepFailure(Step{Name: "build", Command: "cargo"}, ExitInternalError, underlying)

	assert.True(t, errors.Is(failure, underlying))

	var asFailure *StepFailure
	require.True(t, errors.As(error(failure), &asFailure))
	assert.Equal(t, ExitInternalError, asFailure.Status)

	// A child-exit failure has no underlying error to unwrap.
	assert.Nil(t, NewStepFailure(Step{Name: "test", Command: "cargo"}, 1).Unwrap())
}
