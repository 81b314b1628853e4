package toolchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSteps_FixedOrder verifies the exact sequence and command lines.
// The order (format check, lint, test, build) is part of the contract
// and must never change.
func TestSteps_FixedOrder(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 4)

	assert.Equal(t, "format check", steps[0].Name)
	assert.Equal(t, "cargo fmt --all -- --check", steps[0].String())

	assert.Equal(t, "lint", steps[1].Name)
	assert.Equal(t, "cargo clippy --all-targets --all-features", steps[1].String())

	assert.Equal(t, "test", steps[2].Name)
	assert.Equal(t, "cargo test", steps[2].String())

	assert.Equal(t, "build", steps[3].Name)
	assert.Equal(t, "cargo build", steps[3].String())
}

// TestSteps_AllValid verifies that every step in the canonical sequence
// passes validation, so the runner never rejects one at execution time.
func TestSteps_AllValid(t *testing.T) {
	for _, step := range Steps() {
		assert.NoError(t, step.Validate(), "step %q should be valid", step.Name)
	}
}

// TestSteps_ReturnsFreshSlice verifies that mutating a returned slice does
// not affect subsequent calls, protecting the canonical sequence.
func TestSteps_ReturnsFreshSlice(t *testing.T) {
	first := Steps()
	first[0].Command = "mutated"
	first[0].Args[0] = "mutated-arg"

	second := Steps()
	assert.Equal(t, "cargo", second[0].Command)
	assert.Equal(t, "fmt", second[0].Args[0])
}
