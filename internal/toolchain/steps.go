package toolchain

import (
	"github.com/aleexeyy/checkrun/internal/model"
)

// Steps returns the check sequence in its fixed execution order:
//
//  1. cargo fmt --all -- --check   (formatting, check-only mode)
//  2. cargo clippy --all-targets --all-features   (lint)
//  3. cargo test   (test suite)
//  4. cargo build  (build)
//
// The order is part of the tool's contract: cheap static checks run before
// the test suite, and the build runs last. Callers receive a fresh slice on
// every call, so the canonical sequence cannot be mutated.
func Steps() []model.Step {
	return []model.Step{
		{
			Name:    "format check",
			Command: "cargo",
			Args:    []string{"fmt", "--all", "--", "--check"},
		},
		{
			Name:    "lint",
			Command: "cargo",
			Args:    []string{"clippy", "--all-targets", "--all-features"},
		},
		{
			Name:    "test",
			Command: "cargo",
			Args:    []string{"test"},
		},
		{
			Name:    "build",
			Command: "cargo",
			Args:    []string{"build"},
		},
	}
}
