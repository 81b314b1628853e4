// Package model defines the domain types for the checkrun CLI.
//
// This package contains pure data structures with no external dependencies:
// the Step value object describing a single external invocation, and the
// StepFailure error type that carries a failed step's exit status so the
// CLI layer can propagate it as the process exit code.
package model
