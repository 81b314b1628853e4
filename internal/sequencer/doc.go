// Package sequencer runs an ordered list of external invocations with
// fail-fast semantics: each step blocks until it completes, and the first
// non-zero exit status aborts the sequence.
//
// All invocations are performed via os/exec against binaries resolved from
// PATH, rather than through any in-process integration. This approach:
//   - Runs the exact same tool behavior the user sees in their terminal
//   - Inherits the caller's environment, working directory, and streams
//   - Depends only on each tool's process exit status
//
// The Runner interface isolates process spawning so the sequencing logic
// can be tested without executing real commands.
package sequencer
