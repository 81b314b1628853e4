// Package toolchain defines the fixed verification sequence for the
// project's cargo toolchain.
//
// The four steps — format check, lint, test, build — are the external
// collaborators of the checkrun CLI. Their command lines are fixed at
// authoring time: there is no runtime configuration, no argument
// interpolation, and no way to reorder or skip steps.
package toolchain
