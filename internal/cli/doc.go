// Package cli implements the command-line interface for attacklab-stats.
//
// The cli package provides the Cobra-based CLI that runs the whole
// pipeline in order: fetch, validate, extract, normalize, aggregate,
// render. Each error class maps to its own exit code, and the three
// output artifacts are written only after every one of them has been
// produced in memory.
package cli
