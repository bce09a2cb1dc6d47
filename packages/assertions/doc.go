// Package assertions is the failure-reporting side of expect.
//
// It provides:
//   - Assert / AssertEqual: turn a boolean condition and a message template
//     into nil or a *Failure
//   - Usage: build a *UsageError for predicates called with invalid arguments
//   - Format / Inspect: %s templating with human readable value rendering
//   - Diff: structural diff of the actual and expected values of a failure
//   - Reporter: where failures go (Panic by default)
//
// Failures and usage errors are both errors; use errors.Is with
// ErrAssertionFailed or ErrUsage to tell them apart.
package assertions
