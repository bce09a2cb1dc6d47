// Package output renders assertion failures for people and for tools.
//
// Supported output formats:
//   - Console: human-readable colored text with a diff for equality failures
//   - JSON: one JSON object per failure, for runners that post-process output
package output
