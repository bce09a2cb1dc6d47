// Package config handles configuration of failure output for expect.
//
// It provides functionality for:
//   - Loading configuration from .expect.json, expect.json, .expect.yaml or
//     .expect.yml, searching the given directory and its parents
//   - Default configuration values
//   - Environment overrides (EXPECT_NO_COLOR, EXPECT_VERBOSE)
package config
