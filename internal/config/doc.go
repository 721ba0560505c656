// Package config loads the harness configuration.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. Environment variables (NO_COLOR, CI, CSTRING_TEST_CONFIG)
//  2. YAML config file (.cstring_test.yaml in the working directory or
//     <user config dir>/cstring/.cstring_test.yaml)
//  3. Hardcoded defaults
//
// The harness accepts no command-line options, so the environment is the
// highest-priority source.
//
// # Key Configuration Options
//
//   - format: auto, terminal, plain or json
//   - theme: default, orca or mono
//   - no_color: forces the mono theme
//   - expected_version: version the library must report; empty means the
//     library's own build-time constant
//
// # Environment Variables
//
//   - NO_COLOR: any non-empty value disables colors
//   - CI: "true" or "1" disables colors and selects plain output under auto
//   - CSTRING_TEST_CONFIG: explicit path to the YAML file
//
// A missing, unreadable or malformed file is never fatal: a warning is
// written and defaults are used.
package config
