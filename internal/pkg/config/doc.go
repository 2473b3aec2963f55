// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from the process environment, optionally seeded from a
// .env file, and validated before use. Each settings struct carries its own
// Validate method so that partial configurations (for example a CLI command
// that only needs the ban source) can be checked in isolation.
package config
