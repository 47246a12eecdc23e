// Package config handles configuration loading, parsing, and validation.
// Every field is resolved from the OS environment first, then a .env file,
// then a built-in default, and the winning source is recorded per field. The
// resolved Config is immutable after Load and is resolved exactly once at
// process start.
package config
