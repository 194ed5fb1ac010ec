// Package config provides configuration for the campaign cleaner.
// Ambient settings are loaded from environment variables with sensible defaults
// and validated on startup to fail fast on misconfiguration. The input and
// output folders are fixed and cannot be overridden.
package config

// InputDir is the folder scanned for zip archives.
const InputDir = "files/input"

// OutputDir is the folder the three cleaned CSV files are written to.
const OutputDir = "files/output"

// ArchiveExt is the suffix an input entry must carry to be read.
const ArchiveExt = ".zip"

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
