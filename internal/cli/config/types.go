// Package config provides configuration management for the rockerbogie CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults,
// rockerbogie.yaml, ROCKERBOGIE_* environment variables, then explicitly set
// command-line flags.
package config

import "time"

// Config holds all CLI configuration options.
type Config struct {
	Params          string        `koanf:"params"`
	OutDir          string        `koanf:"out_dir"`
	Format          string        `koanf:"format"`
	OutputFormat    string        `koanf:"output"`
	Verbose         bool          `koanf:"verbose"`
	AllowInfeasible bool          `koanf:"allow_infeasible"`
	WatchDebounce   time.Duration `koanf:"watch_debounce"`

	// ProjectRoot is the directory relative paths resolve against: the
	// directory of the config file, or the working directory without one.
	ProjectRoot string `koanf:"-"`
	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultParams        = "Parameters.csv"
	DefaultOutDir        = "dimensions"
	DefaultFormat        = "text"
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultWatchDebounce = 200 * time.Millisecond

	// FileName is the config file searched for from the working directory upward.
	FileName = "rockerbogie.yaml"
	// EnvPrefix prefixes every environment variable the loader reads.
	EnvPrefix = "ROCKERBOGIE_"
)

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Params:        DefaultParams,
		OutDir:        DefaultOutDir,
		Format:        DefaultFormat,
		OutputFormat:  DefaultOutput,
		WatchDebounce: DefaultWatchDebounce,
	}
}
