package config

import (
	"fmt"

	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
	"github.com/leapstack-labs/rockerbogie/internal/record"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Params == "" {
		return fmt.Errorf("params is required")
	}
	if c.OutDir == "" {
		return fmt.Errorf("out_dir is required")
	}
	if _, err := record.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch_debounce must be positive, got %s", c.WatchDebounce)
	}
	return nil
}

// RecordFormat returns the artifact format. Call Validate first.
func (c *Config) RecordFormat() record.Format {
	f, err := record.ParseFormat(c.Format)
	if err != nil {
		return record.FormatText
	}
	return f
}

// OutputMode returns the output mode. Call Validate first.
func (c *Config) OutputMode() output.Mode {
	m, err := output.ParseMode(c.OutputFormat)
	if err != nil {
		return output.ModeAuto
	}
	return m
}
