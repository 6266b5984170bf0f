// Package commands implements the rockerbogie subcommands.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/rockerbogie/internal/cli/config"
	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
	"github.com/leapstack-labs/rockerbogie/internal/params"
	"github.com/leapstack-labs/rockerbogie/internal/record"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config and logger stored on the command
// context by the root command and builds a renderer for the configured mode.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.OutputMode()),
	}
}

// LoadTable loads the configured parameter table.
func (c *CommandContext) LoadTable() (*params.Table, error) {
	t, err := params.Load(c.Cfg.Params)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("parameter table does not exist: %s\nHint: run 'rockerbogie init' or use --params to specify a different path: %w", c.Cfg.Params, err)
		}
		return nil, err
	}
	c.Logger.Debug("loaded parameter table", "source", t.Source(), "parameters", t.Len())
	return t, nil
}

// NewSink returns the artifact sink for the configured output directory,
// logging through logger.
func (c *CommandContext) NewSink(logger *slog.Logger) *record.FileSink {
	return record.NewFileSink(c.Cfg.OutDir, c.Cfg.RecordFormat(), logger)
}
