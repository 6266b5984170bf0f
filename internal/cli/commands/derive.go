package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/rockerbogie/internal/cli/config"
	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
	"github.com/leapstack-labs/rockerbogie/internal/record"
	"github.com/leapstack-labs/rockerbogie/internal/rover"
)

// NewDeriveCommand creates the derive command.
func NewDeriveCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:     "derive",
		Aliases: []string{"run"},
		Short:   "Derive component dimensions from the parameter table",
		Long: `Derive every suspension component from the parameter table and write one
artifact per component into the output directory.

The rover width check runs first; a failed check is reported but never stops
derivation. Components whose dimensions cannot be built (negative lengths,
linkage angles outside (-90, 90]) are reported and not written unless
--allow-infeasible is set.

With --watch, derive re-runs whenever the parameter table changes.`,
		Example: `  # Derive with the configured parameter table
  rockerbogie derive

  # Use another table and write YAML artifacts
  rockerbogie derive --params rover.yaml --format yaml

  # Re-derive on every save
  rockerbogie derive --watch

  # Machine-readable summary
  rockerbogie derive -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			if watch {
				return runDeriveWatch(cmd.Context(), cc)
			}
			return runDerive(cmd.Context(), cc)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-derive when the parameter table changes")
	cmd.Flags().Bool("allow-infeasible", false, "Write artifacts for components that fail the feasibility check")
	cmd.Flags().Duration("watch-debounce", config.DefaultWatchDebounce, "Quiet period before a watched change re-derives")

	return cmd
}

func runDerive(ctx context.Context, cc *CommandContext) error {
	table, err := cc.LoadTable()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := cc.Logger.With("run", runID)

	sink := cc.NewSink(logger)
	res, report, err := rover.Run(ctx, table, sink, rover.RunOptions{
		AllowInfeasible: cc.Cfg.AllowInfeasible,
		Logger:          logger,
	})
	if err != nil {
		return err
	}
	logger.Debug("derivation finished", "written", len(report.Written), "skipped", len(report.Skipped))

	out := buildDeriveOutput(cc.Cfg, sink, res, report)
	out.RunID = runID
	switch cc.Renderer.EffectiveMode() {
	case output.ModeJSON:
		return cc.Renderer.JSON(out)
	case output.ModeMarkdown:
		return deriveMarkdown(cc.Renderer, out)
	default:
		return deriveText(cc.Renderer, out)
	}
}

func runDeriveWatch(ctx context.Context, cc *CommandContext) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cc.Renderer.Muted(fmt.Sprintf("Watching %s (Ctrl+C to stop)", cc.Cfg.Params))
	return watchParams(ctx, cc.Cfg.Params, cc.Cfg.WatchDebounce, cc.Logger,
		func() error { return runDerive(ctx, cc) },
		func(err error) { cc.Renderer.Error(err.Error()) })
}

func buildDeriveOutput(cfg *config.Config, sink *record.FileSink, res *rover.Result, report rover.PersistReport) output.DeriveOutput {
	out := output.DeriveOutput{
		Params: cfg.Params,
		OutDir: sink.Dir(),
		Width: output.WidthCheck{
			Passed:            res.Width.Passed,
			RequiredClearance: res.Width.RequiredClearance,
			Target:            res.Width.Target,
		},
		UpperMinBoltLength: res.UpperMinBoltLength,
		LowerMinBoltLength: res.LowerMinBoltLength,
		Warnings:           make([]output.Warning, 0, len(res.Warnings)),
		Written:            make([]output.Artifact, 0, len(report.Written)),
		Skipped:            make([]string, 0, len(report.Skipped)),
		Removed:            make([]string, 0, len(report.Removed)),
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, output.Warning{
			Component: string(w.Component),
			Field:     w.Field,
			Value:     w.Value,
			Reason:    w.Reason,
		})
	}
	for _, c := range report.Written {
		out.Written = append(out.Written, output.Artifact{Component: string(c), Path: sink.Path(string(c))})
	}
	for _, c := range report.Skipped {
		out.Skipped = append(out.Skipped, string(c))
	}
	for _, c := range report.Removed {
		out.Removed = append(out.Removed, string(c))
	}
	return out
}

func widthSummary(w output.WidthCheck) string {
	verdict := "fits within"
	if !w.Passed {
		verdict = "exceeds"
	}
	return fmt.Sprintf("required clearance %s mm %s target %s mm",
		record.FormatValue(w.RequiredClearance), verdict, record.FormatValue(w.Target))
}

func skippedDetail(out output.DeriveOutput, c string) string {
	if slices.Contains(out.Removed, c) {
		return "infeasible, stale artifact removed"
	}
	return "infeasible, not written"
}

func deriveText(r *output.Renderer, out output.DeriveOutput) error {
	styles := r.Styles()

	r.Header(1, "Rover Dimensions")
	r.Println(styles.Muted.Render("params: " + out.Params))
	r.Println("")

	r.Header(2, "Width Check")
	if out.Width.Passed {
		r.Printf("  %s %s\n", styles.StatusSuccess.String(), widthSummary(out.Width))
	} else {
		r.Printf("  %s %s\n", styles.StatusFailed.String(), styles.Warning.Render(widthSummary(out.Width)))
	}
	r.Println("")

	r.Header(2, "Fasteners")
	r.Printf("  upper shaft min bolt length: %s\n", styles.Value.Render(record.FormatValue(out.UpperMinBoltLength)+" mm"))
	r.Printf("  lower shaft min bolt length: %s\n", styles.Value.Render(record.FormatValue(out.LowerMinBoltLength)+" mm"))
	r.Println("")

	if len(out.Warnings) > 0 {
		r.Header(2, "Warnings")
		for _, w := range out.Warnings {
			r.Printf("  %s %s.%s = %s: %s\n", styles.Warning.Render("!"),
				w.Component, w.Field, record.FormatValue(w.Value), w.Reason)
		}
		r.Println("")
	}

	r.Header(2, "Artifacts")
	for _, a := range out.Written {
		r.StatusLine(r.Title(a.Component), "success", a.Path)
	}
	for _, c := range out.Skipped {
		r.StatusLine(r.Title(c), "skipped", skippedDetail(out, c))
	}
	r.Println("")
	r.Println(styles.Muted.Render(fmt.Sprintf("Wrote %d of %d artifacts to %s",
		len(out.Written), len(out.Written)+len(out.Skipped), out.OutDir)))

	return nil
}

func deriveMarkdown(r *output.Renderer, out output.DeriveOutput) error {
	r.Println(output.FormatHeader(1, "Rover Dimensions"))
	r.Println("")
	r.Println(output.FormatKeyValue("Params", out.Params))
	r.Println(output.FormatKeyValue("Output Directory", out.OutDir))
	r.Println("")

	status := "PASS"
	if !out.Width.Passed {
		status = "FAIL"
	}
	r.Println(output.FormatHeader(2, "Width Check"))
	r.Println("")
	r.Printf("**[%s]** %s\n", status, widthSummary(out.Width))
	r.Println("")

	r.Println(output.FormatHeader(2, "Fasteners"))
	r.Println("")
	r.Println(output.FormatKeyValue("Upper shaft min bolt length", record.FormatValue(out.UpperMinBoltLength)+" mm"))
	r.Println(output.FormatKeyValue("Lower shaft min bolt length", record.FormatValue(out.LowerMinBoltLength)+" mm"))
	r.Println("")

	if len(out.Warnings) > 0 {
		r.Println(output.FormatHeader(2, "Warnings"))
		r.Println("")
		for _, w := range out.Warnings {
			r.Printf("- `%s.%s` = %s: %s\n", w.Component, w.Field, record.FormatValue(w.Value), w.Reason)
		}
		r.Println("")
	}

	r.Println(output.FormatHeader(2, "Artifacts"))
	r.Println("")
	rows := make([][]string, 0, len(out.Written)+len(out.Skipped))
	for _, a := range out.Written {
		rows = append(rows, []string{a.Component, "written", a.Path})
	}
	for _, c := range out.Skipped {
		rows = append(rows, []string{c, "skipped", skippedDetail(out, c)})
	}
	r.Table([]string{"Component", "Status", "Path"}, rows)

	return nil
}
