package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
	"github.com/leapstack-labs/rockerbogie/internal/record"
	"github.com/leapstack-labs/rockerbogie/internal/rover"
)

// ErrWidthCheckFailed is returned by validate --strict when the rover is too narrow.
var ErrWidthCheckFailed = errors.New("rover width check failed")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the wheel stack fits the rover width",
		Long: `Check that the axial stack between the frame and the outer wheel face
(shaft clearance, swingarm, two linkages, two wheel clearances, shaft
overhang, middle wheel shaft and wheel) fits within half of the width left
over by the frame.

The check is informational: the exit status is 0 even when it fails,
unless --strict is given.`,
		Example: `  # Report the width check
  rockerbogie validate

  # Fail with a non-zero exit status when the check fails
  rockerbogie validate --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(NewCommandContext(cmd), strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when the check fails")

	return cmd
}

func runValidate(cc *CommandContext, strict bool) error {
	table, err := cc.LoadTable()
	if err != nil {
		return err
	}
	p, err := rover.FromTable(table)
	if err != nil {
		return err
	}

	check := rover.ValidateRoverWidth(p)
	out := output.ValidateOutput{
		Params: cc.Cfg.Params,
		Width: output.WidthCheck{
			Passed:            check.Passed,
			RequiredClearance: check.RequiredClearance,
			Target:            check.Target,
		},
	}

	r := cc.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		if err := r.JSON(out); err != nil {
			return err
		}
	case output.ModeMarkdown:
		status := "PASS"
		if !check.Passed {
			status = "FAIL"
		}
		r.Println(output.FormatHeader(1, "Width Check"))
		r.Println("")
		r.Printf("**[%s]** %s\n", status, widthSummary(out.Width))
		r.Println("")
		r.Println(output.FormatKeyValue("Required clearance", record.FormatValue(check.RequiredClearance)+" mm"))
		r.Println(output.FormatKeyValue("Target", record.FormatValue(check.Target)+" mm"))
	default:
		if check.Passed {
			r.Success(widthSummary(out.Width))
		} else {
			r.Println(r.Styles().StatusFailed.String() + " " + r.Styles().Warning.Render(widthSummary(out.Width)))
		}
	}

	if strict && !check.Passed {
		return fmt.Errorf("%w: %s", ErrWidthCheckFailed, widthSummary(out.Width))
	}
	return nil
}
