package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
	"github.com/leapstack-labs/rockerbogie/internal/record"
	"github.com/leapstack-labs/rockerbogie/internal/rover"
)

// NewParamsCommand creates the params command.
func NewParamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "List the parameter table",
		Long: `List every entry of the loaded parameter table, marking the ones the
derivation requires, and report required parameters the table lacks.`,
		Example: `  # List the configured table
  rockerbogie params

  # List another table as JSON
  rockerbogie params --params rover.yaml -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runParams(NewCommandContext(cmd))
		},
	}

	return cmd
}

func runParams(cc *CommandContext) error {
	table, err := cc.LoadTable()
	if err != nil {
		return err
	}

	required := make(map[string]bool)
	out := output.ParamsOutput{Source: table.Source(), Missing: []string{}}
	for _, name := range rover.ParameterNames() {
		required[name] = true
		if _, ok := table.Lookup(name); !ok {
			out.Missing = append(out.Missing, name)
		}
	}
	for _, name := range table.Names() {
		q, _ := table.Lookup(name)
		out.Parameters = append(out.Parameters, output.Parameter{
			Name:     name,
			Value:    q.Value,
			Unit:     q.Unit,
			Required: required[name],
		})
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(out.Parameters))
	for _, p := range out.Parameters {
		used := "yes"
		if !p.Required {
			used = "no"
		}
		rows = append(rows, []string{p.Name, record.FormatValue(p.Value), p.Unit, used})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Parameters"))
		r.Println("")
		r.Println(output.FormatKeyValue("Source", out.Source))
		r.Println("")
	} else {
		r.Header(1, "Parameters")
		r.Muted(out.Source)
	}
	r.Table([]string{"Name", "Value", "Unit", "Required"}, rows)

	for _, name := range out.Missing {
		r.Warning(fmt.Sprintf("missing required parameter %s", name))
	}
	return nil
}
