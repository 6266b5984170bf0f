package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
	"github.com/leapstack-labs/rockerbogie/internal/record"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <artifact>",
		Short: "Show a written artifact",
		Long: `Read a component artifact back and render its fields.

The argument is either a component name, looked up in the output directory,
or a path to an artifact file in either format.`,
		Example: `  # Show the front rocker linkage from the output directory
  rockerbogie show front_rocker_linkage

  # Show an artifact by path
  rockerbogie show dimensions/upper_shaft.yaml -o json`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return componentNames(), cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(NewCommandContext(cmd), args[0])
		},
	}

	return cmd
}

// resolveArtifact maps a component name or path to an artifact file. Names
// are tried in the configured format first, then the other one.
func resolveArtifact(cc *CommandContext, arg string) (string, error) {
	if strings.ContainsRune(arg, filepath.Separator) || strings.ContainsRune(arg, '/') || filepath.Ext(arg) != "" {
		if _, err := os.Stat(arg); err != nil {
			return "", fmt.Errorf("artifact not found: %s", arg)
		}
		return arg, nil
	}

	formats := []record.Format{cc.Cfg.RecordFormat(), record.FormatText, record.FormatYAML}
	for _, f := range formats {
		candidate := filepath.Join(cc.Cfg.OutDir, arg+f.Ext())
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no artifact for %q in %s\nHint: run 'rockerbogie derive' first", arg, cc.Cfg.OutDir)
}

func runShow(cc *CommandContext, arg string) error {
	path, err := resolveArtifact(cc, arg)
	if err != nil {
		return err
	}
	rec, err := record.ReadFile(path)
	if err != nil {
		return err
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		out := output.ShowOutput{Component: rec.Name, Path: path, Fields: make([]output.Field, 0, len(rec.Fields))}
		for _, f := range rec.Fields {
			out.Fields = append(out.Fields, output.Field{Name: f.Name, Value: f.Value, Unit: f.Unit})
		}
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		rows = append(rows, []string{f.Name, record.FormatValue(f.Value), f.Unit})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, rec.Name))
		r.Println("")
		r.Println(output.FormatKeyValue("Path", path))
		r.Println("")
	} else {
		r.Header(1, r.Title(rec.Name))
		r.Muted(path)
	}
	r.Table([]string{"Field", "Value", "Unit"}, rows)
	return nil
}
