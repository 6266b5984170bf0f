package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/rockerbogie/internal/cli/config"
	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var yamlTable bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new rover project",
		Long: `Initialize a new rover project with a configuration file and a sample
parameter table describing a small, buildable rover.

This creates:
  - rockerbogie.yaml configuration file
  - Parameters.csv (or Parameters.yaml with --yaml)
  - .gitignore excluding the generated dimensions/ directory`,
		Example: `  # Initialize in current directory
  rockerbogie init

  # Initialize in a new directory with a YAML parameter table
  rockerbogie init my-rover --yaml

  # Force overwrite existing files
  rockerbogie init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := config.FromContext(cmd.Context())
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.OutputMode())

			name := templateCSV
			if yamlTable {
				name = templateYAML
			}
			return runInit(r, dir, name, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&yamlTable, "yaml", false, "Scaffold a YAML parameter table and YAML artifacts")

	return cmd
}

func runInit(r *output.Renderer, dir, templateName string, force bool) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.FileName)
	}

	written, err := copyTemplate(templateName, dir, force)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	files, _ := listTemplateFiles(templateName)
	for _, f := range files {
		if slices.Contains(written, f) {
			r.StatusLine(f, "success", "")
		} else {
			r.StatusLine(f, "skipped", "(exists)")
		}
	}

	r.Println("")
	r.Success("Rover project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Edit the parameter table to describe your rover")
	r.Println("  2. Run 'rockerbogie validate' to check the rover width")
	r.Println("  3. Run 'rockerbogie derive' to write component dimensions")

	return nil
}
