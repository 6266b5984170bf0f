package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/rockerbogie/internal/cli/output"
	"github.com/leapstack-labs/rockerbogie/internal/rover"
)

// GraphQuerier provides read-only access to DAG structure.
type GraphQuerier interface {
	GetParents(string) []string
	GetChildren(string) []string
	GetRoots() []string
	GetLeaves() []string
	NodeCount() int
	EdgeCount() int
}

// NewDAGCommand creates the dag command.
func NewDAGCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dag [component]",
		Short: "Show the component dependency graph",
		Long: `Display the dependency graph (DAG) of derived components.

Components are grouped by execution level: each level only depends on
components in earlier levels. Given a component, dag lists every component
it is derived from and every component derived from it instead.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  # Show the DAG
  rockerbogie dag

  # What changes when the upper spacer changes
  rockerbogie dag upper_spacer

  # Output as JSON
  rockerbogie dag --output json

  # Output as Markdown
  rockerbogie dag --output markdown`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return componentNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runDAGImpact(cmd, args[0])
			}
			return runDAG(cmd)
		},
	}

	return cmd
}

func runDAG(cmd *cobra.Command) error {
	r := NewCommandContext(cmd).Renderer

	graph, err := rover.ComponentGraph()
	if err != nil {
		return err
	}

	levels, err := graph.GetExecutionLevels()
	if err != nil {
		return fmt.Errorf("failed to get execution levels: %w", err)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return dagJSON(r, graph, levels)
	case output.ModeMarkdown:
		return dagMarkdown(r, graph, levels)
	default:
		return dagText(r, graph, levels)
	}
}

// dagText outputs DAG in styled text format.
func dagText(r *output.Renderer, graph GraphQuerier, levels [][]string) error {
	styles := r.Styles()

	r.Header(1, "Component Graph")

	for i, level := range levels {
		r.Println(styles.Header2.Render(fmt.Sprintf("Level %d:", i)))
		for _, c := range level {
			deps := graph.GetParents(c)
			children := graph.GetChildren(c)

			r.Printf("  %s\n", styles.Component.Render(c))
			if len(deps) > 0 {
				r.Printf("    %s %s\n", styles.Muted.Render("depends on:"), strings.Join(deps, ", "))
			}
			if len(children) > 0 {
				r.Printf("    %s %s\n", styles.Muted.Render("used by:"), strings.Join(children, ", "))
			}
		}
		r.Println("")
	}

	r.Printf("%s %s\n", styles.Muted.Render("inputs:"), strings.Join(graph.GetRoots(), ", "))
	r.Printf("%s %s\n", styles.Muted.Render("final parts:"), strings.Join(graph.GetLeaves(), ", "))
	r.Println(styles.Muted.Render(fmt.Sprintf("Total: %d components, %d dependencies", graph.NodeCount(), graph.EdgeCount())))

	return nil
}

// dagMarkdown outputs DAG in markdown format.
func dagMarkdown(r *output.Renderer, graph GraphQuerier, levels [][]string) error {
	r.Println(output.FormatHeader(1, "Component Graph"))
	r.Println("")

	for i, level := range levels {
		levelName := fmt.Sprintf("Level %d", i)
		if i == 0 {
			levelName = "Level 0 (Linkages)"
		}
		r.Println(output.FormatHeader(2, levelName))

		for _, c := range level {
			deps := graph.GetParents(c)
			children := graph.GetChildren(c)

			r.Printf("- %s\n", c)
			if len(deps) > 0 {
				r.Printf("  - depends on: %s\n", strings.Join(deps, ", "))
			}
			if len(children) > 0 {
				r.Printf("  - used by: %s\n", strings.Join(children, ", "))
			}
		}
		r.Println("")
	}

	r.Println(output.FormatHeader(2, "Summary"))
	r.Println(output.FormatKeyValue("Inputs", strings.Join(graph.GetRoots(), ", ")))
	r.Println(output.FormatKeyValue("Final Parts", strings.Join(graph.GetLeaves(), ", ")))
	r.Println(output.FormatKeyValue("Total Components", fmt.Sprintf("%d", graph.NodeCount())))
	r.Println(output.FormatKeyValue("Total Dependencies", fmt.Sprintf("%d", graph.EdgeCount())))

	return nil
}

// dagJSON outputs DAG in JSON format.
func dagJSON(r *output.Renderer, graph GraphQuerier, levels [][]string) error {
	dagOutput := output.DAGOutput{
		Levels:          make([]output.DAGLevel, 0, len(levels)),
		Roots:           nonNil(graph.GetRoots()),
		Leaves:          nonNil(graph.GetLeaves()),
		TotalComponents: graph.NodeCount(),
		TotalEdges:      graph.EdgeCount(),
	}

	for i, level := range levels {
		dagLevel := output.DAGLevel{
			Level:      i,
			Components: make([]output.DAGNode, 0, len(level)),
		}

		for _, c := range level {
			dagLevel.Components = append(dagLevel.Components, output.DAGNode{
				Component: c,
				DependsOn: nonNil(graph.GetParents(c)),
				UsedBy:    nonNil(graph.GetChildren(c)),
			})
		}

		dagOutput.Levels = append(dagOutput.Levels, dagLevel)
	}

	return r.JSON(dagOutput)
}

// runDAGImpact shows the transitive dependencies and dependents of one component.
func runDAGImpact(cmd *cobra.Command, component string) error {
	r := NewCommandContext(cmd).Renderer

	graph, err := rover.ComponentGraph()
	if err != nil {
		return err
	}
	if _, ok := graph.GetNode(component); !ok {
		return fmt.Errorf("unknown component %q (known: %s)", component, strings.Join(componentNames(), ", "))
	}

	impact := output.DAGImpact{
		Component:  component,
		Upstream:   nonNil(graph.GetUpstreamNodes(component)),
		Downstream: nonNil(graph.GetDownstreamNodes(component)),
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(impact)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, component))
		r.Println("")
		r.Println(output.FormatKeyValue("Derived from", joinOrNone(impact.Upstream)))
		r.Println(output.FormatKeyValue("Feeds", joinOrNone(impact.Downstream)))
	default:
		styles := r.Styles()
		r.Header(1, r.Title(component))
		r.Printf("  %s %s\n", styles.Muted.Render("derived from:"), joinOrNone(impact.Upstream))
		r.Printf("  %s %s\n", styles.Muted.Render("feeds:"), joinOrNone(impact.Downstream))
	}
	return nil
}

func componentNames() []string {
	names := make([]string, 0, len(rover.Components()))
	for _, c := range rover.Components() {
		names = append(names, string(c))
	}
	return names
}

func joinOrNone(s []string) string {
	if len(s) == 0 {
		return "(none)"
	}
	return strings.Join(s, ", ")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
