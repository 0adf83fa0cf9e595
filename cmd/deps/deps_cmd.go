package deps

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/spf13/cobra"

	"github.com/CodeContextHQ/ccc/bundle"
	"github.com/CodeContextHQ/ccc/config"
	"github.com/CodeContextHQ/ccc/internal/logging"
	"github.com/CodeContextHQ/ccc/traverse"
)

type depsOptions struct {
	configPath string
	showEdges  bool
	showCycles bool
}

// Cmd represents the deps command.
var Cmd = NewCommand()

// NewCommand returns a new deps command instance.
func NewCommand() *cobra.Command {
	opts := &depsOptions{}

	cmd := &cobra.Command{
		Use:   "deps <files...>",
		Short: "List the resolved dependency closure of the named files",
		Long: `List every project file reachable from the named files, tagged with the
hop count at which it was first discovered. Optionally print the resolved
import edges and any dependency cycles.

Examples:
  ccc deps src/app.py
  ccc deps src/app.py -r . -d 1
  ccc deps src/app.py --edges
  ccc deps src/app.py --cycles`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeps(cmd, opts, args)
		},
	}

	cmd.Flags().StringArrayP("root", "r", nil, "Project root for root-relative import resolution (repeatable, priority order)")
	cmd.Flags().IntP("max-depth", "d", traverse.UnlimitedDepth, "Extra expansion rounds beyond the first (-1 for unlimited)")
	cmd.Flags().BoolP("verbose", "v", false, "Log traversal details to stderr")
	cmd.Flags().BoolVar(&opts.showEdges, "edges", false, "Print resolved import edges")
	cmd.Flags().BoolVar(&opts.showCycles, "cycles", false, "Print dependency cycles")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (default: .ccc.yaml in CWD or $HOME)")

	return cmd
}

func runDeps(cmd *cobra.Command, opts *depsOptions, args []string) error {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	files, err := bundle.CollectFiles(args, "")
	if err != nil {
		return err
	}

	traverser := traverse.NewTraverser(nil, logging.New(cfg.Verbose))
	result, err := traverser.Traverse(files, cfg.Roots, cfg.MaxDepth)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, file := range result.Files {
		fmt.Fprintf(out, "[%d] %s\n", file.Depth, file.Path)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "warning: %s: %s\n", warning.Path, warning.Reason)
	}

	if opts.showEdges {
		fmt.Fprintln(out)
		for _, edge := range result.Edges {
			fmt.Fprintf(out, "%s -> %s\n", edge.From, edge.To)
		}
	}

	if opts.showCycles {
		cycles, err := findCycles(result)
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		if len(cycles) == 0 {
			fmt.Fprintln(out, "No dependency cycles.")
		}
		for _, cycle := range cycles {
			fmt.Fprintf(out, "cycle: %s\n", strings.Join(cycle, " <-> "))
		}
	}

	return nil
}

// findCycles reports the strongly connected components with more than one
// member, each sorted for stable output.
func findCycles(result traverse.Result) ([][]string, error) {
	g := graph.New(graph.StringHash, graph.Directed())

	for _, file := range result.Files {
		if err := g.AddVertex(file.Path); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, fmt.Errorf("failed to add vertex %s: %w", file.Path, err)
		}
	}
	for _, edge := range result.Edges {
		if err := g.AddEdge(edge.From, edge.To); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return nil, fmt.Errorf("failed to add edge %s -> %s: %w", edge.From, edge.To, err)
		}
	}

	components, err := graph.StronglyConnectedComponents(g)
	if err != nil {
		return nil, fmt.Errorf("failed to compute cycles: %w", err)
	}

	var cycles [][]string
	for _, component := range components {
		if len(component) < 2 {
			continue
		}
		sort.Strings(component)
		cycles = append(cycles, component)
	}
	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i][0] < cycles[j][0]
	})

	return cycles, nil
}
