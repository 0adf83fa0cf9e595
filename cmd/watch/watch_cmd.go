package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CodeContextHQ/ccc/bundle"
	"github.com/CodeContextHQ/ccc/config"
	"github.com/CodeContextHQ/ccc/internal/logging"
	"github.com/CodeContextHQ/ccc/traverse"
)

type watchOptions struct {
	configPath string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [files...]",
		Short: "Rebuild the bundle whenever watched source files change",
		Long: `Build a context bundle, then keep it up to date: watch the project for
source file changes and rebuild the bundle whenever one is written,
created, removed, or renamed. Requires an output file.

Examples:
  ccc watch src/app.py -o context.md
  ccc watch -f 'src/**/*.py' -r . -o context.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args)
		},
	}

	cmd.Flags().StringArrayP("root", "r", nil, "Project root for root-relative import resolution (repeatable, priority order)")
	cmd.Flags().IntP("max-depth", "d", traverse.UnlimitedDepth, "Extra expansion rounds beyond the first (-1 for unlimited)")
	cmd.Flags().StringP("output", "o", "", "Bundle destination file (required)")
	cmd.Flags().Int("sig-tokens", 0, "Token budget for the signatures section (0 for unlimited)")
	cmd.Flags().Bool("sig-detailed", false, "Include fields and constants in signatures")
	cmd.Flags().StringP("find", "f", "", "Glob pattern selecting additional files (supports **)")
	cmd.Flags().BoolP("verbose", "v", false, "Log traversal details to stderr")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (default: .ccc.yaml in CWD or $HOME)")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions, args []string) error {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return fmt.Errorf("watch requires an output file: pass --output or set output in the config")
	}
	if len(args) == 0 && cfg.Find == "" {
		return fmt.Errorf("no input files: pass file arguments or a --find pattern")
	}

	builder := bundle.NewBuilder(logging.New(cfg.Verbose))
	buildOpts := bundle.Options{
		Files:       args,
		Find:        cfg.Find,
		Roots:       cfg.Roots,
		MaxDepth:    cfg.MaxDepth,
		SigTokens:   cfg.SigTokens,
		SigDetailed: cfg.SigDetailed,
	}

	rebuild := func() error {
		content, _, err := builder.Build(buildOpts)
		if err != nil {
			return err
		}
		return os.WriteFile(cfg.Output, []byte(content), 0o644)
	}

	content, result, err := builder.Build(buildOpts)
	if err != nil {
		return fmt.Errorf("initial bundle build failed: %w", err)
	}
	if err := os.WriteFile(cfg.Output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	dirs := watchDirs(result, cfg.Roots)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %d directories\n", len(dirs))
	fmt.Fprintf(cmd.OutOrStdout(), "Bundle: %s\n", cfg.Output)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndRebuild(ctx, dirs, rebuild)
}

// watchDirs picks the directory trees to watch: the configured roots when
// there are any, otherwise the directories of every discovered file.
func watchDirs(result traverse.Result, roots []string) []string {
	if len(roots) > 0 {
		return roots
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, path := range result.Paths() {
		dir := filepath.Dir(path)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}

	return dirs
}
