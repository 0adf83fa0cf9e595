package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/CodeContextHQ/ccc/bundle"
	"github.com/CodeContextHQ/ccc/config"
	"github.com/CodeContextHQ/ccc/internal/logging"
	"github.com/CodeContextHQ/ccc/traverse"
)

type bundleOptions struct {
	configPath string
}

// bundleCmd represents the bundle command
var bundleCmd = newBundleCommand()

func newBundleCommand() *cobra.Command {
	opts := &bundleOptions{}

	cmd := &cobra.Command{
		Use:   "bundle [files...]",
		Short: "Build a context bundle from the named files and their dependencies",
		Long: `Build a markdown context bundle: full content of the files you name,
followed by condensed signatures of every project file they transitively
import. Imports that resolve outside the project, or to unsupported file
types, are skipped.

Example usage:
  ccc bundle src/app.py
  ccc bundle src/app.py -r . -d 2
  ccc bundle -f 'src/**/*.py' -o context.md
  ccc bundle src/app.py --sig-only
  ccc bundle src/app.py --sig-tokens 4096`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd, opts, args)
		},
	}

	cmd.Flags().StringArrayP("root", "r", nil, "Project root for root-relative import resolution (repeatable, priority order)")
	cmd.Flags().IntP("max-depth", "d", traverse.UnlimitedDepth, "Extra expansion rounds beyond the first (-1 for unlimited)")
	cmd.Flags().StringP("output", "o", "", "Write the bundle to a file instead of stdout")
	cmd.Flags().Int("sig-tokens", 0, "Token budget for the signatures section (0 for unlimited)")
	cmd.Flags().Bool("sig-only", false, "Render signatures of the named files instead of a full bundle")
	cmd.Flags().Bool("sig-detailed", false, "Include fields and constants in signatures")
	cmd.Flags().StringP("find", "f", "", "Glob pattern selecting additional files (supports **)")
	cmd.Flags().BoolP("verbose", "v", false, "Log traversal details to stderr")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (default: .ccc.yaml in CWD or $HOME)")

	return cmd
}

func runBundle(cmd *cobra.Command, opts *bundleOptions, args []string) error {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	if len(args) == 0 && cfg.Find == "" {
		return fmt.Errorf("no input files: pass file arguments or a --find pattern")
	}

	builder := bundle.NewBuilder(logging.New(cfg.Verbose))
	content, _, err := builder.Build(bundle.Options{
		Files:       args,
		Find:        cfg.Find,
		Roots:       cfg.Roots,
		MaxDepth:    cfg.MaxDepth,
		SigTokens:   cfg.SigTokens,
		SigOnly:     cfg.SigOnly,
		SigDetailed: cfg.SigDetailed,
	})
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write bundle: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Bundle written to %s\n", cfg.Output)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), content)
	}

	if copyToClipboard {
		if err := clipboard.WriteAll(content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\n✅ Content copied to your clipboard.")
	}

	return nil
}
