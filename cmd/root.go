package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/CodeContextHQ/ccc/cmd/deps"
	"github.com/CodeContextHQ/ccc/cmd/languages"
	"github.com/CodeContextHQ/ccc/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// copyToClipboard is a persistent flag to enable automatic clipboard copying
var copyToClipboard bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ccc",
	Short: "Bundle source files with their dependency context for code review and AI tools",
	Long: `ccc builds context bundles from your codebase: the full content of the
files you name plus condensed signatures of everything they transitively
import. It supports Python, JavaScript, TypeScript, and Java files,
resolving project-local imports while ignoring external packages.

Use 'ccc --help' to see all available commands, or 'ccc <command> --help'
for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(deps.Cmd)
	rootCmd.AddCommand(watch.Cmd)
	rootCmd.AddCommand(languages.Cmd)

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	// Update version field dynamically (in case it was set via ldflags)
	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	// Add persistent clipboard flag
	rootCmd.PersistentFlags().BoolVarP(&copyToClipboard, "clipboard", "b", false, "Automatically copy output to clipboard")
}
