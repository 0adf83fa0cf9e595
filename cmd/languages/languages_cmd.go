package languages

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodeContextHQ/ccc/traverse"
)

// Cmd represents the languages command.
var Cmd = NewCommand()

// NewCommand returns a new languages command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List all supported languages and file extensions",
		Long: `List all supported programming languages and their mapped file extensions.

Examples:
  ccc languages`,
		RunE: runLanguages,
	}

	return cmd
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	for _, module := range traverse.SupportedModules() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", module.Name(), strings.Join(module.Extensions(), ", ")); err != nil {
			return err
		}
	}

	return nil
}
