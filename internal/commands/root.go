package commands

import (
	"github.com/spf13/cobra"

	"github.com/bellows-cli/bellows"
	"github.com/bellows-cli/bellows/internal/output"
)

// RootCmd creates and returns the root command for the bellows CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bellows",
		Short: "Declarative scaffolding for Laravel applications",
		Long: `Bellows turns a declarative YAML schema into Laravel artifacts.

Describe your entities, fields, and relationships once, and bellows
generates models, migrations, pivot tables, and controllers with every
name and key resolved up front:
• Foreign keys and pivot tables inferred from naming convention
• Migrations emitted in dependency order
• The whole schema validated before a single file is written`,
		Version: bellows.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
