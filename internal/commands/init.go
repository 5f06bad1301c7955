package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bellows-cli/bellows/internal/output"
	"github.com/bellows-cli/bellows/internal/project"
)

// InitCmd creates and returns the 'init' command.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a starter schema and tool configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := project.NewScaffolder().Scaffold(); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success("Created bellows.yml and " + project.DefaultSchemaPath)
			output.Info("Next steps:")
			output.Step("edit " + project.DefaultSchemaPath)
			output.Step("bellows generate")
		},
	}
}
