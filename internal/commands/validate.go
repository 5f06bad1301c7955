package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bellows-cli/bellows/internal/output"
	"github.com/bellows-cli/bellows/internal/project"
	"github.com/bellows-cli/bellows/internal/resolve"
	"github.com/bellows-cli/bellows/internal/schema"
)

// ValidateCmd creates and returns the 'validate' command.
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [schema]",
		Short: "Check a schema file without generating anything",
		Long: `Parse and resolve a schema, reporting every problem found.

Validation runs the full resolution pipeline, so it catches everything
generation would: unknown types, bad relationship targets, pivot key
conflicts, dependency cycles, and naming violations. All errors are
reported in one pass.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := project.LoadConfig()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			schemaPath := cfg.Schema
			if len(args) > 0 {
				schemaPath = args[0]
			}

			doc, err := schema.Parse(schemaPath)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			s, err := resolve.Resolve(doc)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("%s is valid: %d entities, %d pivot tables",
				schemaPath, len(s.Entities), len(s.Pivots)))
			for _, e := range s.Entities {
				output.Step(fmt.Sprintf("%s (%s)", e.Name, e.Table))
			}
		},
	}
}
