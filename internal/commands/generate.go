package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bellows-cli/bellows/internal/generators/controller"
	"github.com/bellows-cli/bellows/internal/generators/migration"
	"github.com/bellows-cli/bellows/internal/generators/model"
	"github.com/bellows-cli/bellows/internal/generators/shared"
	"github.com/bellows-cli/bellows/internal/output"
	"github.com/bellows-cli/bellows/internal/project"
	"github.com/bellows-cli/bellows/internal/render"
	"github.com/bellows-cli/bellows/internal/resolve"
	"github.com/bellows-cli/bellows/internal/schema"
	"github.com/bellows-cli/bellows/internal/writer"
)

// GenerateCmd creates and returns the 'generate' command.
func GenerateCmd() *cobra.Command {
	var outputDir, namespace string
	var force, dryRun bool

	cmd := &cobra.Command{
		Use:   "generate [schema]",
		Short: "Generate Laravel artifacts from a schema file",
		Long: `Generate models, migrations, pivot tables, and controllers from a
bellows schema.

The schema path comes from the argument, bellows.yml, or defaults to
schema.yml. The whole schema is parsed and resolved first; nothing is
written unless every entity, field, and relationship checks out.

Existing files are skipped unless --force is given. Use --dry-run to see
what would be written without touching the filesystem.

Examples:
  bellows generate
  bellows generate blog.yml
  bellows generate blog.yml --output ../shop --force
  bellows generate --dry-run`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			s, w, err := prepare(args, outputDir, namespace, force, dryRun)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if err := emit(cmd.Context(), s, w); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides schema options)")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Model namespace (overrides schema options)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be written without writing")

	return cmd
}

// prepare loads configuration, parses and resolves the schema, and builds
// the writer. Flags beat bellows.yml, which beats the schema's own options.
func prepare(args []string, outputDir, namespace string, force, dryRun bool) (*resolve.Schema, *writer.Writer, error) {
	cfg, err := project.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	schemaPath := cfg.Schema
	if len(args) > 0 {
		schemaPath = args[0]
	}
	output.Verbose("Loading schema from: " + schemaPath)

	doc, err := schema.Parse(schemaPath)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Output != "" {
		doc.Options.OutputDir = cfg.Output
	}
	if cfg.Namespace != "" {
		doc.Options.Namespace = cfg.Namespace
	}
	if outputDir != "" {
		doc.Options.OutputDir = outputDir
	}
	if namespace != "" {
		doc.Options.Namespace = namespace
	}

	s, err := resolve.Resolve(doc)
	if err != nil {
		return nil, nil, err
	}

	w := writer.New(s.Options.Root())
	w.Force = force || cfg.Force || s.Options.ForceOverwrite
	w.DryRun = dryRun
	return s, w, nil
}

// emit runs every enabled generator and writes the artifacts.
func emit(ctx context.Context, s *resolve.Schema, w *writer.Writer) error {
	renderer := render.New()
	var artifacts []shared.Artifact

	if s.Options.GenerateModels() {
		models, err := model.New(renderer).Generate(s)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, models...)
	}

	migrations, err := migration.New(renderer).Generate(s, time.Time{})
	if err != nil {
		return err
	}
	artifacts = append(artifacts, migrations...)

	if s.Options.GenerateControllers() {
		controllers, err := controller.New(renderer).Generate(s)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, controllers...)
	}

	written, skipped := 0, 0
	for _, a := range artifacts {
		status, err := w.Write(ctx, a.Path, a.Content)
		if err != nil {
			return err
		}
		switch status {
		case writer.Skipped:
			output.Skip(a.Path + " exists, use --force to overwrite")
			skipped++
		case writer.Planned:
			output.Info("Would write " + a.Path)
		case writer.Overwritten:
			output.Success("Overwrote " + a.Path)
			written++
		default:
			output.Success("Created " + a.Path)
			written++
		}
	}

	if w.DryRun {
		output.Info(fmt.Sprintf("Dry run: %d files would be written", len(artifacts)))
		return nil
	}

	output.Info(fmt.Sprintf("Done: %d files written, %d skipped", written, skipped))
	if written > 0 {
		output.Step("php artisan migrate")
	}
	return nil
}
