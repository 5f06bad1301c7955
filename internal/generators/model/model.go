// Package model emits Eloquent model classes from a resolved schema.
package model

import (
	"embed"
	"fmt"

	"github.com/bellows-cli/bellows/internal/generators/shared"
	"github.com/bellows-cli/bellows/internal/render"
	"github.com/bellows-cli/bellows/internal/resolve"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator emits one model class per entity.
type Generator struct {
	renderer *render.Renderer
}

func New(renderer *render.Renderer) *Generator {
	return &Generator{renderer: renderer}
}

// Generate produces a model artifact for every entity in the schema.
func (g *Generator) Generate(s *resolve.Schema) ([]shared.Artifact, error) {
	artifacts := make([]shared.Artifact, 0, len(s.Entities))
	for _, e := range s.Entities {
		data := prepareData(e, s.Options)

		content, err := g.renderer.RenderFS(templatesFS, "templates/model.php.tmpl", data)
		if err != nil {
			return nil, fmt.Errorf("generating model for %s: %w", e.Name, err)
		}

		artifacts = append(artifacts, shared.Artifact{
			Path:    shared.ModelPath(e.Name, s.Options),
			Content: content,
		})
	}
	return artifacts, nil
}
