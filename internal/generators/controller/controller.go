// Package controller emits resource controllers with index, show, store,
// update, and destroy actions.
package controller

import (
	"embed"
	"fmt"
	"strings"

	"github.com/bellows-cli/bellows/internal/generators/shared"
	"github.com/bellows-cli/bellows/internal/render"
	"github.com/bellows-cli/bellows/internal/resolve"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator emits one controller per entity.
type Generator struct {
	renderer *render.Renderer
}

func New(renderer *render.Renderer) *Generator {
	return &Generator{renderer: renderer}
}

type templateData struct {
	Name       string
	Variable   string
	ModelUse   string
	Validation []validationEntry
}

type validationEntry struct {
	Field string
	Rule  string
}

// Generate produces a controller artifact for every entity in the schema.
func (g *Generator) Generate(s *resolve.Schema) ([]shared.Artifact, error) {
	artifacts := make([]shared.Artifact, 0, len(s.Entities))
	for _, e := range s.Entities {
		data := templateData{
			Name:     e.Name,
			Variable: strings.ToLower(e.Name),
			ModelUse: shared.ModelNamespace(e.Name, s.Options) + `\` + e.Name,
		}
		for _, f := range e.Fields {
			rule := "required"
			if f.Nullable {
				rule = "nullable"
			}
			data.Validation = append(data.Validation, validationEntry{Field: f.Name, Rule: rule})
		}

		content, err := g.renderer.RenderFS(templatesFS, "templates/controller.php.tmpl", data)
		if err != nil {
			return nil, fmt.Errorf("generating controller for %s: %w", e.Name, err)
		}

		artifacts = append(artifacts, shared.Artifact{
			Path:    shared.ControllerPath(e.Name, s.Options),
			Content: content,
		})
	}
	return artifacts, nil
}
