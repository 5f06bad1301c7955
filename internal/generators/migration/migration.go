// Package migration emits create-table migrations from a resolved schema.
// Entity migrations come out in dependency order and pivot migrations last,
// with filenames numbered so they run in that order.
package migration

import (
	"embed"
	"fmt"
	"time"

	"github.com/bellows-cli/bellows/internal/generators/shared"
	"github.com/bellows-cli/bellows/internal/naming"
	"github.com/bellows-cli/bellows/internal/render"
	"github.com/bellows-cli/bellows/internal/resolve"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator emits one migration per entity table and per pivot table.
type Generator struct {
	renderer *render.Renderer
}

func New(renderer *render.Renderer) *Generator {
	return &Generator{renderer: renderer}
}

type tableData struct {
	Table       string
	HasID       bool
	Columns     []string
	Timestamps  bool
	SoftDeletes bool
	ForeignKeys []string
}

// Generate produces migration artifacts for every table in the schema.
// baseTime anchors the filename numbering; pass the zero value to use the
// current time.
func (g *Generator) Generate(s *resolve.Schema, baseTime time.Time) ([]shared.Artifact, error) {
	var artifacts []shared.Artifact
	offset := 0

	if s.Options.GenerateMigrations() {
		for _, e := range s.Entities {
			content, err := g.renderer.RenderFS(templatesFS, "templates/migration.php.tmpl", entityData(e, s))
			if err != nil {
				return nil, fmt.Errorf("generating migration for %s: %w", e.Name, err)
			}
			artifacts = append(artifacts, shared.Artifact{
				Path:    shared.MigrationPath(Number(baseTime, offset), e.Table),
				Content: content,
			})
			offset++
		}
	}

	if s.Options.GeneratePivotTables() {
		for _, p := range s.Pivots {
			content, err := g.renderer.RenderFS(templatesFS, "templates/migration.php.tmpl", pivotData(p, s))
			if err != nil {
				return nil, fmt.Errorf("generating migration for %s: %w", p.Table, err)
			}
			artifacts = append(artifacts, shared.Artifact{
				Path:    shared.MigrationPath(Number(baseTime, offset), p.Table),
				Content: content,
			})
			offset++
		}
	}

	return artifacts, nil
}

func entityData(e *resolve.Entity, s *resolve.Schema) tableData {
	data := tableData{
		Table:       e.Table,
		Timestamps:  e.Timestamps,
		SoftDeletes: e.SoftDeletes,
	}

	data.HasID = true
	for _, f := range e.Fields {
		if f.Primary {
			data.HasID = false
		}
	}

	declared := make(map[string]bool, len(e.Fields))
	for _, f := range e.Fields {
		data.Columns = append(data.Columns, columnLine(f))
		declared[f.Name] = true
	}

	for _, rel := range e.Relations {
		bt, ok := rel.(resolve.BelongsTo)
		if !ok {
			continue
		}
		// An implied foreign key column is non-nullable; set-null policies
		// need the column declared as a nullable field.
		if !declared[bt.ForeignKey] {
			data.Columns = append(data.Columns,
				fmt.Sprintf("$table->unsignedBigInteger('%s');", bt.ForeignKey))
			declared[bt.ForeignKey] = true
		}
		data.ForeignKeys = append(data.ForeignKeys,
			foreignKeyLine(bt.ForeignKey, bt.LocalKey, tableOf(s, bt.Target), bt.OnDelete, bt.OnUpdate))
	}

	return data
}

func pivotData(p *resolve.Pivot, s *resolve.Schema) tableData {
	data := tableData{
		Table:      p.Table,
		HasID:      true,
		Timestamps: p.Timestamps,
	}

	if p.Polymorphic() {
		data.Columns = append(data.Columns,
			fmt.Sprintf("$table->unsignedBigInteger('%s');", p.LeftKey),
			fmt.Sprintf("$table->unsignedBigInteger('%s');", p.RightKey),
			fmt.Sprintf("$table->string('%s_type');", naming.Snake(p.Morph)),
			fmt.Sprintf("$table->index(['%s', '%s_type']);", p.RightKey, naming.Snake(p.Morph)),
		)
		data.ForeignKeys = append(data.ForeignKeys,
			foreignKeyLine(p.LeftKey, "id", tableOf(s, p.LeftEntity), resolve.CascadeCascade, resolve.CascadeCascade))
		return data
	}

	data.Columns = append(data.Columns,
		fmt.Sprintf("$table->unsignedBigInteger('%s');", p.LeftKey),
		fmt.Sprintf("$table->unsignedBigInteger('%s');", p.RightKey),
	)
	for _, f := range p.Columns {
		data.Columns = append(data.Columns, columnLine(f))
	}
	data.Columns = append(data.Columns,
		fmt.Sprintf("$table->unique(['%s', '%s']);", p.LeftKey, p.RightKey))

	data.ForeignKeys = append(data.ForeignKeys,
		foreignKeyLine(p.LeftKey, "id", tableOf(s, p.LeftEntity), resolve.CascadeCascade, resolve.CascadeCascade),
		foreignKeyLine(p.RightKey, "id", tableOf(s, p.RightEntity), resolve.CascadeCascade, resolve.CascadeCascade))

	return data
}

// tableOf returns the storage table of a resolved entity, falling back to
// naming convention when the entity is outside the schema.
func tableOf(s *resolve.Schema, entity string) string {
	if e := s.Entity(entity); e != nil {
		return e.Table
	}
	return naming.TableName(entity)
}
