// Package resolve turns a raw schema document into a fully resolved,
// dependency-ordered, immutable schema ready for artifact emission.
//
// Resolution is a pure function of the document: field types are checked and
// defaulted, relationship keys and pivot tables are inferred from naming
// convention, a dependency graph orders entities for single-pass emission,
// and a final validation pass accumulates every remaining violation. There is
// no partial result: either the whole document resolves, or the complete
// error list comes back.
package resolve

import (
	"github.com/bellows-cli/bellows/internal/naming"
	"github.com/bellows-cli/bellows/internal/schema"
)

// Entity is a fully resolved entity with its storage name, specified fields
// and classified relationships.
type Entity struct {
	Name        string
	Table       string
	Fields      []Field
	Relations   []Relation
	Timestamps  bool
	SoftDeletes bool
	Traits      []string
}

// Schema is the terminal artifact of resolution: entities in dependency-safe
// emission order, followed by every pivot table, plus the document's global
// options. It is read-only from the emitters' point of view.
type Schema struct {
	Entities []*Entity
	Pivots   []*Pivot
	Options  schema.Options
}

// Entity returns the resolved entity with the given name, or nil.
func (s *Schema) Entity(name string) *Entity {
	for _, e := range s.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Resolve runs the full resolution pipeline over a parsed document. On
// failure it returns the accumulated ErrorList; no schema is produced, even
// when parts of the document resolved cleanly.
func Resolve(doc *schema.Document) (*Schema, error) {
	var errs ErrorList

	declared := make(map[string]bool, len(doc.Models))
	for _, m := range doc.Models {
		declared[m.Name] = true
	}

	pivots := newPivotRegistry()
	pivots.seed(doc, declared, &errs)

	entities := make([]*Entity, 0, len(doc.Models))
	for _, m := range doc.Models {
		e := &Entity{
			Name:        m.Name,
			Table:       m.Table,
			Timestamps:  m.Timestamps,
			SoftDeletes: m.SoftDeletes,
			Traits:      m.Traits,
		}
		if e.Table == "" {
			e.Table = naming.TableName(m.Name)
		}

		for _, rf := range m.Fields {
			if f, ok := resolveField(m.Name, rf, &errs); ok {
				e.Fields = append(e.Fields, f)
			}
		}
		for _, rr := range m.Relationships {
			if rel, ok := resolveRelationship(m.Name, rr, declared, pivots, &errs); ok {
				e.Relations = append(e.Relations, rel)
			}
		}
		entities = append(entities, e)
	}

	validate(entities, &errs)

	graph := buildGraph(entities)
	order, cycleErr := graph.topoSort()
	if cycleErr != nil {
		errs.add(cycleErr)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	byName := make(map[string]*Entity, len(entities))
	for _, e := range entities {
		byName[e.Name] = e
	}
	ordered := make([]*Entity, 0, len(entities))
	for _, name := range order {
		ordered = append(ordered, byName[name])
	}

	return &Schema{
		Entities: ordered,
		Pivots:   pivots.list(),
		Options:  doc.Options,
	}, nil
}
