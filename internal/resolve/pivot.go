package resolve

import (
	"github.com/bellows-cli/bellows/internal/naming"
	"github.com/bellows-cli/bellows/internal/schema"
)

// Pivot is a resolved join table. For a plain many-to-many pivot both entity
// sides are set; for a polymorphic pivot Morph carries the discriminator name
// and RightKey is the "{morph}_id" column, with the "{morph}_type" column
// implied.
type Pivot struct {
	Table       string
	LeftEntity  string
	RightEntity string
	LeftKey     string
	RightKey    string
	Morph       string
	Timestamps  bool
	Columns     []Field

	declared bool
}

// keyFor returns the pivot column holding the foreign key of the given
// entity side, or "" when the entity is not a side of this pivot.
func (p *Pivot) keyFor(entity string) string {
	switch entity {
	case p.LeftEntity:
		return p.LeftKey
	case p.RightEntity:
		return p.RightKey
	}
	return ""
}

// Polymorphic reports whether this pivot serves a morph-to-many relationship.
func (p *Pivot) Polymorphic() bool { return p.Morph != "" }

// pivotRegistry tracks every pivot in the schema, keyed by table name. Pivots
// are created lazily by relationship resolution and merged when the same
// table is reached from the opposite direction; declared pivots are seeded
// first and must be reused rather than re-derived. Insertion order is kept so
// emission is deterministic.
type pivotRegistry struct {
	order  []string
	byName map[string]*Pivot
}

func newPivotRegistry() *pivotRegistry {
	return &pivotRegistry{byName: make(map[string]*Pivot)}
}

// seed registers every explicitly declared pivot table before relationship
// resolution runs.
func (r *pivotRegistry) seed(doc *schema.Document, declared map[string]bool, errs *ErrorList) {
	for _, raw := range doc.PivotTables {
		if _, exists := r.byName[raw.Name]; exists {
			errs.addf(DuplicateTableName, raw.Name, "", "",
				"pivot table '%s' is declared more than once", raw.Name)
			continue
		}

		for _, m := range []string{raw.Model1, raw.Model2} {
			if !declared[m] {
				errs.addf(UnknownTargetEntity, raw.Name, "", "",
					"pivot table references undeclared entity '%s'", m)
			}
		}

		p := &Pivot{
			Table:       raw.Name,
			LeftEntity:  raw.Model1,
			RightEntity: raw.Model2,
			LeftKey:     raw.ForeignKey1,
			RightKey:    raw.ForeignKey2,
			Timestamps:  raw.Timestamps,
			declared:    true,
		}
		for _, rf := range raw.Fields {
			if f, ok := resolveField(raw.Name, rf, errs); ok {
				p.Columns = append(p.Columns, f)
			}
		}
		r.insert(p)
	}
}

// attach resolves the pivot for a belongsToMany relationship declared on
// owner. When the pivot already exists (declared up front, or created by the
// opposite side) the relationship must be consistent with it; otherwise a new
// pivot is derived with conventional keys.
func (r *pivotRegistry) attach(owner string, raw schema.Relationship, errs *ErrorList) (*Pivot, bool) {
	target := raw.Model
	name := naming.JoinTable(owner, target)
	if raw.PivotTable != nil && *raw.PivotTable != "" {
		name = *raw.PivotTable
	}

	if p, exists := r.byName[name]; exists {
		if p.Polymorphic() {
			errs.addf(PivotKeyConflict, owner, "", raw.Type,
				"pivot table '%s' is polymorphic and cannot serve a belongsToMany relationship", name)
			return nil, false
		}
		if owner != p.LeftEntity && owner != p.RightEntity {
			errs.addf(PivotKeyConflict, owner, "", raw.Type,
				"pivot table '%s' joins %s and %s, not %s", name, p.LeftEntity, p.RightEntity, owner)
			return nil, false
		}
		if target != p.LeftEntity && target != p.RightEntity {
			errs.addf(PivotKeyConflict, owner, "", raw.Type,
				"pivot table '%s' joins %s and %s, not %s", name, p.LeftEntity, p.RightEntity, target)
			return nil, false
		}
		if raw.ForeignKey != nil && *raw.ForeignKey != "" && *raw.ForeignKey != p.keyFor(owner) {
			errs.addf(PivotKeyConflict, owner, "", raw.Type,
				"relationship declares foreign key '%s' but pivot table '%s' uses '%s'",
				*raw.ForeignKey, name, p.keyFor(owner))
			return nil, false
		}
		if raw.WithTimestamps {
			p.Timestamps = true
		}
		return p, true
	}

	// First side to arrive creates the pivot. Entity sides are stored in
	// canonical order so either declaration order builds the same pivot.
	left, right := owner, target
	if naming.TableName(right) < naming.TableName(left) {
		left, right = right, left
	}
	p := &Pivot{
		Table:       name,
		LeftEntity:  left,
		RightEntity: right,
		LeftKey:     naming.ForeignKey(left),
		RightKey:    naming.ForeignKey(right),
		Timestamps:  raw.WithTimestamps,
	}
	if raw.ForeignKey != nil && *raw.ForeignKey != "" {
		if owner == left {
			p.LeftKey = *raw.ForeignKey
		} else {
			p.RightKey = *raw.ForeignKey
		}
	}
	r.insert(p)
	return p, true
}

// attachMorph resolves the pivot for a morphToMany relationship targeting the
// given entity.
func (r *pivotRegistry) attachMorph(target, morph string, raw schema.Relationship, errs *ErrorList) (*Pivot, bool) {
	name := naming.MorphTable(morph)
	if raw.PivotTable != nil && *raw.PivotTable != "" {
		name = *raw.PivotTable
	}

	if p, exists := r.byName[name]; exists {
		if !p.Polymorphic() || p.Morph != morph {
			errs.addf(PivotKeyConflict, target, "", raw.Type,
				"pivot table '%s' does not carry morph name '%s'", name, morph)
			return nil, false
		}
		if p.LeftEntity != target {
			errs.addf(PivotKeyConflict, target, "", raw.Type,
				"morph pivot table '%s' already joins entity '%s'", name, p.LeftEntity)
			return nil, false
		}
		if raw.WithTimestamps {
			p.Timestamps = true
		}
		return p, true
	}

	p := &Pivot{
		Table:      name,
		LeftEntity: target,
		LeftKey:    naming.ForeignKey(target),
		RightKey:   naming.Snake(morph) + "_id",
		Morph:      morph,
		Timestamps: raw.WithTimestamps,
	}
	r.insert(p)
	return p, true
}

func (r *pivotRegistry) insert(p *Pivot) {
	r.byName[p.Table] = p
	r.order = append(r.order, p.Table)
}

// list returns every pivot in insertion order.
func (r *pivotRegistry) list() []*Pivot {
	pivots := make([]*Pivot, 0, len(r.order))
	for _, name := range r.order {
		pivots = append(pivots, r.byName[name])
	}
	return pivots
}
