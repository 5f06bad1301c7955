package resolve

import (
	"github.com/bellows-cli/bellows/internal/naming"
	"github.com/bellows-cli/bellows/internal/schema"
)

// Cascade is the referential action taken on dependent rows when an owning
// row is deleted or updated.
type Cascade string

const (
	CascadeRestrict Cascade = "restrict"
	CascadeCascade  Cascade = "cascade"
	CascadeSetNull  Cascade = "setNull"
	CascadeNone     Cascade = "none"
)

// SQL returns the referential action clause for this policy, or "" when the
// migration should not emit one.
func (c Cascade) SQL() string {
	switch c {
	case CascadeCascade:
		return "cascade"
	case CascadeSetNull:
		return "set null"
	case CascadeRestrict:
		return "restrict"
	default:
		return ""
	}
}

var cascadeSpellings = map[string]Cascade{
	"cascade":  CascadeCascade,
	"restrict": CascadeRestrict,
	"setNull":  CascadeSetNull,
	"set_null": CascadeSetNull,
	"set null": CascadeSetNull,
	"none":     CascadeNone,
}

// Relation is a fully resolved relationship. The set of implementations is
// closed; each variant carries only the fields meaningful to its kind.
type Relation interface {
	// Kind returns the declared kind string, e.g. "belongsTo".
	Kind() string

	sealed()
}

// BelongsTo is a to-one relationship whose foreign key lives on the owning
// entity.
type BelongsTo struct {
	Target     string
	ForeignKey string
	LocalKey   string
	OnDelete   Cascade
	OnUpdate   Cascade
}

// HasOne is the inverse of a BelongsTo: the target owns the foreign key and
// at most one target row exists per owner.
type HasOne struct {
	Target     string
	ForeignKey string
	LocalKey   string
}

// HasMany is the inverse of a BelongsTo with any number of target rows.
type HasMany struct {
	Target     string
	ForeignKey string
	LocalKey   string
}

// BelongsToMany is a many-to-many relationship resolved through a pivot
// table. ForeignPivotKey is the owning side's column on the pivot,
// RelatedPivotKey the target side's.
type BelongsToMany struct {
	Target          string
	Pivot           string
	ForeignPivotKey string
	RelatedPivotKey string
	PivotFields     []string
	WithTimestamps  bool
}

// MorphTo is an outbound polymorphic relationship: the owning entity carries
// a {Name}_type/{Name}_id pair and the concrete target kind is recorded per
// row, not per schema.
type MorphTo struct {
	Name string
}

// MorphOne is an inbound polymorphic to-one relationship addressed through a
// shared morph name declared by the target's MorphTo.
type MorphOne struct {
	Target    string
	MorphName string
}

// MorphMany is the to-many form of MorphOne.
type MorphMany struct {
	Target    string
	MorphName string
}

// MorphToMany is a polymorphic many-to-many relationship resolved through a
// morph pivot table.
type MorphToMany struct {
	Target         string
	MorphName      string
	Pivot          string
	WithTimestamps bool
}

func (BelongsTo) Kind() string     { return "belongsTo" }
func (HasOne) Kind() string        { return "hasOne" }
func (HasMany) Kind() string       { return "hasMany" }
func (BelongsToMany) Kind() string { return "belongsToMany" }
func (MorphTo) Kind() string       { return "morphTo" }
func (MorphOne) Kind() string      { return "morphOne" }
func (MorphMany) Kind() string     { return "morphMany" }
func (MorphToMany) Kind() string   { return "morphToMany" }

func (BelongsTo) sealed()     {}
func (HasOne) sealed()        {}
func (HasMany) sealed()       {}
func (BelongsToMany) sealed() {}
func (MorphTo) sealed()       {}
func (MorphOne) sealed()      {}
func (MorphMany) sealed()     {}
func (MorphToMany) sealed()   {}

// resolveRelationship classifies a raw relationship, fills in every inferred
// key, and registers any pivot table it implies. declared is the set of all
// entity names in the document, so forward references resolve regardless of
// declaration order.
func resolveRelationship(owner string, raw schema.Relationship, declared map[string]bool, pivots *pivotRegistry, errs *ErrorList) (Relation, bool) {
	targetKnown := func() bool {
		if !declared[raw.Model] {
			errs.addf(UnknownTargetEntity, owner, "", raw.Type,
				"relationship references undeclared entity '%s'", raw.Model)
			return false
		}
		return true
	}

	morphName := func() (string, bool) {
		if raw.MorphName == nil || *raw.MorphName == "" {
			errs.addf(MissingMorphName, owner, "", raw.Type,
				"polymorphic relationship requires a morph_name")
			return "", false
		}
		return *raw.MorphName, true
	}

	switch raw.Type {
	case "belongsTo":
		if !targetKnown() {
			return nil, false
		}
		rel := BelongsTo{
			Target:     raw.Model,
			ForeignKey: orDerived(raw.ForeignKey, naming.ForeignKey(raw.Model)),
			LocalKey:   orDerived(raw.LocalKey, "id"),
			OnDelete:   CascadeRestrict,
			OnUpdate:   CascadeRestrict,
		}
		ok := true
		if c, valid := parseCascade(raw.OnDelete); valid {
			rel.OnDelete = c
		} else {
			errs.addf(UnknownCascadePolicy, owner, "", raw.Type,
				"unknown on_delete policy '%s'", *raw.OnDelete)
			ok = false
		}
		if c, valid := parseCascade(raw.OnUpdate); valid {
			rel.OnUpdate = c
		} else {
			errs.addf(UnknownCascadePolicy, owner, "", raw.Type,
				"unknown on_update policy '%s'", *raw.OnUpdate)
			ok = false
		}
		return rel, ok

	case "hasOne":
		if !targetKnown() {
			return nil, false
		}
		return HasOne{
			Target:     raw.Model,
			ForeignKey: orDerived(raw.ForeignKey, naming.ForeignKey(owner)),
			LocalKey:   orDerived(raw.LocalKey, "id"),
		}, true

	case "hasMany":
		if !targetKnown() {
			return nil, false
		}
		return HasMany{
			Target:     raw.Model,
			ForeignKey: orDerived(raw.ForeignKey, naming.ForeignKey(owner)),
			LocalKey:   orDerived(raw.LocalKey, "id"),
		}, true

	case "belongsToMany":
		if !targetKnown() {
			return nil, false
		}
		pivot, ok := pivots.attach(owner, raw, errs)
		if !ok {
			return nil, false
		}
		return BelongsToMany{
			Target:          raw.Model,
			Pivot:           pivot.Table,
			ForeignPivotKey: pivot.keyFor(owner),
			RelatedPivotKey: pivot.keyFor(raw.Model),
			PivotFields:     raw.PivotFields,
			WithTimestamps:  pivot.Timestamps,
		}, true

	case "morphTo":
		name, ok := morphName()
		if !ok {
			return nil, false
		}
		return MorphTo{Name: name}, true

	case "morphOne":
		name, ok := morphName()
		if !ok || !targetKnown() {
			return nil, false
		}
		return MorphOne{Target: raw.Model, MorphName: name}, true

	case "morphMany":
		name, ok := morphName()
		if !ok || !targetKnown() {
			return nil, false
		}
		return MorphMany{Target: raw.Model, MorphName: name}, true

	case "morphToMany":
		name, ok := morphName()
		if !ok || !targetKnown() {
			return nil, false
		}
		pivot, ok := pivots.attachMorph(raw.Model, name, raw, errs)
		if !ok {
			return nil, false
		}
		return MorphToMany{
			Target:         raw.Model,
			MorphName:      name,
			Pivot:          pivot.Table,
			WithTimestamps: pivot.Timestamps,
		}, true

	default:
		errs.addf(UnknownRelationshipKind, owner, "", raw.Type,
			"unknown relationship type '%s'", raw.Type)
		return nil, false
	}
}

// orDerived returns the explicit override when present, the derived value
// otherwise. Explicit names are never silently replaced.
func orDerived(explicit *string, derived string) string {
	if explicit != nil && *explicit != "" {
		return *explicit
	}
	return derived
}

// parseCascade maps a raw cascade spelling to its policy. A nil pointer means
// unspecified and defaults to restrict.
func parseCascade(raw *string) (Cascade, bool) {
	if raw == nil {
		return CascadeRestrict, true
	}
	c, ok := cascadeSpellings[*raw]
	return c, ok
}
