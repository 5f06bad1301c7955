package resolve

import (
	"strings"

	"github.com/bellows-cli/bellows/internal/naming"
)

// phpReserved holds the words PHP refuses as class, method, or property
// names. Entity and field names are checked case-insensitively because PHP
// keywords are case-insensitive.
var phpReserved = map[string]bool{}

func init() {
	for _, w := range []string{
		"abstract", "and", "array", "as", "break", "callable", "case", "catch",
		"class", "clone", "const", "continue", "declare", "default", "die",
		"do", "echo", "else", "elseif", "empty", "enddeclare", "endfor",
		"endforeach", "endif", "endswitch", "endwhile", "eval", "exit",
		"extends", "final", "finally", "for", "foreach", "function", "global",
		"goto", "if", "implements", "include", "include_once", "instanceof",
		"insteadof", "interface", "isset", "list", "namespace", "new", "or",
		"print", "private", "protected", "public", "require", "require_once",
		"return", "static", "switch", "throw", "trait", "try", "unset", "use",
		"var", "while", "xor", "yield", "int", "float", "bool", "string",
		"true", "false", "null", "void", "iterable", "object", "mixed",
		"never",
	} {
		phpReserved[w] = true
	}
}

// validate runs the cross-schema checks over the resolved entities. It never
// short-circuits: every violation found is accumulated so one run reports all
// problems at once.
func validate(entities []*Entity, errs *ErrorList) {
	names := make(map[string]bool, len(entities))
	tables := make(map[string]string, len(entities))
	byName := make(map[string]*Entity, len(entities))

	for _, e := range entities {
		if names[e.Name] {
			errs.addf(DuplicateEntityName, e.Name, "", "",
				"entity '%s' is declared more than once", e.Name)
		} else {
			names[e.Name] = true
			byName[e.Name] = e
		}

		if owner, taken := tables[e.Table]; taken {
			errs.addf(DuplicateTableName, e.Name, "", "",
				"table '%s' is already used by entity '%s'", e.Table, owner)
		} else {
			tables[e.Table] = e.Name
		}

		if !naming.IsPascalIdentifier(e.Name) {
			errs.addf(InvalidIdentifier, e.Name, "", "",
				"entity name must be PascalCase, like 'User' or 'BlogPost'")
		} else if phpReserved[strings.ToLower(e.Name)] {
			errs.addf(InvalidIdentifier, e.Name, "", "",
				"entity name '%s' is a PHP reserved word", e.Name)
		}

		validateFields(e, errs)
	}

	for _, e := range entities {
		validateRelations(e, byName, errs)
	}
}

func validateFields(e *Entity, errs *ErrorList) {
	if len(e.Fields) == 0 && !e.Timestamps {
		errs.addf(EmptyEntity, e.Name, "", "",
			"entity must declare at least one field or enable timestamps")
	}

	seen := make(map[string]bool, len(e.Fields))
	for _, f := range e.Fields {
		if f.Name == "id" {
			errs.addf(ReservedFieldName, e.Name, f.Name, "",
				"the 'id' primary key is generated automatically and must not be declared")
		} else if phpReserved[f.Name] {
			errs.addf(ReservedFieldName, e.Name, f.Name, "",
				"field name '%s' is a PHP reserved word", f.Name)
		}
		if seen[f.Name] {
			errs.addf(DuplicateFieldName, e.Name, f.Name, "",
				"duplicate field name '%s'", f.Name)
			continue
		}
		seen[f.Name] = true

		if !naming.IsSnakeIdentifier(f.Name) {
			errs.addf(InvalidIdentifier, e.Name, f.Name, "",
				"field name must be snake_case, like 'user_id' or 'published_at'")
		}
	}
}

func validateRelations(e *Entity, byName map[string]*Entity, errs *ErrorList) {
	for _, rel := range e.Relations {
		// Re-verify target existence over the resolved schema. Relationship
		// resolution already rejects undeclared targets, but entities dropped
		// for other errors can leave dangling references behind.
		target := relationTarget(rel)
		if target != "" && byName[target] == nil {
			errs.addf(UnknownTargetEntity, e.Name, "", rel.Kind(),
				"relationship references undeclared entity '%s'", target)
			continue
		}

		switch r := rel.(type) {
		case BelongsTo:
			validateCascade(e, r, errs)
		case MorphOne:
			validateMorphTarget(e, r.Kind(), byName[r.Target], r.MorphName, errs)
		case MorphMany:
			validateMorphTarget(e, r.Kind(), byName[r.Target], r.MorphName, errs)
		}
	}
}

// validateCascade rejects a set-null delete/update policy unless the owning
// entity declares the foreign key field and it is nullable; an implied
// foreign key column is non-nullable and could never be set to null.
func validateCascade(e *Entity, r BelongsTo, errs *ErrorList) {
	if r.OnDelete != CascadeSetNull && r.OnUpdate != CascadeSetNull {
		return
	}
	for _, f := range e.Fields {
		if f.Name == r.ForeignKey {
			if !f.Nullable {
				errs.addf(CascadePolicyConflict, e.Name, "", r.Kind(),
					"set-null policy requires foreign key field '%s' to be nullable", r.ForeignKey)
			}
			return
		}
	}
	errs.addf(CascadePolicyConflict, e.Name, "", r.Kind(),
		"set-null policy requires a declared nullable field '%s'", r.ForeignKey)
}

// validateMorphTarget checks that the target of an inbound polymorphic
// relationship declares a matching morphTo with the same discriminator name.
func validateMorphTarget(e *Entity, kind string, target *Entity, morph string, errs *ErrorList) {
	for _, rel := range target.Relations {
		if mt, ok := rel.(MorphTo); ok && mt.Name == morph {
			return
		}
	}
	errs.addf(UnmatchedMorphName, e.Name, "", kind,
		"entity '%s' does not declare a morphTo relationship named '%s'", target.Name, morph)
}

// relationTarget returns the schema-level target entity of a relation, or ""
// for morphTo, whose target is recorded per row.
func relationTarget(rel Relation) string {
	switch r := rel.(type) {
	case BelongsTo:
		return r.Target
	case HasOne:
		return r.Target
	case HasMany:
		return r.Target
	case BelongsToMany:
		return r.Target
	case MorphOne:
		return r.Target
	case MorphMany:
		return r.Target
	case MorphToMany:
		return r.Target
	default:
		return ""
	}
}
