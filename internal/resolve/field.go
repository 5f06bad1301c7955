package resolve

import (
	"strings"

	"github.com/bellows-cli/bellows/internal/schema"
	"github.com/bellows-cli/bellows/internal/types"
)

// EnumValue is a resolved enum member. An absent label falls back to the
// value itself so emitters never have to special-case it.
type EnumValue struct {
	Value string
	Label string
}

// Field is a fully specified column: type checked, modifiers defaulted.
type Field struct {
	Name          string
	Type          types.Kind
	Nullable      bool
	Unique        bool
	Index         bool
	Unsigned      bool
	Primary       bool
	AutoIncrement bool
	Length        int // 0 when the type carries no length
	Precision     int
	Scale         int
	Default       string
	HasDefault    bool
	Comment       string
	EnumValues    []EnumValue
}

// resolveField turns a raw field into a fully specified one. It is a pure
// function of the raw field; the entity name is used only in error context.
// On failure it records every problem it can find and reports ok=false.
func resolveField(entity string, raw schema.Field, errs *ErrorList) (Field, bool) {
	kind, info, known := types.Lookup(raw.Type)
	if !known {
		errs.addf(UnknownFieldType, entity, raw.Name, "",
			"unknown field type '%s'", raw.Type)
		return Field{}, false
	}

	f := Field{
		Name:          raw.Name,
		Type:          kind,
		Nullable:      raw.Nullable,
		Unique:        raw.Unique,
		Index:         raw.Index,
		Unsigned:      raw.Unsigned,
		Primary:       raw.Primary,
		AutoIncrement: raw.AutoIncrement,
		Comment:       raw.Comment,
	}
	ok := true

	if raw.Length != nil {
		if *raw.Length <= 0 {
			errs.addf(InvalidFieldModifier, entity, raw.Name, "",
				"length must be positive, got %d", *raw.Length)
			ok = false
		}
		f.Length = *raw.Length
	} else {
		f.Length = info.DefaultLength
	}

	if info.NeedsPrecision {
		switch {
		case raw.Precision == nil:
			errs.addf(MissingDecimalPrecision, entity, raw.Name, "",
				"decimal field must specify precision and scale")
			ok = false
		case raw.Precision.Precision <= 0 || raw.Precision.Scale < 0 || raw.Precision.Scale > raw.Precision.Precision:
			errs.addf(InvalidDecimalPrecision, entity, raw.Name, "",
				"invalid precision/scale pair: precision=%d, scale=%d",
				raw.Precision.Precision, raw.Precision.Scale)
			ok = false
		default:
			f.Precision = raw.Precision.Precision
			f.Scale = raw.Precision.Scale
		}
	}

	if info.NeedsValues {
		if len(raw.EnumValues) == 0 {
			errs.addf(MissingEnumValues, entity, raw.Name, "",
				"enum field must declare at least one value")
			ok = false
		}
		seen := make(map[string]bool, len(raw.EnumValues))
		for _, v := range raw.EnumValues {
			if seen[v.Value] {
				errs.addf(DuplicateEnumValue, entity, raw.Name, "",
					"duplicate enum value '%s'", v.Value)
				ok = false
				continue
			}
			seen[v.Value] = true
			label := v.Label
			if label == "" {
				label = titleCase(v.Value)
			}
			f.EnumValues = append(f.EnumValues, EnumValue{Value: v.Value, Label: label})
		}
	}

	if raw.AutoIncrement && !info.Integer {
		errs.addf(InvalidFieldModifier, entity, raw.Name, "",
			"auto_increment requires an integer type, got '%s'", kind)
		ok = false
	}
	if raw.Unsigned && !info.Integer && kind != types.Decimal && kind != types.Float {
		errs.addf(InvalidFieldModifier, entity, raw.Name, "",
			"unsigned is not meaningful for type '%s'", kind)
		ok = false
	}
	if raw.Primary && raw.Nullable {
		errs.addf(InvalidFieldModifier, entity, raw.Name, "",
			"primary key field cannot be nullable")
		ok = false
	}

	if raw.Default != nil {
		f.Default = *raw.Default
		f.HasDefault = true
	}

	return f, ok
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
