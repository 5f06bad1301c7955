package resolve

import (
	"bytes"
	"fmt"
)

// Code identifies one class of resolution failure.
type Code string

const (
	// Field-level.
	UnknownFieldType        Code = "UnknownFieldType"
	MissingDecimalPrecision Code = "MissingDecimalPrecision"
	InvalidDecimalPrecision Code = "InvalidDecimalPrecision"
	MissingEnumValues       Code = "MissingEnumValues"
	DuplicateEnumValue      Code = "DuplicateEnumValue"
	InvalidFieldModifier    Code = "InvalidFieldModifier"

	// Relationship-level.
	UnknownRelationshipKind Code = "UnknownRelationshipKind"
	UnknownTargetEntity     Code = "UnknownTargetEntity"
	PivotKeyConflict        Code = "PivotKeyConflict"
	UnmatchedMorphName      Code = "UnmatchedMorphName"
	MissingMorphName        Code = "MissingMorphName"
	UnknownCascadePolicy    Code = "UnknownCascadePolicy"
	CascadePolicyConflict   Code = "CascadePolicyConflict"

	// Graph-level.
	CyclicDependency Code = "CyclicDependency"

	// Schema-wide validation.
	DuplicateEntityName Code = "DuplicateEntityName"
	DuplicateTableName  Code = "DuplicateTableName"
	DuplicateFieldName  Code = "DuplicateFieldName"
	EmptyEntity         Code = "EmptyEntity"
	ReservedFieldName   Code = "ReservedFieldName"
	InvalidIdentifier   Code = "InvalidIdentifier"
)

// Error is one resolution failure, carrying enough context to point the user
// at the offending entity, field, or relationship.
type Error struct {
	Code    Code
	Entity  string
	Field   string // field name, when field-scoped
	Rel     string // relationship kind/target, when relationship-scoped
	Message string
}

func (e *Error) Error() string {
	where := e.Entity
	switch {
	case e.Field != "":
		where = e.Entity + "." + e.Field
	case e.Rel != "":
		where = e.Entity + " " + e.Rel
	}
	if where == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", where, e.Code, e.Message)
}

// ErrorList accumulates every failure found in one resolution run so a single
// run reports all problems at once.
type ErrorList []*Error

func (l *ErrorList) add(e *Error) {
	*l = append(*l, e)
}

func (l *ErrorList) addf(code Code, entity, field, rel, format string, args ...any) {
	l.add(&Error{Code: code, Entity: entity, Field: field, Rel: rel, Message: fmt.Sprintf(format, args...)})
}

// Has reports whether any accumulated error carries the given code.
func (l ErrorList) Has(code Code) bool {
	for _, e := range l {
		if e.Code == code {
			return true
		}
	}
	return false
}

func (l ErrorList) Error() string {
	if len(l) == 0 {
		return "schema resolution failed"
	}
	if len(l) == 1 {
		return l[0].Error()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "schema resolution failed with %d errors:\n", len(l))
	for i, e := range l {
		fmt.Fprintf(&buf, "  %d. %s\n", i+1, e.Error())
	}
	return buf.String()
}
