package model

import (
	"fmt"
	"strings"

	"github.com/bellows-cli/bellows/internal/generators/shared"
	"github.com/bellows-cli/bellows/internal/naming"
	"github.com/bellows-cli/bellows/internal/resolve"
	"github.com/bellows-cli/bellows/internal/schema"
	"github.com/bellows-cli/bellows/internal/types"
)

type templateData struct {
	Namespace  string
	Name       string
	Uses       []string
	Traits     []string
	Table      string
	Timestamps bool
	Fillable   []string
	Casts      []castEntry
	Methods    []methodEntry
}

type castEntry struct {
	Field string
	Cast  string
}

type methodEntry struct {
	Name   string
	Return string
}

// prepareData flattens a resolved entity into the shape the model template
// renders.
func prepareData(e *resolve.Entity, opts schema.Options) templateData {
	data := templateData{
		Namespace:  shared.ModelNamespace(e.Name, opts),
		Name:       e.Name,
		Table:      e.Table,
		Timestamps: e.Timestamps,
	}

	data.Uses = append(data.Uses, `Illuminate\Database\Eloquent\Model`)
	if e.SoftDeletes {
		data.Uses = append(data.Uses, `Illuminate\Database\Eloquent\SoftDeletes`)
		data.Traits = append(data.Traits, "SoftDeletes")
	}
	for _, t := range e.Traits {
		if strings.Contains(t, `\`) {
			data.Uses = append(data.Uses, t)
			data.Traits = append(data.Traits, t[strings.LastIndex(t, `\`)+1:])
		} else {
			data.Traits = append(data.Traits, t)
		}
	}

	for _, f := range e.Fields {
		data.Fillable = append(data.Fillable, f.Name)
		if cast := types.Get(f.Type).Cast; cast != "" {
			data.Casts = append(data.Casts, castEntry{Field: f.Name, Cast: cast})
		}
	}

	for _, rel := range e.Relations {
		data.Methods = append(data.Methods, methodEntry{
			Name:   methodName(rel),
			Return: methodReturn(rel),
		})
	}

	return data
}

// methodName derives the Eloquent method name: to-one relationships use the
// camelCase target, to-many use its plural, morphTo uses the morph name.
func methodName(rel resolve.Relation) string {
	switch r := rel.(type) {
	case resolve.BelongsTo:
		return naming.Camel(r.Target)
	case resolve.HasOne:
		return naming.Camel(r.Target)
	case resolve.HasMany:
		return naming.Pluralize(naming.Camel(r.Target))
	case resolve.BelongsToMany:
		return naming.Pluralize(naming.Camel(r.Target))
	case resolve.MorphTo:
		return r.Name
	case resolve.MorphOne:
		return naming.Camel(r.Target)
	case resolve.MorphMany:
		return naming.Pluralize(naming.Camel(r.Target))
	case resolve.MorphToMany:
		return naming.Pluralize(naming.Camel(r.Target))
	default:
		return ""
	}
}

// methodReturn builds the relationship expression. Resolved keys are always
// written out, so generated code never depends on Eloquent's own guessing.
func methodReturn(rel resolve.Relation) string {
	switch r := rel.(type) {
	case resolve.BelongsTo:
		if r.LocalKey != "id" {
			return fmt.Sprintf("$this->belongsTo(%s::class, '%s', '%s')", r.Target, r.ForeignKey, r.LocalKey)
		}
		return fmt.Sprintf("$this->belongsTo(%s::class, '%s')", r.Target, r.ForeignKey)

	case resolve.HasOne:
		if r.LocalKey != "id" {
			return fmt.Sprintf("$this->hasOne(%s::class, '%s', '%s')", r.Target, r.ForeignKey, r.LocalKey)
		}
		return fmt.Sprintf("$this->hasOne(%s::class, '%s')", r.Target, r.ForeignKey)

	case resolve.HasMany:
		if r.LocalKey != "id" {
			return fmt.Sprintf("$this->hasMany(%s::class, '%s', '%s')", r.Target, r.ForeignKey, r.LocalKey)
		}
		return fmt.Sprintf("$this->hasMany(%s::class, '%s')", r.Target, r.ForeignKey)

	case resolve.BelongsToMany:
		expr := fmt.Sprintf("$this->belongsToMany(%s::class, '%s', '%s', '%s')",
			r.Target, r.Pivot, r.ForeignPivotKey, r.RelatedPivotKey)
		if len(r.PivotFields) > 0 {
			quoted := make([]string, len(r.PivotFields))
			for i, f := range r.PivotFields {
				quoted[i] = "'" + f + "'"
			}
			expr += fmt.Sprintf("->withPivot(%s)", strings.Join(quoted, ", "))
		}
		if r.WithTimestamps {
			expr += "->withTimestamps()"
		}
		return expr

	case resolve.MorphTo:
		return "$this->morphTo()"

	case resolve.MorphOne:
		return fmt.Sprintf("$this->morphOne(%s::class, '%s')", r.Target, r.MorphName)

	case resolve.MorphMany:
		return fmt.Sprintf("$this->morphMany(%s::class, '%s')", r.Target, r.MorphName)

	case resolve.MorphToMany:
		expr := fmt.Sprintf("$this->morphToMany(%s::class, '%s', '%s')", r.Target, r.MorphName, r.Pivot)
		if r.WithTimestamps {
			expr += "->withTimestamps()"
		}
		return expr

	default:
		return ""
	}
}
