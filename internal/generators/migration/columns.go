package migration

import (
	"fmt"
	"strings"

	"github.com/bellows-cli/bellows/internal/resolve"
	"github.com/bellows-cli/bellows/internal/types"
)

// columnLine builds one schema-builder column call for a resolved field.
func columnLine(f resolve.Field) string {
	var b strings.Builder
	b.WriteString("$table->")
	b.WriteString(columnMethod(f))

	if f.Unsigned {
		b.WriteString("->unsigned()")
	}
	if f.Nullable {
		b.WriteString("->nullable()")
	}
	if f.Unique {
		b.WriteString("->unique()")
	}
	if f.Index {
		b.WriteString("->index()")
	}
	if f.Primary {
		b.WriteString("->primary()")
	}
	if f.AutoIncrement {
		b.WriteString("->autoIncrement()")
	}
	if f.HasDefault {
		b.WriteString(fmt.Sprintf("->default('%s')", f.Default))
	}
	if f.Comment != "" {
		b.WriteString(fmt.Sprintf("->comment('%s')", f.Comment))
	}

	b.WriteString(";")
	return b.String()
}

func columnMethod(f resolve.Field) string {
	switch f.Type {
	case types.String:
		return fmt.Sprintf("string('%s', %d)", f.Name, f.Length)
	case types.Decimal:
		return fmt.Sprintf("decimal('%s', %d, %d)", f.Name, f.Precision, f.Scale)
	case types.Enum:
		values := make([]string, len(f.EnumValues))
		for i, v := range f.EnumValues {
			values[i] = "'" + v.Value + "'"
		}
		return fmt.Sprintf("enum('%s', [%s])", f.Name, strings.Join(values, ", "))
	default:
		return fmt.Sprintf("%s('%s')", types.Get(f.Type).Migration, f.Name)
	}
}

// foreignKeyLine builds one foreign key constraint call.
func foreignKeyLine(fk, references, onTable string, onDelete, onUpdate resolve.Cascade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "$table->foreign('%s')->references('%s')->on('%s')", fk, references, onTable)
	if clause := onDelete.SQL(); clause != "" {
		fmt.Fprintf(&b, "->onDelete('%s')", clause)
	}
	if clause := onUpdate.SQL(); clause != "" {
		fmt.Fprintf(&b, "->onUpdate('%s')", clause)
	}
	b.WriteString(";")
	return b.String()
}
