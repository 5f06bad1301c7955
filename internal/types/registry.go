// Package types defines the closed set of logical field types a schema may
// declare and the per-type metadata the resolver and emitters need.
package types

// Kind is a logical field type. The set is closed: anything outside it is
// rejected during resolution.
type Kind string

const (
	String        Kind = "string"
	Text          Kind = "text"
	MediumText    Kind = "mediumText"
	LongText      Kind = "longText"
	Integer       Kind = "integer"
	TinyInteger   Kind = "tinyInteger"
	SmallInteger  Kind = "smallInteger"
	MediumInteger Kind = "mediumInteger"
	BigInteger    Kind = "bigInteger"
	Float         Kind = "float"
	Decimal       Kind = "decimal"
	Boolean       Kind = "boolean"
	Date          Kind = "date"
	DateTime      Kind = "dateTime"
	Timestamp     Kind = "timestamp"
	JSON          Kind = "json"
	UUID          Kind = "uuid"
	Enum          Kind = "enum"
	Binary        Kind = "binary"
	Inet          Kind = "inet"
)

// Info contains metadata about a logical type.
type Info struct {
	Migration      string // schema-builder column method, e.g. "bigInteger"
	PHPHint        string // PHP type hint for generated code
	Cast           string // Eloquent cast, "" when the raw column value is fine
	DefaultLength  int    // applied when a length is meaningful but unspecified
	Integer        bool   // eligible for unsigned / auto-increment modifiers
	NeedsPrecision bool   // requires a precision/scale pair
	NeedsValues    bool   // requires a non-empty value list
}

var registry = map[Kind]Info{
	String:        {Migration: "string", PHPHint: "string", DefaultLength: 255},
	Text:          {Migration: "text", PHPHint: "string"},
	MediumText:    {Migration: "mediumText", PHPHint: "string"},
	LongText:      {Migration: "longText", PHPHint: "string"},
	Integer:       {Migration: "integer", PHPHint: "int", Cast: "integer", Integer: true},
	TinyInteger:   {Migration: "tinyInteger", PHPHint: "int", Cast: "integer", Integer: true},
	SmallInteger:  {Migration: "smallInteger", PHPHint: "int", Cast: "integer", Integer: true},
	MediumInteger: {Migration: "mediumInteger", PHPHint: "int", Cast: "integer", Integer: true},
	BigInteger:    {Migration: "bigInteger", PHPHint: "int", Cast: "integer", Integer: true},
	Float:         {Migration: "float", PHPHint: "float", Cast: "float"},
	Decimal:       {Migration: "decimal", PHPHint: "float", Cast: "float", NeedsPrecision: true},
	Boolean:       {Migration: "boolean", PHPHint: "bool", Cast: "boolean"},
	Date:          {Migration: "date", PHPHint: "string", Cast: "date"},
	DateTime:      {Migration: "dateTime", PHPHint: "string", Cast: "datetime"},
	Timestamp:     {Migration: "timestamp", PHPHint: "string", Cast: "datetime"},
	JSON:          {Migration: "json", PHPHint: "array", Cast: "array"},
	UUID:          {Migration: "uuid", PHPHint: "string"},
	Enum:          {Migration: "enum", PHPHint: "string", NeedsValues: true},
	Binary:        {Migration: "binary", PHPHint: "string"},
	Inet:          {Migration: "ipAddress", PHPHint: "string"},
}

// Lookup maps a declared type string to its Kind and metadata.
func Lookup(s string) (Kind, Info, bool) {
	info, ok := registry[Kind(s)]
	return Kind(s), info, ok
}

// Get returns the metadata for a known Kind. It panics on an unknown Kind;
// resolution guarantees every resolved field carries a registered one.
func Get(k Kind) Info {
	info, ok := registry[k]
	if !ok {
		panic("types: unknown kind " + string(k))
	}
	return info
}

// All returns every registered kind. Useful for error suggestions.
func All() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	return kinds
}
