package schema

// Document is a parsed bellows schema file: the entities to scaffold, any
// explicitly declared pivot tables, and global generation options.
type Document struct {
	Models      []Model      `yaml:"models"`
	PivotTables []PivotTable `yaml:"pivot_tables,omitempty"`
	Options     Options      `yaml:"options,omitempty"`
}

// Model is one declared entity.
type Model struct {
	Name          string         `yaml:"name"`
	Table         string         `yaml:"table,omitempty"`
	Fields        []Field        `yaml:"fields,omitempty"`
	Timestamps    bool           `yaml:"timestamps,omitempty"`
	SoftDeletes   bool           `yaml:"soft_deletes,omitempty"`
	Relationships []Relationship `yaml:"relationships,omitempty"`
	Traits        []string       `yaml:"traits,omitempty"`
}

// Field is one declared column on a model or pivot table.
type Field struct {
	Name          string            `yaml:"name"`
	Type          string            `yaml:"type"`
	Nullable      bool              `yaml:"nullable,omitempty"`
	Unique        bool              `yaml:"unique,omitempty"`
	Index         bool              `yaml:"index,omitempty"`
	Unsigned      bool              `yaml:"unsigned,omitempty"`
	Primary       bool              `yaml:"primary,omitempty"`
	AutoIncrement bool              `yaml:"auto_increment,omitempty"`
	Length        *int              `yaml:"length,omitempty"`
	Precision     *DecimalPrecision `yaml:"decimal_precision,omitempty"`
	Default       *string           `yaml:"default,omitempty"`
	Comment       string            `yaml:"comment,omitempty"`
	EnumValues    []EnumValue       `yaml:"enum_values,omitempty"`
}

// DecimalPrecision carries the precision/scale pair for decimal fields.
type DecimalPrecision struct {
	Precision int `yaml:"precision"`
	Scale     int `yaml:"scale"`
}

// EnumValue is a labeled value of an enum field. The label is optional and
// only used by emitters for display text.
type EnumValue struct {
	Value string `yaml:"value"`
	Label string `yaml:"label,omitempty"`
}

// Relationship is one declared relationship on a model. Which keys are
// meaningful depends on the type; the resolver turns this loose shape into a
// closed set of relation variants.
type Relationship struct {
	Type           string   `yaml:"type"`
	Model          string   `yaml:"model,omitempty"`
	ForeignKey     *string  `yaml:"foreign_key,omitempty"`
	LocalKey       *string  `yaml:"local_key,omitempty"`
	PivotTable     *string  `yaml:"pivot_table,omitempty"`
	PivotFields    []string `yaml:"pivot_fields,omitempty"`
	MorphName      *string  `yaml:"morph_name,omitempty"`
	OnDelete       *string  `yaml:"on_delete,omitempty"`
	OnUpdate       *string  `yaml:"on_update,omitempty"`
	WithTimestamps bool     `yaml:"with_timestamps,omitempty"`
}

// PivotTable is an explicitly declared join table. Relationship-level
// resolution must reuse a declared pivot rather than re-derive it.
type PivotTable struct {
	Name        string  `yaml:"name"`
	Model1      string  `yaml:"model1"`
	Model2      string  `yaml:"model2"`
	ForeignKey1 string  `yaml:"foreign_key1"`
	ForeignKey2 string  `yaml:"foreign_key2"`
	Fields      []Field `yaml:"fields,omitempty"`
	Timestamps  bool    `yaml:"timestamps,omitempty"`
}

// Options are the global generation settings of a document. The generate_*
// toggles are pointers so an absent key falls back to its default rather than
// to false.
type Options struct {
	OutputDir       string `yaml:"output_dir,omitempty"`
	Namespace       string `yaml:"namespace,omitempty"`
	UseDDDStructure bool   `yaml:"use_ddd_structure,omitempty"`
	ForceOverwrite  bool   `yaml:"force_overwrite,omitempty"`
	Models          *bool  `yaml:"generate_models,omitempty"`
	Migrations      *bool  `yaml:"generate_migrations,omitempty"`
	PivotTables     *bool  `yaml:"generate_pivot_tables,omitempty"`
	Controllers     *bool  `yaml:"generate_controllers,omitempty"`
}

// GenerateModels reports whether model emission is enabled (default true).
func (o Options) GenerateModels() bool { return o.Models == nil || *o.Models }

// GenerateMigrations reports whether migration emission is enabled (default true).
func (o Options) GenerateMigrations() bool { return o.Migrations == nil || *o.Migrations }

// GeneratePivotTables reports whether pivot migration emission is enabled (default true).
func (o Options) GeneratePivotTables() bool { return o.PivotTables == nil || *o.PivotTables }

// GenerateControllers reports whether controller emission is enabled (default true).
func (o Options) GenerateControllers() bool { return o.Controllers == nil || *o.Controllers }

// Root returns the output directory, defaulting to the current directory.
func (o Options) Root() string {
	if o.OutputDir == "" {
		return "."
	}
	return o.OutputDir
}

// ModelNamespace returns the PHP namespace for models.
func (o Options) ModelNamespace() string {
	if o.Namespace == "" {
		return `App\Models`
	}
	return o.Namespace
}
