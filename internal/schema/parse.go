package schema

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse reads and structurally checks a schema document from a file.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes reads and structurally checks a schema document.
//
// Parsing is two-pass: a yaml.Node pass builds a path-to-line map so errors
// can point at the offending line, then a strict KnownFields pass decodes into
// the typed document and catches unknown or misspelled keys.
func ParseBytes(data []byte) (*Document, error) {
	var root yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, &Error{Path: "models", Message: "document is empty"}
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	lines := make(map[string]int)
	collectLines(&root, "", lines)

	var doc Document
	dec = yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding schema (check for unknown or misspelled keys): %w", err)
	}

	if errs := checkDocument(&doc, lines); len(errs) > 0 {
		return nil, errs
	}
	return &doc, nil
}

// checkDocument verifies the structural shape of the document: every required
// key present, every conditional key present for the kinds that need it. It
// accumulates all problems instead of stopping at the first.
func checkDocument(doc *Document, lines map[string]int) Errors {
	var errs Errors

	if len(doc.Models) == 0 {
		errs = append(errs, Error{
			Path:       "models",
			Message:    "at least one model is required",
			Suggestion: "declare your entities under the top-level 'models' key",
			Line:       lines["models"],
		})
	}

	for i, m := range doc.Models {
		path := fmt.Sprintf("models[%d]", i)
		lineKey := fmt.Sprintf("models.%d", i)

		if m.Name == "" {
			errs = append(errs, Error{
				Path:    path + ".name",
				Message: "model name is required",
				Line:    lines[lineKey+".name"],
			})
		}

		for j, f := range m.Fields {
			errs = append(errs, checkField(f,
				fmt.Sprintf("%s.fields[%d]", path, j),
				fmt.Sprintf("%s.fields.%d", lineKey, j),
				lines)...)
		}

		for j, r := range m.Relationships {
			rpath := fmt.Sprintf("%s.relationships[%d]", path, j)
			rline := fmt.Sprintf("%s.relationships.%d", lineKey, j)

			if r.Type == "" {
				errs = append(errs, Error{
					Path:       rpath + ".type",
					Message:    "relationship type is required",
					Suggestion: "use one of belongsTo, hasOne, hasMany, belongsToMany, morphTo, morphOne, morphMany, morphToMany",
					Line:       lines[rline+".type"],
				})
			}
			// morphTo addresses its target per record, not per schema; every
			// other kind needs a declared target model.
			if r.Type != "" && r.Type != "morphTo" && r.Model == "" {
				errs = append(errs, Error{
					Path:       rpath + ".model",
					Message:    fmt.Sprintf("relationship of type '%s' requires a target model", r.Type),
					Suggestion: "set the 'model' key to the target entity name",
					Line:       lines[rline+".type"],
				})
			}
		}
	}

	for i, p := range doc.PivotTables {
		path := fmt.Sprintf("pivot_tables[%d]", i)
		lineKey := fmt.Sprintf("pivot_tables.%d", i)

		if p.Name == "" {
			errs = append(errs, Error{Path: path + ".name", Message: "pivot table name is required", Line: lines[lineKey+".name"]})
		}
		if p.Model1 == "" || p.Model2 == "" {
			errs = append(errs, Error{
				Path:    path,
				Message: "pivot table must reference two models (model1, model2)",
				Line:    lines[lineKey],
			})
		}
		if p.ForeignKey1 == "" || p.ForeignKey2 == "" {
			errs = append(errs, Error{
				Path:    path,
				Message: "pivot table must declare both foreign keys (foreign_key1, foreign_key2)",
				Line:    lines[lineKey],
			})
		}
		for j, f := range p.Fields {
			errs = append(errs, checkField(f,
				fmt.Sprintf("%s.fields[%d]", path, j),
				fmt.Sprintf("%s.fields.%d", lineKey, j),
				lines)...)
		}
	}

	return errs
}

func checkField(f Field, path, lineKey string, lines map[string]int) Errors {
	var errs Errors
	if f.Name == "" {
		errs = append(errs, Error{Path: path + ".name", Message: "field name is required", Line: lines[lineKey+".name"]})
	}
	if f.Type == "" {
		errs = append(errs, Error{
			Path:       path + ".type",
			Message:    "field type is required",
			Suggestion: "use a logical type like 'string', 'integer', 'decimal', 'enum'",
			Line:       lines[lineKey+".name"],
		})
	}
	return errs
}

// collectLines walks the YAML node tree and records the line of every path so
// structural errors can point back into the source document.
func collectLines(node *yaml.Node, path string, lines map[string]int) {
	if node == nil {
		return
	}
	if path != "" {
		lines[path] = node.Line
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			collectLines(node.Content[0], path, lines)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			child := key
			if path != "" {
				child = path + "." + key
			}
			collectLines(node.Content[i+1], child, lines)
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			collectLines(child, fmt.Sprintf("%s.%d", path, i), lines)
		}
	}
}
