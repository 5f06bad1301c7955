// Package shared holds the pieces every emitter needs: the artifact type and
// the path/namespace conventions for both the traditional Laravel layout and
// the DDD layout.
package shared

import (
	"path/filepath"

	"github.com/bellows-cli/bellows/internal/schema"
)

// Artifact is one generated file, with its path relative to the output root.
type Artifact struct {
	Path    string
	Content []byte
}

// ModelPath returns the file path for an entity's model class.
func ModelPath(entity string, opts schema.Options) string {
	if opts.UseDDDStructure {
		return filepath.Join("app", "Domain", entity, "Models", entity+".php")
	}
	return filepath.Join("app", "Models", entity+".php")
}

// ModelNamespace returns the PHP namespace for an entity's model class.
func ModelNamespace(entity string, opts schema.Options) string {
	if opts.UseDDDStructure {
		return `App\Domain\` + entity + `\Models`
	}
	return opts.ModelNamespace()
}

// ControllerPath returns the file path for an entity's controller class.
func ControllerPath(entity string, opts schema.Options) string {
	return filepath.Join("app", "Http", "Controllers", entity+"Controller.php")
}

// MigrationPath returns the file path for a migration with the given number
// and table name.
func MigrationPath(number, table string) string {
	return filepath.Join("database", "migrations", number+"_create_"+table+"_table.php")
}
