package project

import (
	"fmt"
	"os"
)

const starterConfig = `# bellows tool configuration
schema: schema.yml
# output: .
# namespace: App\Models
# force: false
`

const starterSchema = `models:
  - name: User
    timestamps: true
    fields:
      - name: name
        type: string
      - name: email
        type: string
        unique: true

  - name: Post
    timestamps: true
    soft_deletes: true
    fields:
      - name: title
        type: string
      - name: body
        type: text
      - name: published_at
        type: dateTime
        nullable: true
    relationships:
      - type: belongsTo
        model: User
        on_delete: cascade
`

// Scaffolder writes the starter files for a new project.
type Scaffolder struct{}

func NewScaffolder() *Scaffolder {
	return &Scaffolder{}
}

// Scaffold creates bellows.yml and a starter schema in the current
// directory. Existing files are left alone and reported as an error so a
// stray init never clobbers real configuration.
func (s *Scaffolder) Scaffold() error {
	for _, f := range []struct {
		path    string
		content string
	}{
		{"bellows.yml", starterConfig},
		{DefaultSchemaPath, starterSchema},
	} {
		if _, err := os.Stat(f.path); err == nil {
			return fmt.Errorf("%s already exists", f.path)
		}
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
	}
	return nil
}
