// Package naming holds the naming conventions shared by the resolver and the
// artifact emitters. All helpers are pure functions of their input.
package naming

import (
	"sort"
	"strings"

	"github.com/go-openapi/inflect"
)

var rules = ruleset()

func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	// Acronyms that would otherwise be mangled by camelize/underscore.
	for _, w := range []string{"API", "HTTP", "ID", "JSON", "SQL", "URL", "UUID"} {
		r.AddAcronym(w)
	}
	return r
}

// Snake converts a PascalCase or camelCase name to snake_case.
// "BlogPost" -> "blog_post".
func Snake(s string) string {
	return rules.Underscore(s)
}

// Pascal converts a snake_case or camelCase name to PascalCase.
// "blog_post" -> "BlogPost".
func Pascal(s string) string {
	return rules.Camelize(s)
}

// Camel converts a name to camelCase. "BlogPost" -> "blogPost".
func Camel(s string) string {
	return rules.CamelizeDownFirst(Snake(s))
}

// Pluralize returns the plural form of a word. "category" -> "categories".
func Pluralize(s string) string {
	return rules.Pluralize(s)
}

// Singularize returns the singular form of a word. "people" -> "person".
func Singularize(s string) string {
	return rules.Singularize(s)
}

// TableName derives the storage name for an entity: plural snake_case.
// "BlogPost" -> "blog_posts".
func TableName(entity string) string {
	return Pluralize(Snake(entity))
}

// ForeignKey derives the conventional foreign key column for an entity.
// "User" -> "user_id", "BlogPost" -> "blog_post_id".
func ForeignKey(entity string) string {
	return Snake(Singularize(entity)) + "_id"
}

// JoinTable derives the canonical pivot table name for two entities: both
// storage names sorted lexicographically, joined with an underscore, so that
// either side of the pair derives the identical name.
// ("Post", "Tag") -> "posts_tags".
func JoinTable(a, b string) string {
	tables := []string{TableName(a), TableName(b)}
	sort.Strings(tables)
	return strings.Join(tables, "_")
}

// MorphTable derives the pivot table name for a polymorphic many-to-many
// relationship from its morph name. "taggable" -> "taggables".
func MorphTable(morph string) string {
	return Pluralize(Snake(morph))
}

// IsSnakeIdentifier reports whether s is a valid lower snake_case identifier:
// a letter or underscore first, then letters, digits and underscores.
func IsSnakeIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsPascalIdentifier reports whether s is a valid PascalCase identifier:
// an upper-case letter first, then letters and digits only.
func IsPascalIdentifier(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}
