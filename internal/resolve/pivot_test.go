package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellows-cli/bellows/internal/schema"
)

func TestSeedRejectsDuplicatePivotDeclaration(t *testing.T) {
	pivots := newPivotRegistry()
	var errs ErrorList
	pivots.seed(&schema.Document{
		PivotTables: []schema.PivotTable{
			{Name: "post_tag", Model1: "Post", Model2: "Tag", ForeignKey1: "post_id", ForeignKey2: "tag_id"},
			{Name: "post_tag", Model1: "Post", Model2: "Tag", ForeignKey1: "post_id", ForeignKey2: "tag_id"},
		},
	}, map[string]bool{"Post": true, "Tag": true}, &errs)

	require.Len(t, errs, 1)
	assert.Equal(t, DuplicateTableName, errs[0].Code)
	assert.Len(t, pivots.list(), 1)
}

func TestSeedRejectsUndeclaredModels(t *testing.T) {
	pivots := newPivotRegistry()
	var errs ErrorList
	pivots.seed(&schema.Document{
		PivotTables: []schema.PivotTable{
			{Name: "post_tag", Model1: "Post", Model2: "Tag", ForeignKey1: "post_id", ForeignKey2: "tag_id"},
		},
	}, map[string]bool{"Post": true}, &errs)

	require.Len(t, errs, 1)
	assert.Equal(t, UnknownTargetEntity, errs[0].Code)
	assert.Contains(t, errs[0].Message, "'Tag'")
}

func TestAttachRejectsNonParticipant(t *testing.T) {
	set := map[string]bool{"Post": true, "Tag": true, "User": true}
	pivots := newPivotRegistry()
	var errs ErrorList
	pivots.seed(&schema.Document{
		PivotTables: []schema.PivotTable{
			{Name: "post_tag", Model1: "Post", Model2: "Tag", ForeignKey1: "post_id", ForeignKey2: "tag_id"},
		},
	}, set, &errs)
	require.Empty(t, errs)

	_, ok := pivots.attach("User", schema.Relationship{
		Type: "belongsToMany", Model: "Tag", PivotTable: strPtr("post_tag"),
	}, &errs)

	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, PivotKeyConflict, errs[0].Code)
}

func TestAttachRejectsPolymorphicPivot(t *testing.T) {
	pivots := newPivotRegistry()
	var errs ErrorList
	_, ok := pivots.attachMorph("Tag", "taggable", schema.Relationship{Type: "morphToMany", Model: "Tag"}, &errs)
	require.True(t, ok)

	_, ok = pivots.attach("Post", schema.Relationship{
		Type: "belongsToMany", Model: "Tag", PivotTable: strPtr("taggables"),
	}, &errs)

	assert.False(t, ok)
	require.True(t, errs.Has(PivotKeyConflict))
}

func TestAttachMorphRejectsMismatchedMorphName(t *testing.T) {
	pivots := newPivotRegistry()
	var errs ErrorList
	_, ok := pivots.attachMorph("Tag", "taggable", schema.Relationship{Type: "morphToMany", Model: "Tag"}, &errs)
	require.True(t, ok)

	_, ok = pivots.attachMorph("Tag", "labelable", schema.Relationship{
		Type: "morphToMany", Model: "Tag", PivotTable: strPtr("taggables"),
	}, &errs)

	assert.False(t, ok)
	require.True(t, errs.Has(PivotKeyConflict))
}

func TestPivotListKeepsInsertionOrder(t *testing.T) {
	pivots := newPivotRegistry()
	var errs ErrorList

	pivots.attach("User", schema.Relationship{Type: "belongsToMany", Model: "Role"}, &errs)
	pivots.attach("Post", schema.Relationship{Type: "belongsToMany", Model: "Tag"}, &errs)
	require.Empty(t, errs)

	var names []string
	for _, p := range pivots.list() {
		names = append(names, p.Table)
	}
	assert.Equal(t, []string{"roles_users", "posts_tags"}, names)
}
