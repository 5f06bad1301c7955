package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellows-cli/bellows/internal/schema"
)

func resolveRel(t *testing.T, owner string, raw schema.Relationship, declared ...string) (Relation, *pivotRegistry, ErrorList) {
	t.Helper()
	set := map[string]bool{owner: true}
	for _, d := range declared {
		set[d] = true
	}
	pivots := newPivotRegistry()
	var errs ErrorList
	rel, _ := resolveRelationship(owner, raw, set, pivots, &errs)
	return rel, pivots, errs
}

func TestBelongsToDerivesForeignKey(t *testing.T) {
	rel, _, errs := resolveRel(t, "Post", schema.Relationship{Type: "belongsTo", Model: "User"}, "User")

	require.Empty(t, errs)
	bt, ok := rel.(BelongsTo)
	require.True(t, ok)
	assert.Equal(t, "User", bt.Target)
	assert.Equal(t, "user_id", bt.ForeignKey)
	assert.Equal(t, "id", bt.LocalKey)
	assert.Equal(t, CascadeRestrict, bt.OnDelete)
	assert.Equal(t, CascadeRestrict, bt.OnUpdate)
}

func TestBelongsToExplicitKeysWin(t *testing.T) {
	rel, _, errs := resolveRel(t, "Post", schema.Relationship{
		Type:       "belongsTo",
		Model:      "User",
		ForeignKey: strPtr("author_id"),
		LocalKey:   strPtr("uuid"),
	}, "User")

	require.Empty(t, errs)
	bt := rel.(BelongsTo)
	assert.Equal(t, "author_id", bt.ForeignKey)
	assert.Equal(t, "uuid", bt.LocalKey)
}

func TestBelongsToCascadePolicies(t *testing.T) {
	rel, _, errs := resolveRel(t, "Post", schema.Relationship{
		Type:     "belongsTo",
		Model:    "User",
		OnDelete: strPtr("cascade"),
		OnUpdate: strPtr("set_null"),
	}, "User")

	require.Empty(t, errs)
	bt := rel.(BelongsTo)
	assert.Equal(t, CascadeCascade, bt.OnDelete)
	assert.Equal(t, CascadeSetNull, bt.OnUpdate)

	_, _, errs = resolveRel(t, "Post", schema.Relationship{
		Type:     "belongsTo",
		Model:    "User",
		OnDelete: strPtr("explode"),
	}, "User")
	require.Len(t, errs, 1)
	assert.Equal(t, UnknownCascadePolicy, errs[0].Code)
}

func TestBelongsToUnknownTarget(t *testing.T) {
	_, _, errs := resolveRel(t, "Post", schema.Relationship{Type: "belongsTo", Model: "Author"})

	require.Len(t, errs, 1)
	assert.Equal(t, UnknownTargetEntity, errs[0].Code)
	assert.Equal(t, "Post", errs[0].Entity)
}

func TestHasManyDerivesOwnerForeignKey(t *testing.T) {
	rel, _, errs := resolveRel(t, "User", schema.Relationship{Type: "hasMany", Model: "Post"}, "Post")

	require.Empty(t, errs)
	hm := rel.(HasMany)
	// The foreign key lives on the target and points back at the owner.
	assert.Equal(t, "user_id", hm.ForeignKey)
	assert.Equal(t, "id", hm.LocalKey)
}

func TestHasOneDerivesOwnerForeignKey(t *testing.T) {
	rel, _, errs := resolveRel(t, "User", schema.Relationship{Type: "hasOne", Model: "Profile"}, "Profile")

	require.Empty(t, errs)
	ho := rel.(HasOne)
	assert.Equal(t, "user_id", ho.ForeignKey)
}

func TestBelongsToManyDerivesPivot(t *testing.T) {
	rel, pivots, errs := resolveRel(t, "Post", schema.Relationship{Type: "belongsToMany", Model: "Tag"}, "Tag")

	require.Empty(t, errs)
	btm := rel.(BelongsToMany)
	assert.Equal(t, "posts_tags", btm.Pivot)
	assert.Equal(t, "post_id", btm.ForeignPivotKey)
	assert.Equal(t, "tag_id", btm.RelatedPivotKey)

	require.Len(t, pivots.list(), 1)
	p := pivots.list()[0]
	assert.Equal(t, "Post", p.LeftEntity)
	assert.Equal(t, "Tag", p.RightEntity)
}

func TestBelongsToManySymmetry(t *testing.T) {
	// Declaring the relation from either side of the pair derives the
	// identical pivot name and foreign key pair.
	set := map[string]bool{"Post": true, "Tag": true}
	pivots := newPivotRegistry()
	var errs ErrorList

	fromPost, _ := resolveRelationship("Post", schema.Relationship{Type: "belongsToMany", Model: "Tag"}, set, pivots, &errs)
	fromTag, _ := resolveRelationship("Tag", schema.Relationship{Type: "belongsToMany", Model: "Post"}, set, pivots, &errs)
	require.Empty(t, errs)

	a := fromPost.(BelongsToMany)
	b := fromTag.(BelongsToMany)
	assert.Equal(t, a.Pivot, b.Pivot)
	assert.Equal(t, a.ForeignPivotKey, b.RelatedPivotKey)
	assert.Equal(t, a.RelatedPivotKey, b.ForeignPivotKey)

	// Both sides share the identical pivot object, not two copies.
	require.Len(t, pivots.list(), 1)
}

func TestBelongsToManyTimestampsMerge(t *testing.T) {
	set := map[string]bool{"Post": true, "Tag": true}
	pivots := newPivotRegistry()
	var errs ErrorList

	resolveRelationship("Post", schema.Relationship{Type: "belongsToMany", Model: "Tag"}, set, pivots, &errs)
	resolveRelationship("Tag", schema.Relationship{Type: "belongsToMany", Model: "Post", WithTimestamps: true}, set, pivots, &errs)

	require.Empty(t, errs)
	assert.True(t, pivots.list()[0].Timestamps)
}

func TestBelongsToManyReusesDeclaredPivot(t *testing.T) {
	set := map[string]bool{"Post": true, "Tag": true}
	pivots := newPivotRegistry()
	var errs ErrorList
	pivots.seed(&schema.Document{
		PivotTables: []schema.PivotTable{{
			Name:        "post_tag",
			Model1:      "Post",
			Model2:      "Tag",
			ForeignKey1: "post_uuid",
			ForeignKey2: "tag_uuid",
		}},
	}, set, &errs)
	require.Empty(t, errs)

	rel, _ := resolveRelationship("Post", schema.Relationship{
		Type: "belongsToMany", Model: "Tag", PivotTable: strPtr("post_tag"),
	}, set, pivots, &errs)

	require.Empty(t, errs)
	btm := rel.(BelongsToMany)
	assert.Equal(t, "post_tag", btm.Pivot)
	assert.Equal(t, "post_uuid", btm.ForeignPivotKey)
	assert.Equal(t, "tag_uuid", btm.RelatedPivotKey)
	require.Len(t, pivots.list(), 1)
}

func TestBelongsToManyPivotKeyConflict(t *testing.T) {
	set := map[string]bool{"Post": true, "Tag": true}
	pivots := newPivotRegistry()
	var errs ErrorList
	pivots.seed(&schema.Document{
		PivotTables: []schema.PivotTable{{
			Name:        "post_tag",
			Model1:      "Post",
			Model2:      "Tag",
			ForeignKey1: "post_uuid",
			ForeignKey2: "tag_uuid",
		}},
	}, set, &errs)

	_, ok := resolveRelationship("Post", schema.Relationship{
		Type:       "belongsToMany",
		Model:      "Tag",
		PivotTable: strPtr("post_tag"),
		ForeignKey: strPtr("post_id"),
	}, set, pivots, &errs)

	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, PivotKeyConflict, errs[0].Code)
}

func TestBelongsToManyRejectsPivotJoiningOtherEntities(t *testing.T) {
	set := map[string]bool{"Post": true, "Tag": true, "User": true}
	pivots := newPivotRegistry()
	var errs ErrorList
	pivots.seed(&schema.Document{
		PivotTables: []schema.PivotTable{{
			Name:        "post_tag",
			Model1:      "Post",
			Model2:      "Tag",
			ForeignKey1: "post_id",
			ForeignKey2: "tag_id",
		}},
	}, set, &errs)
	require.Empty(t, errs)

	// The owner is a side of the pivot but the target is not.
	_, ok := resolveRelationship("Post", schema.Relationship{
		Type:       "belongsToMany",
		Model:      "User",
		PivotTable: strPtr("post_tag"),
	}, set, pivots, &errs)

	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, PivotKeyConflict, errs[0].Code)
	assert.Contains(t, errs[0].Message, "not User")
}

func TestBelongsToManyEmptyForeignKeyMeansUnspecified(t *testing.T) {
	set := map[string]bool{"Post": true, "Tag": true}
	pivots := newPivotRegistry()
	var errs ErrorList

	resolveRelationship("Post", schema.Relationship{Type: "belongsToMany", Model: "Tag"}, set, pivots, &errs)
	rel, ok := resolveRelationship("Tag", schema.Relationship{
		Type: "belongsToMany", Model: "Post", ForeignKey: strPtr(""),
	}, set, pivots, &errs)

	require.True(t, ok)
	require.Empty(t, errs)
	assert.Equal(t, "tag_id", rel.(BelongsToMany).ForeignPivotKey)
}

func TestBelongsToManyForeignPivotKeyConflictAcrossSides(t *testing.T) {
	set := map[string]bool{"Post": true, "Tag": true}
	pivots := newPivotRegistry()
	var errs ErrorList

	resolveRelationship("Post", schema.Relationship{Type: "belongsToMany", Model: "Tag"}, set, pivots, &errs)
	_, ok := resolveRelationship("Tag", schema.Relationship{
		Type: "belongsToMany", Model: "Post", ForeignKey: strPtr("label_id"),
	}, set, pivots, &errs)

	assert.False(t, ok)
	require.True(t, errs.Has(PivotKeyConflict))
}

func TestMorphToRequiresName(t *testing.T) {
	rel, _, errs := resolveRel(t, "Comment", schema.Relationship{
		Type: "morphTo", MorphName: strPtr("commentable"),
	})
	require.Empty(t, errs)
	assert.Equal(t, MorphTo{Name: "commentable"}, rel)

	_, _, errs = resolveRel(t, "Comment", schema.Relationship{Type: "morphTo"})
	require.Len(t, errs, 1)
	assert.Equal(t, MissingMorphName, errs[0].Code)
}

func TestMorphManyResolves(t *testing.T) {
	rel, _, errs := resolveRel(t, "Post", schema.Relationship{
		Type: "morphMany", Model: "Comment", MorphName: strPtr("commentable"),
	}, "Comment")

	require.Empty(t, errs)
	assert.Equal(t, MorphMany{Target: "Comment", MorphName: "commentable"}, rel)
}

func TestMorphToManyDerivesMorphPivot(t *testing.T) {
	rel, pivots, errs := resolveRel(t, "Post", schema.Relationship{
		Type: "morphToMany", Model: "Tag", MorphName: strPtr("taggable"),
	}, "Tag")

	require.Empty(t, errs)
	mtm := rel.(MorphToMany)
	assert.Equal(t, "taggables", mtm.Pivot)

	require.Len(t, pivots.list(), 1)
	p := pivots.list()[0]
	assert.True(t, p.Polymorphic())
	assert.Equal(t, "tag_id", p.LeftKey)
	assert.Equal(t, "taggable_id", p.RightKey)
	assert.Equal(t, "taggable", p.Morph)
}

func TestMorphToManySharesPivotAcrossOwners(t *testing.T) {
	set := map[string]bool{"Post": true, "Video": true, "Tag": true}
	pivots := newPivotRegistry()
	var errs ErrorList

	resolveRelationship("Post", schema.Relationship{Type: "morphToMany", Model: "Tag", MorphName: strPtr("taggable")}, set, pivots, &errs)
	resolveRelationship("Video", schema.Relationship{Type: "morphToMany", Model: "Tag", MorphName: strPtr("taggable")}, set, pivots, &errs)

	require.Empty(t, errs)
	require.Len(t, pivots.list(), 1)
}

func TestUnknownRelationshipKind(t *testing.T) {
	_, _, errs := resolveRel(t, "Post", schema.Relationship{Type: "ownsMany", Model: "Tag"}, "Tag")

	require.Len(t, errs, 1)
	assert.Equal(t, UnknownRelationshipKind, errs[0].Code)
}
