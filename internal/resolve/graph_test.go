package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entity(name string, rels ...Relation) *Entity {
	return &Entity{Name: name, Relations: rels}
}

func TestTopoSortOrdersDependenciesFirst(t *testing.T) {
	// Comment -> Post -> User: declared most-dependent first, emitted last.
	entities := []*Entity{
		entity("Comment", BelongsTo{Target: "Post", ForeignKey: "post_id"}),
		entity("Post", BelongsTo{Target: "User", ForeignKey: "user_id"}),
		entity("User"),
	}

	order, err := buildGraph(entities).topoSort()
	require.Nil(t, err)
	assert.Equal(t, []string{"User", "Post", "Comment"}, order)
}

func TestTopoSortPreservesDeclarationOrderForIndependents(t *testing.T) {
	entities := []*Entity{
		entity("Gamma"),
		entity("Alpha"),
		entity("Beta"),
	}

	order, err := buildGraph(entities).topoSort()
	require.Nil(t, err)
	assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, order)
}

func TestTopoSortPicksLowestDeclarationIndexAmongReady(t *testing.T) {
	// Once User is placed, Post (declared first) becomes ready and wins the
	// tie against Setting even though Setting was ready from the start.
	entities := []*Entity{
		entity("Post", BelongsTo{Target: "User"}),
		entity("User"),
		entity("Setting"),
	}

	order, err := buildGraph(entities).topoSort()
	require.Nil(t, err)
	assert.Equal(t, []string{"User", "Post", "Setting"}, order)
}

func TestTopoSortStableAcrossRuns(t *testing.T) {
	entities := []*Entity{
		entity("Comment", BelongsTo{Target: "Post"}, BelongsTo{Target: "User"}),
		entity("Post", BelongsTo{Target: "User"}),
		entity("User"),
		entity("Setting"),
	}

	first, err := buildGraph(entities).topoSort()
	require.Nil(t, err)
	for i := 0; i < 50; i++ {
		again, err := buildGraph(entities).topoSort()
		require.Nil(t, err)
		require.Equal(t, first, again)
	}
}

func TestSelfReferenceIsNotACycle(t *testing.T) {
	entities := []*Entity{
		entity("Category", BelongsTo{Target: "Category", ForeignKey: "parent_id"}),
	}

	order, err := buildGraph(entities).topoSort()
	require.Nil(t, err)
	assert.Equal(t, []string{"Category"}, order)
}

func TestCycleReportedWithFullPath(t *testing.T) {
	entities := []*Entity{
		entity("A", BelongsTo{Target: "B"}),
		entity("B", BelongsTo{Target: "A"}),
	}

	order, err := buildGraph(entities).topoSort()
	assert.Nil(t, order)
	require.NotNil(t, err)
	assert.Equal(t, CyclicDependency, err.Code)
	assert.Contains(t, err.Message, "A -> B -> A")
}

func TestCycleAmongThree(t *testing.T) {
	entities := []*Entity{
		entity("A", BelongsTo{Target: "B"}),
		entity("B", BelongsTo{Target: "C"}),
		entity("C", BelongsTo{Target: "A"}),
	}

	_, err := buildGraph(entities).topoSort()
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "A -> B -> C -> A")
}

func TestCycleDoesNotImplicateIndependentEntities(t *testing.T) {
	entities := []*Entity{
		entity("Standalone"),
		entity("A", BelongsTo{Target: "B"}),
		entity("B", BelongsTo{Target: "A"}),
	}

	_, err := buildGraph(entities).topoSort()
	require.NotNil(t, err)
	assert.NotContains(t, err.Message, "Standalone")
}

func TestOnlyBelongsToInducesEdges(t *testing.T) {
	// hasMany and belongsToMany never constrain emission order.
	entities := []*Entity{
		entity("User", HasMany{Target: "Post"}),
		entity("Post", BelongsToMany{Target: "Tag", Pivot: "posts_tags"}),
		entity("Tag"),
	}

	order, err := buildGraph(entities).topoSort()
	require.Nil(t, err)
	assert.Equal(t, []string{"User", "Post", "Tag"}, order)
}
