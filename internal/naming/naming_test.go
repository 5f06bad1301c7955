package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"User", "user"},
		{"BlogPost", "blog_post"},
		{"already_snake", "already_snake"},
		{"OrderItem", "order_item"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Snake(tt.input), "Snake(%q)", tt.input)
	}
}

func TestPascal(t *testing.T) {
	assert.Equal(t, "BlogPost", Pascal("blog_post"))
	assert.Equal(t, "User", Pascal("user"))
}

func TestCamel(t *testing.T) {
	assert.Equal(t, "blogPost", Camel("BlogPost"))
	assert.Equal(t, "user", Camel("User"))
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user", "users"},
		{"category", "categories"},
		{"box", "boxes"},
		{"person", "people"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Pluralize(tt.input), "Pluralize(%q)", tt.input)
	}
}

func TestSingularize(t *testing.T) {
	assert.Equal(t, "user", Singularize("users"))
	assert.Equal(t, "category", Singularize("categories"))
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "users", TableName("User"))
	assert.Equal(t, "blog_posts", TableName("BlogPost"))
	assert.Equal(t, "categories", TableName("Category"))
}

func TestForeignKey(t *testing.T) {
	assert.Equal(t, "user_id", ForeignKey("User"))
	assert.Equal(t, "blog_post_id", ForeignKey("BlogPost"))
}

func TestJoinTableIsSymmetric(t *testing.T) {
	assert.Equal(t, "posts_tags", JoinTable("Post", "Tag"))
	assert.Equal(t, "posts_tags", JoinTable("Tag", "Post"))
	assert.Equal(t, "categories_products", JoinTable("Product", "Category"))
}

func TestMorphTable(t *testing.T) {
	assert.Equal(t, "taggables", MorphTable("taggable"))
	assert.Equal(t, "commentables", MorphTable("commentable"))
}

func TestIsSnakeIdentifier(t *testing.T) {
	assert.True(t, IsSnakeIdentifier("user_id"))
	assert.True(t, IsSnakeIdentifier("_private"))
	assert.True(t, IsSnakeIdentifier("name2"))
	assert.False(t, IsSnakeIdentifier(""))
	assert.False(t, IsSnakeIdentifier("2name"))
	assert.False(t, IsSnakeIdentifier("UserID"))
	assert.False(t, IsSnakeIdentifier("bad-name"))
}

func TestIsPascalIdentifier(t *testing.T) {
	assert.True(t, IsPascalIdentifier("User"))
	assert.True(t, IsPascalIdentifier("BlogPost2"))
	assert.False(t, IsPascalIdentifier(""))
	assert.False(t, IsPascalIdentifier("user"))
	assert.False(t, IsPascalIdentifier("Blog_Post"))
}
