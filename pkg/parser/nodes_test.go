package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeHTML(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		assert.Equal(t, "<p>Hello, world!</p>", NewLeaf("p", "Hello, world!").HTML())
	})

	t.Run("leaf with attributes", func(t *testing.T) {
		node := NewLeaf("a", "Click me!", Attr{"href", "https://www.google.com"}, Attr{"target", "_blank"})
		assert.Equal(t, `<a href="https://www.google.com" target="_blank">Click me!</a>`, node.HTML())
	})

	t.Run("untagged leaf is raw text", func(t *testing.T) {
		assert.Equal(t, "this is just <text>", NewText("this is just <text>").HTML())
		assert.Equal(t, "also text", NewLeaf("", "also text").HTML())
	})

	t.Run("empty value", func(t *testing.T) {
		assert.Equal(t, "<h1></h1>", NewLeaf("h1", "").HTML())
	})

	t.Run("children", func(t *testing.T) {
		parent := NewParent("div", []*Node{NewLeaf("span", "child")})
		assert.Equal(t, "<div><span>child</span></div>", parent.HTML())
	})

	t.Run("grandchildren", func(t *testing.T) {
		child := NewParent("span", []*Node{NewLeaf("b", "grandchild")})
		parent := NewParent("div", []*Node{child})
		assert.Equal(t, "<div><span><b>grandchild</b></span></div>", parent.HTML())
	})

	t.Run("mixed children", func(t *testing.T) {
		parent := NewParent("p", []*Node{
			NewLeaf("b", "Bold text"),
			NewText("Normal text"),
			NewLeaf("i", "italic text"),
			NewText("Normal text"),
		}, Attr{"class", "lead"})
		assert.Equal(t, `<p class="lead"><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>`, parent.String())
	})

	t.Run("parent without children", func(t *testing.T) {
		assert.Equal(t, "<div></div>", NewParent("div", []*Node{}).HTML())
	})
}

func TestNodeAccessors(t *testing.T) {
	leaf := NewLeaf("img", "", Attr{"src", "u.png"}, Attr{"alt", "u"})
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, LeafNode, leaf.Type())
	assert.Equal(t, "img", leaf.Tag())
	assert.Equal(t, []Attr{{"src", "u.png"}, {"alt", "u"}}, leaf.Attrs())

	src, ok := leaf.Attr("src")
	assert.True(t, ok)
	assert.Equal(t, "u.png", src)
	_, ok = leaf.Attr("href")
	assert.False(t, ok)

	parent := NewParent("ul", []*Node{NewParent("li", []*Node{})})
	assert.False(t, parent.IsLeaf())
	assert.Len(t, parent.Children(), 1)
	assert.Nil(t, parent.Attrs())
	_, ok = parent.Attr("class")
	assert.False(t, ok)
}

func TestNodeInvariants(t *testing.T) {
	assert.PanicsWithError(t, "malformed parent node: missing tag", func() {
		NewParent("", []*Node{})
	})
	assert.PanicsWithError(t, "malformed parent node <ul>: missing children", func() {
		NewParent("ul", nil)
	})
}
