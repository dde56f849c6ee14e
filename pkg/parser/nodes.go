package parser

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// NodeType tells which payload a Node carries.
type NodeType uint8

const (
	// LeafNode carries a value and no children.
	LeafNode NodeType = iota
	// ParentNode carries a tag and an ordered list of children.
	ParentNode
)

func (t NodeType) String() string {
	switch t {
	case LeafNode:
		return "leaf"
	case ParentNode:
		return "parent"
	}
	return "?"
}

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of the HTML tree. A leaf node has an optional tag and
// a value (possibly empty), a parent node has a tag and owns its children.
// Nodes are created with NewText, NewLeaf and NewParent, which enforce these
// invariants.
type Node struct {
	typ      NodeType
	tag      string
	value    string
	children []*Node
	attrs    *linkedhashmap.Map // attribute name -> value, in insertion order
}

// NewText creates an untagged leaf which renders as its value verbatim.
func NewText(value string) *Node {
	return &Node{typ: LeafNode, value: value}
}

// NewLeaf creates a tagged leaf: <tag attrs>value</tag>.
func NewLeaf(tag, value string, attrs ...Attr) *Node {
	return &Node{typ: LeafNode, tag: tag, value: value, attrs: newAttrs(attrs)}
}

// NewParent creates a node owning children. It panics with a StructuralError
// if tag is empty or children is nil; an empty non-nil slice is fine.
func NewParent(tag string, children []*Node, attrs ...Attr) *Node {
	if tag == "" {
		panic(&StructuralError{Type: ParentNode, Reason: "missing tag"})
	}
	if children == nil {
		panic(&StructuralError{Type: ParentNode, Tag: tag, Reason: "missing children"})
	}
	return &Node{typ: ParentNode, tag: tag, children: children, attrs: newAttrs(attrs)}
}

func newAttrs(attrs []Attr) *linkedhashmap.Map {
	if len(attrs) == 0 {
		return nil
	}
	m := linkedhashmap.New()
	for _, a := range attrs {
		m.Put(a.Name, a.Value)
	}
	return m
}

func (n *Node) Type() NodeType    { return n.typ }
func (n *Node) IsLeaf() bool      { return n.typ == LeafNode }
func (n *Node) Tag() string       { return n.tag }
func (n *Node) Value() string     { return n.value }
func (n *Node) Children() []*Node { return n.children }

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n.attrs == nil {
		return "", false
	}
	v, ok := n.attrs.Get(name)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Attrs returns the attributes in the order they were given.
func (n *Node) Attrs() []Attr {
	if n.attrs == nil {
		return nil
	}
	result := make([]Attr, 0, n.attrs.Size())
	it := n.attrs.Iterator()
	for it.Next() {
		result = append(result, Attr{Name: it.Key().(string), Value: it.Value().(string)})
	}
	return result
}

// HTML serializes the subtree rooted at n. No escaping is done.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *Node) String() string {
	return n.HTML()
}

func (n *Node) writeHTML(b *strings.Builder) {
	switch n.typ {
	case LeafNode:
		if n.tag == "" {
			b.WriteString(n.value)
			return
		}
		n.writeOpenTag(b)
		b.WriteString(n.value)
	case ParentNode:
		if n.tag == "" {
			panic(&StructuralError{Type: ParentNode, Reason: "missing tag"})
		}
		if n.children == nil {
			panic(&StructuralError{Type: ParentNode, Tag: n.tag, Reason: "missing children"})
		}
		n.writeOpenTag(b)
		for _, child := range n.children {
			child.writeHTML(b)
		}
	default:
		panic(&StructuralError{Type: n.typ, Tag: n.tag, Reason: "unknown node type"})
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}

func (n *Node) writeOpenTag(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.tag)
	for _, a := range n.Attrs() {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')
}
