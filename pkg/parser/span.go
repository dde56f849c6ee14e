package parser

// SpanKind is the inline style of a TextSpan.
type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	}
	return "?"
}

// TextSpan is a run of inline text with a single style. Links and images
// also carry a target URL.
type TextSpan struct {
	content   string
	kind      SpanKind
	target    string
	hasTarget bool
}

// NewSpan creates a span without a target.
func NewSpan(content string, kind SpanKind) TextSpan {
	return TextSpan{content: content, kind: kind}
}

// NewTargetSpan creates a link or image span pointing to target.
func NewTargetSpan(content string, kind SpanKind, target string) TextSpan {
	return TextSpan{content: content, kind: kind, target: target, hasTarget: true}
}

func (s TextSpan) Content() string { return s.content }
func (s TextSpan) Kind() SpanKind  { return s.kind }

// Target returns the URL of a link or image span.
func (s TextSpan) Target() (string, bool) { return s.target, s.hasTarget }

// Node converts the span into a leaf node.
func (s TextSpan) Node() *Node {
	switch s.kind {
	case Plain:
		return NewText(s.content)
	case Bold:
		return NewLeaf("b", s.content)
	case Italic:
		return NewLeaf("i", s.content)
	case Code:
		return NewLeaf("code", s.content)
	case Link:
		return NewLeaf("a", s.content, Attr{"href", s.target})
	case Image:
		return NewLeaf("img", "", Attr{"src", s.target}, Attr{"alt", s.content})
	default:
		panic(&UnknownSpanKindError{Kind: s.kind})
	}
}

// spansToNodes never returns nil, so the result can be used as children.
func spansToNodes(spans []TextSpan) []*Node {
	nodes := make([]*Node, 0, len(spans))
	for _, s := range spans {
		nodes = append(nodes, s.Node())
	}
	return nodes
}
