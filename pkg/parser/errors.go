package parser

import (
	"errors"
	"fmt"
)

// ErrMissingTitle is returned by ExtractTitle when no line starts with "# ".
var ErrMissingTitle = errors.New("no h1 header found in the markdown content")

// UnmatchedDelimiterError is returned when an inline delimiter is opened but
// never closed within one run of text.
type UnmatchedDelimiterError struct {
	Delimiter string
	Text      string // the run of text the delimiter was found in
}

func (e *UnmatchedDelimiterError) Error() string {
	return fmt.Sprintf("invalid markdown syntax: unmatched delimiter %q in %q", e.Delimiter, e.Text)
}

// StructuralError is the panic value for a node that breaks the leaf/parent
// invariants. It means a bug in the caller, never bad input.
type StructuralError struct {
	Type   NodeType
	Tag    string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("malformed %s node: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("malformed %s node <%s>: %s", e.Type, e.Tag, e.Reason)
}

// UnknownBlockKindError is the panic value for a block kind outside the
// BlockKind enumeration.
type UnknownBlockKindError struct {
	Kind BlockKind
}

func (e *UnknownBlockKindError) Error() string {
	return fmt.Sprintf("invalid block type: %d", int(e.Kind))
}

// UnknownSpanKindError is the panic value for a span kind outside the
// SpanKind enumeration.
type UnknownSpanKindError struct {
	Kind SpanKind
}

func (e *UnknownSpanKindError) Error() string {
	return fmt.Sprintf("invalid span type: %d", int(e.Kind))
}
