/*
Package parser converts a small markdown dialect into a tree of HTML nodes.

A document is split into blocks separated by blank lines (fenced code blocks
may contain blank lines). Each block is classified as a paragraph, heading,
code block, quote, unordered or ordered list, and converted into a node
whose children come from the inline tokenizer. Inline markup supports
**bold**, _italic_, `code`, [links](url) and ![images](url) without nesting.
*/
package parser

import (
	"strings"

	"github.com/flytaly/mdsite/pkg/log"
)

type Parser struct {
	log log.Logger
}

// WithLogger sets the logger that receives diagnostics from the parser.
func WithLogger(l log.Logger) func(*Parser) {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a markdown parser
func New(options ...func(*Parser)) *Parser {
	p := &Parser{log: log.NewEmptyLog()}
	for _, option := range options {
		option(p)
	}
	return p
}

// Parse splits the document into classified blocks.
func (p *Parser) Parse(document string) []Block {
	raw := Segment(document)
	blocks := make([]Block, 0, len(raw))
	for i, b := range raw {
		kind := Classify(b)
		p.log.Info("block %d: %s (%d bytes)", i, kind, len(b))
		blocks = append(blocks, Block{Raw: b, Kind: kind})
	}
	return blocks
}

// Convert builds the node tree of the document. The root is a div holding
// one node per block in document order.
func (p *Parser) Convert(document string) (*Node, error) {
	blocks := p.Parse(document)
	children := make([]*Node, 0, len(blocks))
	for i, b := range blocks {
		node, err := Assemble(b.Raw, b.Kind)
		if err != nil {
			p.log.Warning("block %d (%s): %v", i, b.Kind, err)
			return nil, err
		}
		children = append(children, node)
	}
	return NewParent("div", children), nil
}

// Render converts the document and serializes it to an HTML fragment.
func (p *Parser) Render(document string) (string, error) {
	root, err := p.Convert(document)
	if err != nil {
		return "", err
	}
	return root.HTML(), nil
}

var defaultParser = New()

// Convert builds the node tree of document with a parser that logs nothing.
func Convert(document string) (*Node, error) {
	return defaultParser.Convert(document)
}

// Render converts document to an HTML fragment rooted at a div.
func Render(document string) (string, error) {
	return defaultParser.Render(document)
}

// ExtractTitle returns the text of the first line starting with "# ".
func ExtractTitle(document string) (string, error) {
	for _, line := range splitLines(document) {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), nil
		}
	}
	return "", ErrMissingTitle
}
