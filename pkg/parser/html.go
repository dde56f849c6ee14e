package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// Assemble converts a classified block into a node subtree.
func Assemble(block string, kind BlockKind) (*Node, error) {
	switch kind {
	case Paragraph:
		return paragraphNode(block)
	case Heading:
		return headingNode(block)
	case CodeBlock:
		return codeNode(block), nil
	case Quote:
		return quoteNode(block)
	case UnorderedList:
		return listNode(block, "ul", func(line string) string {
			return strings.TrimPrefix(line, "- ")
		})
	case OrderedList:
		return listNode(block, "ol", func(line string) string {
			if i := strings.IndexByte(line, '.'); i >= 0 {
				line = line[i+1:]
			}
			return strings.TrimLeftFunc(line, unicode.IsSpace)
		})
	default:
		panic(&UnknownBlockKindError{Kind: kind})
	}
}

// textToChildren tokenizes inline text into leaf nodes.
func textToChildren(text string) ([]*Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return spansToNodes(spans), nil
}

func inlineParent(tag, text string) (*Node, error) {
	children, err := textToChildren(text)
	if err != nil {
		return nil, err
	}
	return NewParent(tag, children), nil
}

func paragraphNode(block string) (*Node, error) {
	return inlineParent("p", strings.ReplaceAll(block, "\n", " "))
}

// headingNode uses the number of '#' in the whole block as the level, so
// "# C# tips" is an h2. Levels above 6 are kept as they are.
func headingNode(block string) (*Node, error) {
	level := strings.Count(block, "#")
	text := strings.TrimLeftFunc(strings.TrimLeft(block, "#"), unicode.IsSpace)
	return inlineParent("h"+strconv.Itoa(level), text)
}

// codeNode keeps the content between the fences literally. Leading newlines
// are dropped unless the content is a single newline.
func codeNode(block string) *Node {
	content := ""
	if len(block) >= 2*len(fence) {
		content = block[len(fence) : len(block)-len(fence)]
	}
	if content != "\n" {
		content = strings.TrimLeft(content, "\n")
	}
	return NewParent("pre", []*Node{NewLeaf("code", content)})
}

func quoteNode(block string) (*Node, error) {
	lines := splitLines(block)
	for i, line := range lines {
		lines[i] = strings.TrimLeftFunc(strings.TrimPrefix(line, ">"), unicode.IsSpace)
	}
	return inlineParent("blockquote", strings.Join(lines, "\n"))
}

func listNode(block, tag string, itemText func(string) string) (*Node, error) {
	lines := splitLines(block)
	items := make([]*Node, 0, len(lines))
	for _, line := range lines {
		item, err := inlineParent("li", itemText(line))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return NewParent(tag, items), nil
}
