package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// fence marks the first and the last line of a code block
const fence = "```"

// BlockKind is the structural type of a block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case CodeBlock:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered list"
	case OrderedList:
		return "ordered list"
	}
	return "?"
}

// Block is a raw block of the document together with its kind.
type Block struct {
	Raw  string
	Kind BlockKind
}

// Segment splits a document into raw blocks. Blocks are separated by blank
// lines, except inside a fenced code block, which always forms one block
// including both fence lines. An unterminated fence runs to the end of the
// document.
func Segment(document string) []string {
	blocks := []string{}
	current := []string{}
	inFence := false

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
	}

	for _, line := range splitLines(document) {
		switch {
		case strings.HasPrefix(line, fence):
			inFence = !inFence
			current = append(current, line)
			if !inFence {
				flush()
			}
		case inFence:
			current = append(current, line)
		case IsBlank(line):
			flush()
		default:
			current = append(current, line)
		}
	}
	flush()

	return blocks
}

// Classify returns the kind of a non-empty block. Checks run in priority
// order and the first match wins.
func Classify(block string) BlockKind {
	lines := splitLines(block)
	if len(lines) == 0 {
		return Paragraph
	}
	switch {
	case strings.HasPrefix(block, "#"):
		return Heading
	case strings.HasPrefix(lines[0], fence) && strings.HasPrefix(lines[len(lines)-1], fence):
		return CodeBlock
	case allLines(lines, func(l string) bool { return strings.HasPrefix(l, ">") }):
		return Quote
	case allLines(lines, func(l string) bool { return strings.HasPrefix(l, "- ") }):
		return UnorderedList
	case isOrderedList(lines):
		return OrderedList
	}
	return Paragraph
}

func allLines(lines []string, fn func(string) bool) bool {
	for _, l := range lines {
		if !fn(l) {
			return false
		}
	}
	return true
}

var orderedItem = regexp.MustCompile(`^([0-9]+)\. `)

// isOrderedList reports whether lines are numbered 1, 2, 3, ... in order.
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		m := orderedItem.FindStringSubmatch(line)
		if m == nil {
			return false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n != i+1 {
			return false
		}
	}
	return true
}

// splitLines splits s on newlines. A trailing newline does not produce an
// empty last line and an empty string has no lines.
func splitLines(s string) []string {
	s = NormalizeNewlines(s)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsBlank reports whether line is empty or consists of Unicode white space
// only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// NormalizeNewlines replaces CR and CRLF line endings with LF.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
