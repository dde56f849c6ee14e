package parser

import (
	"regexp"
	"strings"
)

// Parsing of inline elements

const (
	mdImage = `!\[([^\[\]]*)\]\(([^\(\)]*)\)` // ![alt text](url)
	mdLink  = `\[([^\[\]]*)\]\(([^\(\)]*)\)`  // [text](url)
)

var (
	imageRegexp = regexp.MustCompile(mdImage)
	linkRegexp  = regexp.MustCompile(mdLink)
)

// delimiters are applied in order, later passes only see plain spans.
var delimiters = []struct {
	marker string
	kind   SpanKind
}{
	{"**", Bold},
	{"`", Code},
	{"_", Italic},
}

// Tokenize splits inline text into styled spans.
func Tokenize(text string) ([]TextSpan, error) {
	spans := []TextSpan{NewSpan(text, Plain)}

	var err error
	for _, d := range delimiters {
		spans, err = splitDelimiter(spans, d.marker, d.kind)
		if err != nil {
			return nil, err
		}
	}

	// images first: the link pattern is a suffix of the image pattern
	spans = splitPattern(spans, Image)
	spans = splitPattern(spans, Link)
	return spans, nil
}

// splitDelimiter wraps text between pairs of delimiter into spans of kind.
// Only plain spans are split.
func splitDelimiter(spans []TextSpan, delimiter string, kind SpanKind) ([]TextSpan, error) {
	result := make([]TextSpan, 0, len(spans))
	for _, span := range spans {
		if span.kind != Plain {
			result = append(result, span)
			continue
		}

		parts := strings.Split(span.content, delimiter)
		if len(parts)%2 == 0 {
			return nil, &UnmatchedDelimiterError{Delimiter: delimiter, Text: span.content}
		}

		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				result = append(result, NewSpan(part, Plain))
			} else {
				result = append(result, NewSpan(part, kind))
			}
		}
	}
	return result, nil
}

// splitPattern extracts images or links from plain spans, left to right.
func splitPattern(spans []TextSpan, kind SpanKind) []TextSpan {
	result := make([]TextSpan, 0, len(spans))
	for _, span := range spans {
		if span.kind != Plain {
			result = append(result, span)
			continue
		}

		matches := findReferences(span.content, kind)
		if len(matches) == 0 {
			result = append(result, span)
			continue
		}

		text := span.content
		last := 0
		for _, m := range matches {
			if m[0] > last {
				result = append(result, NewSpan(text[last:m[0]], Plain))
			}
			result = append(result, NewTargetSpan(text[m[2]:m[3]], kind, text[m[4]:m[5]]))
			last = m[1]
		}
		if last < len(text) {
			result = append(result, NewSpan(text[last:], Plain))
		}
	}
	return result
}

// findReferences returns submatch indexes of image or link references.
// A link must not be preceded by '!'.
func findReferences(text string, kind SpanKind) [][]int {
	if kind == Image {
		return imageRegexp.FindAllStringSubmatchIndex(text, -1)
	}

	var result [][]int
	for _, m := range linkRegexp.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		result = append(result, m)
	}
	return result
}

// ExtractImages returns (alt, url) pairs of all images in text.
func ExtractImages(text string) [][2]string {
	return extractPairs(text, Image)
}

// ExtractLinks returns (text, url) pairs of all links in text that are not
// images.
func ExtractLinks(text string) [][2]string {
	return extractPairs(text, Link)
}

func extractPairs(text string, kind SpanKind) [][2]string {
	matches := findReferences(text, kind)
	result := make([][2]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, [2]string{text[m[2]:m[3]], text[m[4]:m[5]]})
	}
	return result
}
