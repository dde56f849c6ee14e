package site

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// CheckPage reports the first element of page that is closed out of order
// or never closed. Void elements may appear with or without a closing tag.
func CheckPage(page string) error {
	z := html.NewTokenizer(strings.NewReader(page))
	var open []string

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return z.Err()
			}
			if len(open) > 0 {
				return errors.Errorf("unclosed <%s>", open[len(open)-1])
			}
			return nil

		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidElements[atom.Lookup(name)] {
				open = append(open, string(name))
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if voidElements[atom.Lookup(name)] {
				continue
			}
			tag := string(name)
			if len(open) == 0 {
				return errors.Errorf("unexpected </%s>", tag)
			}
			if last := open[len(open)-1]; last != tag {
				return errors.Errorf("</%s> closes <%s>", tag, last)
			}
			open = open[:len(open)-1]
		}
	}
}
