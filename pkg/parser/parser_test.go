package parser

import (
	"errors"
	"sync"
	"testing"

	"github.com/flytaly/mdsite/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "paragraphs",
			md: `
This is **bolded** paragraph
text in a p
tag here

This is another paragraph with _italic_ text and ` + "`code`" + ` here

`,
			want: "<div><p>This is <b>bolded</b> paragraph text in a p tag here</p><p>This is another paragraph with <i>italic</i> text and <code>code</code> here</p></div>",
		},
		{
			name: "code block",
			md:   "\n```\nThis is text that _should_ remain\nthe **same** even with inline stuff\n```\n",
			want: "<div><pre><code>This is text that _should_ remain\nthe **same** even with inline stuff\n</code></pre></div>",
		},
		{
			name: "headings",
			md:   "# Heading 1\n\n## Heading 2\n\n### Heading 3\n",
			want: "<div><h1>Heading 1</h1><h2>Heading 2</h2><h3>Heading 3</h3></div>",
		},
		{
			name: "quote",
			md:   "\n> This is a quote\n> This is another line\n",
			want: "<div><blockquote>This is a quote\nThis is another line</blockquote></div>",
		},
		{
			name: "unordered list",
			md:   "\n- Item 1\n- Item 2\n- Item 3\n",
			want: "<div><ul><li>Item 1</li><li>Item 2</li><li>Item 3</li></ul></div>",
		},
		{
			name: "ordered list",
			md:   "\n1. Item 1\n2. Item 2\n3. Item 3\n",
			want: "<div><ol><li>Item 1</li><li>Item 2</li><li>Item 3</li></ol></div>",
		},
		{
			name: "links and images",
			md:   "See [docs](https://go.dev) and ![gopher](/img/gopher.png)",
			want: `<div><p>See <a href="https://go.dev">docs</a> and <img src="/img/gopher.png" alt="gopher"></img></p></div>`,
		},
		{name: "empty", md: "", want: "<div></div>"},
		{name: "whitespace only", md: "   \n\t\n   ", want: "<div></div>"},
		{name: "empty code block", md: "``````", want: "<div><pre><code></code></pre></div>"},
		{name: "code block with only newlines", md: "```\n\n```", want: "<div><pre><code></code></pre></div>"},
		{name: "heading with no text", md: "#", want: "<div><h1></h1></div>"},
		{name: "quote with empty lines", md: ">\n>\n>", want: "<div><blockquote>\n\n</blockquote></div>"},
		{name: "list with empty items", md: "- \n- ", want: "<div><ul><li></li><li></li></ul></div>"},
		{name: "non-sequential numbers", md: "2. Item 1\n3. Item 2", want: "<div><p>2. Item 1 3. Item 2</p></div>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Render(tc.md)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConvert(t *testing.T) {
	root, err := Convert("# Title\n\nsome _text_\n\n- a\n- b")
	require.NoError(t, err)

	assert.Equal(t, "div", root.Tag())
	children := root.Children()
	require.Len(t, children, 3)
	assert.Equal(t, "h1", children[0].Tag())
	assert.Equal(t, "p", children[1].Tag())
	assert.Equal(t, "ul", children[2].Tag())
	assert.Len(t, children[2].Children(), 2)
}

func TestRenderUnmatched(t *testing.T) {
	_, err := Render("fine paragraph\n\nbroken **paragraph")
	var unmatched *UnmatchedDelimiterError
	require.True(t, errors.As(err, &unmatched))
	assert.Equal(t, "**", unmatched.Delimiter)
}

func TestParserLogs(t *testing.T) {
	logger := log.NewListLog()
	p := New(WithLogger(logger))

	_, err := p.Render("# T\n\npara")
	require.NoError(t, err)
	assert.Equal(t, []string{"block 0: heading (3 bytes)", "block 1: paragraph (4 bytes)"}, logger.Messages(log.InfoLevel))
	assert.Empty(t, logger.Messages(log.WarningLevel))

	_, err = p.Render("_open")
	assert.Error(t, err)
	assert.Len(t, logger.Messages(log.WarningLevel), 1)
}

func TestParse(t *testing.T) {
	blocks := New().Parse("> q\n\n```\ncode\n```\n\n1. x")
	assert.Equal(t, []Block{
		{Raw: "> q", Kind: Quote},
		{Raw: "```\ncode\n```", Kind: CodeBlock},
		{Raw: "1. x", Kind: OrderedList},
	}, blocks)
}

func TestConcurrentRender(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Render("# Head\n\n**bold** [l](u)")
			assert.NoError(t, err)
			assert.Equal(t, `<div><h1>Head</h1><p><b>bold</b> <a href="u">l</a></p></div>`, got)
		}()
	}
	wg.Wait()
}

func TestExtractTitle(t *testing.T) {
	cases := map[string]string{
		"# Hello World":                           "Hello World",
		"#   Hello World   ":                      "Hello World",
		"\n# Title\n## Subheading\n### Sub-sub\n": "Title",
		"Some text\n# Title\nMore text":           "Title",
	}
	for md, want := range cases {
		got, err := ExtractTitle(md)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, md := range []string{"## Sub", "## Subheading\nThis is a paragraph.", "#Title", ""} {
		_, err := ExtractTitle(md)
		assert.ErrorIs(t, err, ErrMissingTitle, md)
	}
}
