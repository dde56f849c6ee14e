package site

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/flytaly/mdsite/pkg/log"
	"github.com/flytaly/mdsite/pkg/parser"
	"github.com/pkg/errors"
)

const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
	MarkdownExtension  = ".md"
	HTMLExtension      = ".html"
)

type Config struct {
	StaticDir    string // copied as is into PublicDir
	ContentDir   string // markdown sources
	TemplatePath string // page shell with Title and Content placeholders
	PublicDir    string // output directory, a path on the local file system
}

func DefaultConfig() Config {
	return Config{
		StaticDir:    "static",
		ContentDir:   "content",
		TemplatePath: "template.html",
		PublicDir:    "public",
	}
}

// Report summarizes a build
type Report struct {
	Files    int // copied static files
	Pages    int // generated pages
	Warnings int // pages that failed CheckPage
}

// Generator builds a site. Sources (static files, content, template) are read
// from fileSystem using slash separated paths, output is written to the
// local file system.
type Generator struct {
	fileSystem fs.FS
	cfg        Config
	parser     *parser.Parser
	log        log.Logger
}

func WithLogger(l log.Logger) func(*Generator) {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

func WithParser(p *parser.Parser) func(*Generator) {
	return func(g *Generator) {
		if p != nil {
			g.parser = p
		}
	}
}

// New creates a site generator
func New(fileSystem fs.FS, cfg Config, options ...func(*Generator)) *Generator {
	g := &Generator{
		fileSystem: fileSystem,
		cfg:        cfg,
		log:        log.NewEmptyLog(),
	}
	for _, option := range options {
		option(g)
	}
	if g.parser == nil {
		g.parser = parser.New(parser.WithLogger(g.log))
	}
	return g
}

func (g *Generator) Config() Config { return g.cfg }

// Build copies static files and generates every page of the content
// directory.
func (g *Generator) Build() (Report, error) {
	var report Report
	var err error

	report.Files, err = g.CopyStatic(g.cfg.StaticDir, g.cfg.PublicDir)
	if err != nil {
		return report, err
	}

	report.Pages, report.Warnings, err = g.generatePages(g.cfg.ContentDir, g.cfg.TemplatePath, g.cfg.PublicDir)
	return report, err
}

// CopyStatic replaces dst with a recursive copy of srcDir and returns the
// number of copied files.
func (g *Generator) CopyStatic(srcDir, dst string) (int, error) {
	if _, err := fs.Stat(g.fileSystem, srcDir); err != nil {
		return 0, errors.Wrapf(err, "source directory %q", srcDir)
	}

	if _, err := os.Stat(dst); err == nil {
		g.log.Info("Deleting contents of destination directory: %s", dst)
		if err := os.RemoveAll(dst); err != nil {
			return 0, errors.Wrap(err, "clean destination")
		}
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return 0, errors.Wrap(err, "create destination")
	}
	g.log.Info("Created destination directory: %s", dst)

	copied := 0
	err := fs.WalkDir(g.fileSystem, srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := relPath(srcDir, p)
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			g.log.Info("Created directory: %s", target)
			return nil
		}

		if err := g.copyFile(p, target); err != nil {
			return err
		}
		copied++
		g.log.Info("Copied file: %s -> %s", p, target)
		return nil
	})

	return copied, errors.Wrap(err, "copy static files")
}

// copyFile copies a file keeping its permissions and modification time.
func (g *Generator) copyFile(src, dst string) error {
	in, err := g.fileSystem.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// RenderPage converts markdown and puts the result and its title into the
// template.
func RenderPage(p *parser.Parser, markdown, template string) (string, error) {
	content, err := p.Render(markdown)
	if err != nil {
		return "", err
	}
	title, err := parser.ExtractTitle(markdown)
	if err != nil {
		return "", err
	}
	r := strings.NewReplacer(TitlePlaceholder, title, ContentPlaceholder, content)
	return r.Replace(template), nil
}

// GeneratePage renders the markdown file from into dest using the template
// at templatePath.
func (g *Generator) GeneratePage(from, templatePath, dest string) error {
	template, err := fs.ReadFile(g.fileSystem, templatePath)
	if err != nil {
		return errors.Wrap(err, "read template")
	}
	_, err = g.generatePage(from, string(template), templatePath, dest)
	return err
}

// generatePage returns false if the written page is not well formed.
func (g *Generator) generatePage(from, template, templatePath, dest string) (bool, error) {
	g.log.Info("Generating page from %s to %s using %s", from, dest, templatePath)

	markdown, err := fs.ReadFile(g.fileSystem, from)
	if err != nil {
		return false, errors.Wrapf(err, "read %s", from)
	}

	page, err := RenderPage(g.parser, string(markdown), template)
	if err != nil {
		return false, errors.Wrapf(err, "render %s", from)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return false, errors.Wrapf(err, "create directory for %s", dest)
	}
	if err := os.WriteFile(dest, []byte(page), 0644); err != nil {
		return false, errors.Wrapf(err, "write %s", dest)
	}

	if err := CheckPage(page); err != nil {
		g.log.Warning("%s: %v", dest, err)
		return false, nil
	}
	return true, nil
}

// GeneratePages generates a page for every markdown file under contentDir,
// keeping the directory structure, and returns the number of pages.
func (g *Generator) GeneratePages(contentDir, templatePath, destDir string) (int, error) {
	pages, _, err := g.generatePages(contentDir, templatePath, destDir)
	return pages, err
}

func (g *Generator) generatePages(contentDir, templatePath, destDir string) (pages, warnings int, err error) {
	template, err := fs.ReadFile(g.fileSystem, templatePath)
	if err != nil {
		return 0, 0, errors.Wrap(err, "read template")
	}

	err = fs.WalkDir(g.fileSystem, contentDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsMarkdown(p) {
			return nil
		}

		rel := relPath(contentDir, p)
		rel = strings.TrimSuffix(rel, path.Ext(rel)) + HTMLExtension
		dest := filepath.Join(destDir, filepath.FromSlash(rel))

		ok, err := g.generatePage(p, string(template), templatePath, dest)
		if err != nil {
			return err
		}
		pages++
		if !ok {
			warnings++
		}
		return nil
	})
	return pages, warnings, err
}

// IsMarkdown reports whether the name has the markdown extension. The match
// is case-sensitive.
func IsMarkdown(name string) bool {
	return path.Ext(name) == MarkdownExtension
}

// relPath returns p relative to root, both slash separated paths of an fs.FS.
func relPath(root, p string) string {
	if root == "." {
		return p
	}
	if p == root {
		return "."
	}
	return strings.TrimPrefix(p, root+"/")
}
