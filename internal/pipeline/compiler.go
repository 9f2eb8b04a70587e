package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Sentinel errors for recipe compilation.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrFrontmatter    = errors.New("invalid frontmatter")
	ErrMissingTitle   = errors.New("recipe has no title: add a level-1 heading or a frontmatter title")
)

// Options configures a GoldmarkCompiler.
type Options struct {
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// HighlightStyle names the chroma style used for fenced code blocks.
	// Empty disables syntax highlighting.
	HighlightStyle string
	// RewriteLinks turns relative links to .md files into links to the
	// generated .html pages.
	RewriteLinks bool
}

// GoldmarkCompiler compiles recipe Markdown using goldmark (pure Go).
type GoldmarkCompiler struct {
	md           goldmark.Markdown
	preprocessor MarkdownPreprocessor
	rewriteLinks bool
}

// NewGoldmarkCompiler creates a GoldmarkCompiler with GFM, footnotes,
// frontmatter and, when a style is set, syntax highlighting.
func NewGoldmarkCompiler(opts Options) *GoldmarkCompiler {
	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
		meta.Meta,          // YAML frontmatter, read back via meta.TryGet
	}
	if opts.HighlightStyle != "" {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.HighlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // styled by the generated highlight stylesheet
			),
		))
	}

	rendererOpts := []renderer.Option{html.WithXHTML()}
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOpts...),
	)

	return &GoldmarkCompiler{
		md:           md,
		preprocessor: &CommonMarkPreprocessor{},
		rewriteLinks: opts.RewriteLinks,
	}
}

// Compile parses source and resolves its title. The body is rendered on
// demand by Recipe.Render.
func (c *GoldmarkCompiler) Compile(ctx context.Context, source string) (*Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := []byte(c.preprocessor.PreprocessMarkdown(ctx, source))
	pc := parser.NewContext()
	doc := c.md.Parser().Parse(text.NewReader(src), parser.WithContext(pc))

	metadata, err := meta.TryGet(pc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontmatter, err)
	}

	title, err := frontmatterTitle(metadata)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = firstHeadingText(doc, src, 1)
	}
	if title == "" {
		return nil, ErrMissingTitle
	}

	return &Recipe{
		title:        title,
		doc:          doc,
		source:       src,
		md:           c.md,
		rewriteLinks: c.rewriteLinks,
	}, nil
}

// Recipe is a parsed recipe document.
type Recipe struct {
	title        string
	doc          ast.Node
	source       []byte
	md           goldmark.Markdown
	rewriteLinks bool
}

// Title returns the recipe title as plain text.
func (r *Recipe) Title() string {
	return r.title
}

// Render produces the HTML body fragment.
func (r *Recipe) Render() (string, error) {
	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, r.source, r.doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	body := ConvertMarkPlaceholders(buf.String())
	if !r.rewriteLinks {
		return body, nil
	}

	body, err := RewriteMarkdownLinks(body)
	if err != nil {
		return "", fmt.Errorf("%w: rewriting links: %v", ErrHTMLConversion, err)
	}
	return body, nil
}

// frontmatterTitle returns the trimmed "title" key, or "" when absent.
func frontmatterTitle(metadata map[string]any) (string, error) {
	raw, ok := metadata["title"]
	if !ok || raw == nil {
		return "", nil
	}
	title, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: title must be a string, got %T", ErrFrontmatter, raw)
	}
	return strings.TrimSpace(title), nil
}

// firstHeadingText returns the plain text of the first heading at level.
func firstHeadingText(doc ast.Node, src []byte, level int) string {
	var heading *ast.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == level {
			heading = h
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if heading == nil {
		return ""
	}
	return stripMarkPlaceholders(plainText(heading, src))
}

// plainText returns the text below n as a reader sees it: backslash escapes
// and character references are resolved, code spans are kept verbatim and
// inline raw HTML is kept as literal text.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.CodeSpan:
			for s := t.FirstChild(); s != nil; s = s.NextSibling() {
				if txt, ok := s.(*ast.Text); ok {
					b.Write(txt.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				b.Write(seg.Value(src))
			}
		case *ast.AutoLink:
			b.Write(t.Label(src))
		case *ast.Text:
			b.Write(resolveText(t.Segment.Value(src)))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// resolveText applies the CommonMark escape and reference rules to raw text.
func resolveText(raw []byte) []byte {
	v := util.UnescapePunctuations(raw)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}
