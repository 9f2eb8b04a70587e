package recipes

import (
	"context"

	"github.com/erosson/recipes2/internal/pipeline"
)

// Document is a compiled recipe.
type Document interface {
	// Title returns the text listed in the site index.
	Title() string
	// Render returns the page body markup.
	Render() (string, error)
}

// Compiler turns raw document text into a Document.
type Compiler interface {
	Compile(ctx context.Context, source string) (Document, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(ctx context.Context, source string) (Document, error)

// Compile calls f.
func (f CompilerFunc) Compile(ctx context.Context, source string) (Document, error) {
	return f(ctx, source)
}

// MarkdownOptions configures the default Markdown compiler.
type MarkdownOptions struct {
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// HighlightStyle is the chroma style for fenced code. Empty disables highlighting.
	HighlightStyle string
	// RewriteLinks turns relative links to .md files into .html links.
	RewriteLinks bool
}

// DefaultMarkdownOptions returns the options used by NewBuilder.
func DefaultMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{
		HighlightStyle: DefaultHighlightStyle,
		RewriteLinks:   true,
	}
}

type markdownCompiler struct {
	goldmark *pipeline.GoldmarkCompiler
}

// NewMarkdownCompiler returns the goldmark-backed Compiler.
func NewMarkdownCompiler(opts MarkdownOptions) Compiler {
	return &markdownCompiler{
		goldmark: pipeline.NewGoldmarkCompiler(pipeline.Options{
			HardWraps:      opts.HardWraps,
			HighlightStyle: opts.HighlightStyle,
			RewriteLinks:   opts.RewriteLinks,
		}),
	}
}

func (c *markdownCompiler) Compile(ctx context.Context, source string) (Document, error) {
	recipe, err := c.goldmark.Compile(ctx, source)
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// Compile-time interface checks.
var (
	_ Compiler = (*markdownCompiler)(nil)
	_ Compiler = CompilerFunc(nil)
	_ Document = (*pipeline.Recipe)(nil)
)
