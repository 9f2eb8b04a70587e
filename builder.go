package recipes

import (
	"fmt"
	"log/slog"

	"github.com/erosson/recipes2/internal/pipeline"
)

// Defaults for the highlight stylesheet.
const (
	DefaultHighlightStyle = "github"
	DefaultHighlightCSS   = "highlight.css"
)

// Builder renders recipe sites. Create with NewBuilder; a Builder holds no
// per-build state and may run Build repeatedly.
type Builder struct {
	logger       *slog.Logger
	compiler     Compiler
	markdown     MarkdownOptions
	cssFile      string
	highlightCSS string // resolved by NewBuilder
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger for build progress. Nil discards logs.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithCompiler replaces the Markdown compiler.
func WithCompiler(c Compiler) Option {
	return func(b *Builder) {
		b.compiler = c
	}
}

// WithMarkdownOptions configures the default compiler and the style of the
// highlight stylesheet.
func WithMarkdownOptions(opts MarkdownOptions) Option {
	return func(b *Builder) {
		b.markdown = opts
	}
}

// WithHighlightStylesheet sets the file name, relative to the destination
// root, of the generated highlight stylesheet. Empty disables it.
func WithHighlightStylesheet(fileName string) Option {
	return func(b *Builder) {
		b.cssFile = fileName
	}
}

// NewBuilder creates a Builder. The highlight style is resolved here so an
// unknown name fails before any build touches the destination.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		markdown: DefaultMarkdownOptions(),
		cssFile:  DefaultHighlightCSS,
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.New(slog.DiscardHandler)
	}

	if style := b.markdown.HighlightStyle; style != "" {
		css, err := pipeline.HighlightCSS(style)
		if err != nil {
			return nil, err
		}
		if b.cssFile != "" {
			if !isBareFileName(b.cssFile) {
				return nil, fmt.Errorf("%w: highlight stylesheet must be a file name: %q", ErrPath, b.cssFile)
			}
			b.highlightCSS = css
		}
	}

	if b.compiler == nil {
		b.compiler = NewMarkdownCompiler(b.markdown)
	}

	return b, nil
}

func isBareFileName(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}
	for _, c := range name {
		if c == '/' || c == '\\' {
			return false
		}
	}
	return true
}

// stylesheetHref returns the site-rooted href of the highlight stylesheet, or
// "" when none is written.
func (b *Builder) stylesheetHref() string {
	if b.highlightCSS == "" {
		return ""
	}
	return "/" + escapePath(b.cssFile)
}

// HighlightStyles lists the available highlight style names.
func HighlightStyles() []string {
	return pipeline.HighlightStyles()
}
