package recipes

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/erosson/recipes2/internal/fileutil"
	"github.com/erosson/recipes2/internal/logfields"
)

// TitleEntry pairs a rendered document with its title.
type TitleEntry struct {
	Path  RecipePath
	Title string
}

// RenderRecipes renders each path into the recipe template and writes the
// page to its DestFile, yielding one TitleEntry per page in input order.
//
// The template is loaded once, before the first document. The sequence is
// lazy: nothing is written until it is consumed, and the first error ends it.
// Cancellation is checked between documents.
func (b *Builder) RenderRecipes(ctx context.Context, paths []RecipePath, templates TemplateSource) iter.Seq2[TitleEntry, error] {
	return func(yield func(TitleEntry, error) bool) {
		tmpl, err := loadTemplate(templates, RecipeTemplate)
		if err != nil {
			yield(TitleEntry{}, err)
			return
		}

		for _, p := range paths {
			if err := ctx.Err(); err != nil {
				yield(TitleEntry{}, err)
				return
			}
			entry, err := b.renderRecipe(ctx, p, tmpl)
			if err != nil {
				yield(TitleEntry{}, err)
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

func (b *Builder) renderRecipe(ctx context.Context, p RecipePath, tmpl *Template) (TitleEntry, error) {
	src := p.SourceFile()

	data, err := os.ReadFile(src) // #nosec G304 -- path comes from discovery
	if err != nil {
		return TitleEntry{}, fmt.Errorf("%w: %s: %w", ErrDocumentRead, src, err)
	}

	doc, err := b.compiler.Compile(ctx, string(data))
	if err != nil {
		return TitleEntry{}, fmt.Errorf("%w: %s: %w", ErrDocumentCompile, src, err)
	}
	body, err := doc.Render()
	if err != nil {
		return TitleEntry{}, fmt.Errorf("%w: %s: %w", ErrDocumentCompile, src, err)
	}

	title := doc.Title()
	page, err := tmpl.Execute(map[string]string{
		"title":        title,
		"body":         body,
		"highlightCSS": b.stylesheetHref(),
	})
	if err != nil {
		return TitleEntry{}, fmt.Errorf("%s: %w", src, err)
	}

	dest := p.DestFile()
	if err := fileutil.WriteFile(dest, page); err != nil {
		return TitleEntry{}, fmt.Errorf("%w: %s: %w", ErrFilesystemWrite, dest, err)
	}

	b.logger.Debug("rendered recipe", logfields.Path(src), logfields.Dest(dest), logfields.Title(title))
	return TitleEntry{Path: p, Title: title}, nil
}
