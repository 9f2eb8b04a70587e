// Package recipes builds a static recipe site from a tree of Markdown files.
//
// # Quick Start
//
//	b, err := recipes.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := b.Build(ctx, recipes.Layout{
//	    SourceDir: "recipes",
//	    DestDir:   "dist",
//	    PublicDir: "public",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Recipes), "recipes")
//
// # Build Pipeline
//
// Every build is a full, clean rebuild:
//
//  1. The destination directory is removed.
//  2. The public directory is copied into it (static assets, stylesheets).
//  3. The highlight stylesheet is written, if enabled.
//  4. The source tree is walked for *.md documents (Discover).
//  5. Each document is compiled and rendered into the recipe template (RenderRecipes).
//  6. index.html links every rendered recipe in discovery order (RenderIndex).
//
// Generated pages are written after the public copy, so they replace any
// static file with the same name. The first error aborts the build and no
// index is written.
//
// # Paths
//
// A RecipePath carries a document's location in three coordinate systems:
//
//	source:  recipes/soups/tomato.md
//	dest:    dist/soups/tomato.html
//	web:     /soups/tomato.html
//
// # Templates
//
// Two templates are used, recipe.html (fields .title, .body and
// .highlightCSS) and index.html (field .body). .highlightCSS is the href of
// the highlight stylesheet, empty when none is written. They are Go text/template sources; referencing
// a field that is not bound is an error. Layout.TemplateDir selects a
// directory holding both files; when empty the built-in templates are used.
//
// # Compilers
//
// Documents are compiled by a Compiler. The default is goldmark with GFM,
// footnotes, frontmatter titles, and chroma syntax highlighting. Use
// WithCompiler to plug in another implementation.
package recipes
