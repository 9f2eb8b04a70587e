package recipes_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erosson/recipes2"
)

// Example builds a one-recipe site with the built-in templates.
func Example() {
	base, err := os.MkdirTemp("", "recipes-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(base)

	src := filepath.Join(base, "recipes")
	if err := os.MkdirAll(filepath.Join(src, "soups"), 0o755); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := os.WriteFile(filepath.Join(src, "soups", "tomato.md"), []byte("# Tomato Soup\n\nSimmer.\n"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := recipes.Build(context.Background(), recipes.Layout{
		SourceDir: src,
		DestDir:   filepath.Join(base, "dist"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range result.Recipes {
		fmt.Println(r.Title, r.Path.WebFile())
	}
	// Output: Tomato Soup /soups/tomato.html
}

// ExampleNewRecipePath shows the three coordinates of one document.
func ExampleNewRecipePath() {
	p, err := recipes.NewRecipePath("recipes", "dist", filepath.Join("recipes", "main dishes"), "stew.md")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(filepath.ToSlash(p.SourceFile()))
	fmt.Println(filepath.ToSlash(p.DestFile()))
	fmt.Println(p.WebFile())
	fmt.Println(p.Href())
	// Output:
	// recipes/main dishes/stew.md
	// dist/main dishes/stew.html
	// /main dishes/stew.html
	// /main%20dishes/stew.html
}

// ExampleIndexBody shows the escaping applied to index entries.
func ExampleIndexBody() {
	p, err := recipes.NewRecipePath("recipes", "dist", "recipes", "mac & cheese.md")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(recipes.IndexBody([]recipes.TitleEntry{{Path: p, Title: "Mac & Cheese <Deluxe>"}}))
	// Output: <li><a href="/mac%20%26%20cheese.html">Mac &amp; Cheese &lt;Deluxe&gt;</a></li>
}

// ExampleCompilerFunc plugs a custom compiler into a Builder.
func ExampleCompilerFunc() {
	plain := recipes.CompilerFunc(func(ctx context.Context, source string) (recipes.Document, error) {
		return textDocument(source), nil
	})

	b, err := recipes.NewBuilder(recipes.WithCompiler(plain), recipes.WithHighlightStylesheet(""))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(b != nil)
	// Output: true
}

type textDocument string

func (d textDocument) Title() string           { return string(d) }
func (d textDocument) Render() (string, error) { return "<pre>" + string(d) + "</pre>", nil }
