package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGoldmarkCompiler_Title - Title resolution
// ---------------------------------------------------------------------------

func TestGoldmarkCompiler_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		want    string
		wantErr error
	}{
		{
			name:   "first level-1 heading",
			source: "# Tomato Soup\n\nHot and red.\n\n# Second\n",
			want:   "Tomato Soup",
		},
		{
			name:   "inline markup flattened",
			source: "# Best *Ever* `Soup`\n",
			want:   "Best Ever Soup",
		},
		{
			name:   "highlight markers stripped",
			source: "# ==Spicy== Chili\n",
			want:   "Spicy Chili",
		},
		{
			name:   "heading after other blocks",
			source: "Intro paragraph.\n\n## Notes\n\n# Bread\n",
			want:   "Bread",
		},
		{
			name:   "frontmatter title wins",
			source: "---\ntitle: Grandma's Soup\n---\n# Soup\n",
			want:   "Grandma's Soup",
		},
		{
			name:   "blank frontmatter title falls back to heading",
			source: "---\ntitle: \"  \"\n---\n# Soup\n",
			want:   "Soup",
		},
		{
			name:   "ampersand kept verbatim",
			source: "# Mac & Cheese\n",
			want:   "Mac & Cheese",
		},
		{
			name:   "entity reference resolved",
			source: "# Mac &amp; Cheese\n",
			want:   "Mac & Cheese",
		},
		{
			name:   "numeric reference resolved",
			source: "# Caf&#233; Au Lait\n",
			want:   "Caf\u00e9 Au Lait",
		},
		{
			name:   "backslash escape resolved",
			source: "# 5\\*5 Stew\n",
			want:   "5*5 Stew",
		},
		{
			name:   "inline raw html kept as text",
			source: "# A & B <Test>\n",
			want:   "A & B <Test>",
		},
		{
			name:   "code span kept verbatim",
			source: "# Use `a\\*b &amp;`\n",
			want:   "Use a\\*b &amp;",
		},
		{
			name:    "no level-1 heading",
			source:  "## Only a subheading\n\nText.\n",
			wantErr: ErrMissingTitle,
		},
		{
			name:    "empty document",
			source:  "",
			wantErr: ErrMissingTitle,
		},
		{
			name:    "non-string frontmatter title",
			source:  "---\ntitle: [a, b]\n---\n# Soup\n",
			wantErr: ErrFrontmatter,
		},
	}

	compiler := NewGoldmarkCompiler(Options{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recipe, err := compiler.Compile(context.Background(), tt.source)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := recipe.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGoldmarkCompiler_Render - Body rendering
// ---------------------------------------------------------------------------

func TestGoldmarkCompiler_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         Options
		source       string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "heading with id",
			source:       "# Tomato Soup\n",
			wantContains: []string{`<h1 id="tomato-soup">Tomato Soup</h1>`},
		},
		{
			name:         "frontmatter not rendered",
			source:       "---\ntitle: Soup\nserves: 4\n---\nBody text.\n",
			wantContains: []string{"<p>Body text.</p>"},
			wantExcludes: []string{"serves"},
		},
		{
			name:         "gfm table",
			source:       "# T\n\n| a | b |\n|---|---|\n| 1 | 2 |\n",
			wantContains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:         "highlight syntax",
			source:       "# T\n\nAdd ==salt== now.\n",
			wantContains: []string{"<mark>salt</mark>"},
		},
		{
			name:         "hard wraps enabled",
			opts:         Options{HardWraps: true},
			source:       "# T\n\nline one\nline two\n",
			wantContains: []string{"<br />"},
		},
		{
			name:         "hard wraps disabled",
			source:       "# T\n\nline one\nline two\n",
			wantExcludes: []string{"<br"},
		},
		{
			name:         "syntax highlighting uses classes",
			opts:         Options{HighlightStyle: "github"},
			source:       "# T\n\n```go\nfunc main() {}\n```\n",
			wantContains: []string{`class="chroma"`},
			wantExcludes: []string{"style="},
		},
		{
			name:         "no highlighting without style",
			source:       "# T\n\n```go\nfunc main() {}\n```\n",
			wantContains: []string{`<code class="language-go">`},
		},
		{
			name:         "md links rewritten",
			opts:         Options{RewriteLinks: true},
			source:       "# T\n\nUse [stock](../basics/stock.md).\n",
			wantContains: []string{`href="../basics/stock.html"`},
		},
		{
			name:         "md links kept without rewriting",
			source:       "# T\n\nUse [stock](stock.md).\n",
			wantContains: []string{`href="stock.md"`},
		},
		{
			name:         "raw html escaped",
			source:       "# T\n\n<script>alert(1)</script>\n",
			wantExcludes: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recipe, err := NewGoldmarkCompiler(tt.opts).Compile(context.Background(), tt.source)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			body, err := recipe.Render()
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q\n%s", want, body)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(body, exclude) {
					t.Errorf("body should not contain %q\n%s", exclude, body)
				}
			}
		})
	}
}

func TestRecipe_RenderIsRepeatable(t *testing.T) {
	t.Parallel()

	recipe, err := NewGoldmarkCompiler(Options{}).Compile(context.Background(), "# Soup\n\nText[^1].\n\n[^1]: Note.\n")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	first, err := recipe.Render()
	if err != nil {
		t.Fatal(err)
	}
	second, err := recipe.Render()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Render() not repeatable:\n%s\n---\n%s", first, second)
	}
}

func TestGoldmarkCompiler_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGoldmarkCompiler(Options{}).Compile(ctx, "# Soup\n")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
