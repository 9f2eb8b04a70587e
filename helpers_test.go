package recipes

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeDocument struct {
	title string
	body  string
	err   error
}

func (d fakeDocument) Title() string { return d.title }

func (d fakeDocument) Render() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return d.body, nil
}

var errFakeCompile = errors.New("fake compile failure")

// lineCompiler uses the first line of a document as its title and wraps the
// rest in a paragraph. A document starting with "FAIL" does not compile.
var lineCompiler = CompilerFunc(func(ctx context.Context, source string) (Document, error) {
	title, rest, _ := strings.Cut(source, "\n")
	if strings.HasPrefix(title, "FAIL") {
		return nil, errFakeCompile
	}
	return fakeDocument{title: title, body: "<p>" + strings.TrimSpace(rest) + "</p>"}, nil
})

// mapTemplates serves templates from memory and counts loads per name.
type mapTemplates struct {
	templates map[string]string
	loads     map[string]int
}

func newMapTemplates(templates map[string]string) *mapTemplates {
	return &mapTemplates{templates: templates, loads: map[string]int{}}
}

func (m *mapTemplates) LoadTemplate(name string) (string, error) {
	m.loads[name]++
	src, ok := m.templates[name]
	if !ok {
		return "", os.ErrNotExist
	}
	return src, nil
}

func simpleTemplates() *mapTemplates {
	return newMapTemplates(map[string]string{
		RecipeTemplate: "<title>{{.title}}</title>\n{{.body}}",
		IndexTemplate:  "<ul>\n{{.body}}\n</ul>",
	})
}

// ---------------------------------------------------------------------------
// Filesystem helpers
// ---------------------------------------------------------------------------

// writeTree creates files under root from a map of slash-separated relative
// paths to contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
}

// readTree returns every regular file under root keyed by slash-separated
// relative path.
func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("reading tree: %v", err)
	}
	return out
}

func readFile(t *testing.T, p string) string {
	t.Helper()
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("reading %s: %v", p, err)
	}
	return string(data)
}

func mustRecipePath(t *testing.T, sourceRoot, destRoot, dir, file string) RecipePath {
	t.Helper()
	p, err := NewRecipePath(sourceRoot, destRoot, dir, file)
	if err != nil {
		t.Fatalf("NewRecipePath(%q, %q, %q, %q): %v", sourceRoot, destRoot, dir, file, err)
	}
	return p
}
