package recipes

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/erosson/recipes2/internal/assets"
)

// Template names resolved through a TemplateSource.
const (
	RecipeTemplate = assets.RecipeTemplateName
	IndexTemplate  = assets.IndexTemplateName
)

// TemplateSource supplies raw template text by name.
type TemplateSource interface {
	LoadTemplate(name string) (string, error)
}

// NewTemplateSource returns a source reading <name>.html from dir, or the
// built-in templates when dir is empty. A configured directory must hold
// every template; there is no fallback to the built-ins.
func NewTemplateSource(dir string) (TemplateSource, error) {
	r, err := assets.NewResolver(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateLoad, err)
	}
	return r, nil
}

// Template is a parsed page template. Placeholders are bound by name from a
// string map; a placeholder with no binding is an ErrTemplateExecute error.
type Template struct {
	name string
	tmpl *template.Template
}

// ParseTemplate parses src as a text/template.
func ParseTemplate(name, src string) (*Template, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateLoad, name, err)
	}
	return &Template{name: name, tmpl: t}, nil
}

// Name returns the template name.
func (t *Template) Name() string {
	return t.name
}

// Execute substitutes bindings into the template.
func (t *Template) Execute(bindings map[string]string) (string, error) {
	var buf strings.Builder
	if err := t.tmpl.Execute(&buf, bindings); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrTemplateExecute, t.name, err)
	}
	return buf.String(), nil
}

// loadTemplate fetches and parses one named template.
func loadTemplate(src TemplateSource, name string) (*Template, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %s: no template source", ErrTemplateLoad, name)
	}
	text, err := src.LoadTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateLoad, name, err)
	}
	return ParseTemplate(name, text)
}
