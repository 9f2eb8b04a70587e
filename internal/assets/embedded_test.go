package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		template     string
		wantContains []string
		wantErr      error
	}{
		{
			name:         "recipe template",
			template:     RecipeTemplateName,
			wantContains: []string{"{{.title | html}}", "{{.body}}", "{{with .highlightCSS}}"},
		},
		{
			name:         "index template",
			template:     IndexTemplateName,
			wantContains: []string{"<ul>", "{{.body}}"},
		},
		{
			name:     "unknown template",
			template: "missing",
			wantErr:  ErrTemplateNotFound,
		},
		{
			name:     "traversal rejected",
			template: "../recipe",
			wantErr:  ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.template)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("template %q missing %q", tt.template, want)
				}
			}
		})
	}
}

func TestEmbeddedIndexTemplate_NoTitlePlaceholder(t *testing.T) {
	t.Parallel()

	// The index is rendered with only a body binding.
	got, err := NewEmbeddedLoader().LoadTemplate(IndexTemplateName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, ".title") {
		t.Error("index template must not reference title")
	}
}
