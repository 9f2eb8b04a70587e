package recipes

import (
	"fmt"
	"html"
	"strings"

	"github.com/erosson/recipes2/internal/fileutil"
	"github.com/erosson/recipes2/internal/logfields"
)

// IndexFileName is the site index written at the destination root.
const IndexFileName = "index.html"

// RenderIndex writes the site index to destFile, one link per entry in the
// order given.
func (b *Builder) RenderIndex(destFile string, entries []TitleEntry, templates TemplateSource) error {
	tmpl, err := loadTemplate(templates, IndexTemplate)
	if err != nil {
		return err
	}

	page, err := tmpl.Execute(map[string]string{"body": IndexBody(entries)})
	if err != nil {
		return err
	}

	if err := fileutil.WriteFile(destFile, page); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFilesystemWrite, destFile, err)
	}

	b.logger.Debug("rendered index", logfields.Dest(destFile), logfields.Count(len(entries)))
	return nil
}

// IndexBody formats entries as newline-separated list items. The href is the
// percent-encoded web path and the link text is the HTML-escaped title.
func IndexBody(entries []TitleEntry) string {
	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = fmt.Sprintf(`<li><a href="%s">%s</a></li>`, e.Path.Href(), html.EscapeString(e.Title))
	}
	return strings.Join(items, "\n")
}
