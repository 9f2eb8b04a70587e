package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownHighlightStyle indicates the chroma style name is not registered.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// HighlightCSS returns the stylesheet for code blocks rendered with CSS
// classes in the named chroma style.
func HighlightCSS(styleName string) (string, error) {
	style, ok := styles.Registry[styleName]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, styleName)
	}

	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing %s stylesheet: %w", styleName, err)
	}
	return buf.String(), nil
}

// HighlightStyles lists the registered chroma style names in sorted order.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
