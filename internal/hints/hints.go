// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// userConfigMarker identifies the per-user config location in search paths.
var userConfigMarker = filepath.Join(".config", "recipes2")

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the per-user config file.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/recipes.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, userConfigMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingTitle returns hints for recipes without a title.
func ForMissingTitle() string {
	return format("start the recipe with a \"# Title\" heading or add \"title:\" frontmatter")
}

// ForHighlightStyle returns hints for unknown highlight styles.
func ForHighlightStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplates returns hints for template directory errors.
func ForTemplates() string {
	return formatHints([]string{
		"the template directory must contain recipe.html and index.html",
		"omit --templates to use the built-in templates",
	})
}

// ForPublicDir returns hints for a missing public directory.
func ForPublicDir() string {
	return format("create the public directory or pass --public= to build without one")
}

// ForLayout returns hints for overlapping build directories.
func ForLayout() string {
	return format("the output directory is deleted on every build; keep it apart from the input directories")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
