package main

import (
	"errors"
	"os"

	recipes "github.com/erosson/recipes2"
	"github.com/erosson/recipes2/internal/assets"
	"github.com/erosson/recipes2/internal/config"
	"github.com/erosson/recipes2/internal/hints"
)

// defaultConfigName is the config name suggested in hints.
const defaultConfigName = "recipes"

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(defaultConfigName))
	case errors.Is(err, recipes.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, recipes.ErrHighlightStyle):
		return hints.ForHighlightStyle(recipes.HighlightStyles())
	case errors.Is(err, assets.ErrTemplateNotFound), errors.Is(err, assets.ErrInvalidBasePath):
		return hints.ForTemplates()
	case errors.Is(err, recipes.ErrAssetCopy) && errors.Is(err, os.ErrNotExist):
		return hints.ForPublicDir()
	case errors.Is(err, recipes.ErrPath):
		return hints.ForLayout()
	case errors.Is(err, recipes.ErrFilesystemWrite):
		return hints.ForOutputDirectory()
	}
	return ""
}
