package recipes

import (
	"errors"

	"github.com/erosson/recipes2/internal/pipeline"
)

// Sentinel errors for build operations. Each is wrapped together with the
// underlying cause, so both satisfy errors.Is.
var (
	ErrPath            = errors.New("invalid path")
	ErrDiscovery       = errors.New("document discovery failed")
	ErrTemplateLoad    = errors.New("template load failed")
	ErrTemplateExecute = errors.New("template substitution failed")
	ErrDocumentRead    = errors.New("document read failed")
	ErrDocumentCompile = errors.New("document compile failed")
	ErrFilesystemWrite = errors.New("filesystem write failed")
	ErrAssetCopy       = errors.New("public asset copy failed")

	// ErrHighlightStyle indicates an unregistered chroma style name.
	ErrHighlightStyle = pipeline.ErrUnknownHighlightStyle
)

// ErrMissingTitle indicates a recipe with neither a frontmatter title nor a
// level-1 heading. It is wrapped in ErrDocumentCompile.
var ErrMissingTitle = pipeline.ErrMissingTitle
