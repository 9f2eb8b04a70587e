package main

import (
	"errors"
	"os"

	recipes "github.com/erosson/recipes2"
	"github.com/erosson/recipes2/internal/config"
)

// Exit codes for the recipes CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error, including interruption
	ExitUsage   = 2 // Invalid flags, config, layout, or templates
	ExitIO      = 3 // Unreadable input, unwritable output
	ExitCompile = 4 // A recipe failed to compile
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Compile errors (exit 4)
	if errors.Is(err, recipes.ErrDocumentCompile) {
		return ExitCompile
	}

	// Usage/config/validation errors (exit 2).
	// Checked before I/O: a missing template is a setup mistake.
	if errors.Is(err, errUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, recipes.ErrPath) ||
		errors.Is(err, recipes.ErrTemplateLoad) ||
		errors.Is(err, recipes.ErrTemplateExecute) ||
		errors.Is(err, recipes.ErrHighlightStyle) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, recipes.ErrDiscovery) ||
		errors.Is(err, recipes.ErrDocumentRead) ||
		errors.Is(err, recipes.ErrFilesystemWrite) ||
		errors.Is(err, recipes.ErrAssetCopy) {
		return ExitIO
	}

	return ExitGeneral
}
