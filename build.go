package recipes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/erosson/recipes2/internal/fileutil"
	"github.com/erosson/recipes2/internal/logfields"
)

// Layout names the directories of one build.
type Layout struct {
	SourceDir   string // Markdown documents
	DestDir     string // output tree, removed at the start of every build
	PublicDir   string // static files copied into DestDir first; empty for none
	TemplateDir string // recipe.html and index.html; empty for the built-ins
}

// Validate checks that the build cannot destroy its own inputs: DestDir is
// removed, so it must not be, contain, or sit inside any input directory.
func (l Layout) Validate() error {
	if l.SourceDir == "" {
		return fmt.Errorf("%w: source directory is required", ErrPath)
	}
	if l.DestDir == "" {
		return fmt.Errorf("%w: destination directory is required", ErrPath)
	}

	inputs := []struct{ name, dir string }{
		{"source", l.SourceDir},
		{"public", l.PublicDir},
		{"template", l.TemplateDir},
	}
	for _, in := range inputs {
		if in.dir == "" {
			continue
		}
		if err := checkDisjoint(l.DestDir, in.name, in.dir); err != nil {
			return err
		}
	}
	return nil
}

func checkDisjoint(dest, name, dir string) error {
	destInside, err := fileutil.IsWithin(dest, dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPath, err)
	}
	if destInside {
		return fmt.Errorf("%w: destination %s is inside %s directory %s", ErrPath, dest, name, dir)
	}
	dirInside, err := fileutil.IsWithin(dir, dest)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPath, err)
	}
	if dirInside {
		return fmt.Errorf("%w: %s directory %s is inside destination %s", ErrPath, name, dir, dest)
	}
	return nil
}

// Result summarizes a successful build.
type Result struct {
	Recipes   []TitleEntry
	IndexFile string
	Duration  time.Duration
}

// Build runs a full clean rebuild of layout.DestDir. Any error aborts the
// build; the destination may then be partially written and is rebuilt from
// scratch next time.
func (b *Builder) Build(ctx context.Context, layout Layout) (*Result, error) {
	start := time.Now()

	if err := layout.Validate(); err != nil {
		return nil, err
	}

	// Inputs are checked before the destination is removed so a bad
	// template or public directory leaves the previous site in place.
	templates, err := NewTemplateSource(layout.TemplateDir)
	if err != nil {
		return nil, err
	}
	if layout.PublicDir != "" && !fileutil.DirExists(layout.PublicDir) {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetCopy, layout.PublicDir, os.ErrNotExist)
	}

	if err := b.prepareDest(layout); err != nil {
		return nil, err
	}

	stageStart := time.Now()
	paths, err := Drain(Discover(layout.SourceDir, layout.DestDir))
	if err != nil {
		return nil, err
	}
	b.logStage("discover", len(paths), stageStart)

	stageStart = time.Now()
	entries, err := Drain(b.RenderRecipes(ctx, paths, templates))
	if err != nil {
		return nil, err
	}
	b.logStage("render", len(entries), stageStart)

	indexFile := filepath.Join(layout.DestDir, IndexFileName)
	if err := b.RenderIndex(indexFile, entries, templates); err != nil {
		return nil, err
	}

	return &Result{
		Recipes:   entries,
		IndexFile: indexFile,
		Duration:  time.Since(start),
	}, nil
}

// prepareDest removes the destination, copies the public tree into it and
// writes the highlight stylesheet.
func (b *Builder) prepareDest(layout Layout) error {
	dest := layout.DestDir

	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("%w: removing %s: %w", ErrFilesystemWrite, dest, err)
	}

	if layout.PublicDir == "" {
		if err := os.MkdirAll(dest, fileutil.DirPermissions); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFilesystemWrite, dest, err)
		}
	} else {
		if err := fileutil.CopyTree(dest, layout.PublicDir); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrAssetCopy, layout.PublicDir, err)
		}
		b.logger.Debug("copied public directory", logfields.Path(layout.PublicDir), logfields.Dest(dest))
	}

	if b.highlightCSS != "" {
		cssPath := filepath.Join(dest, b.cssFile)
		if err := fileutil.WriteFile(cssPath, b.highlightCSS); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFilesystemWrite, cssPath, err)
		}
		b.logger.Debug("wrote highlight stylesheet", logfields.Dest(cssPath))
	}

	return nil
}

func (b *Builder) logStage(stage string, count int, start time.Time) {
	b.logger.Info("stage complete",
		logfields.Stage(stage),
		logfields.Count(count),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000),
	)
}

// Build runs a single build with a new Builder.
func Build(ctx context.Context, layout Layout, opts ...Option) (*Result, error) {
	b, err := NewBuilder(opts...)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx, layout)
}
