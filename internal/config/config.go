// Package config loads the YAML site configuration (recipes.yaml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/erosson/recipes2/internal/fileutil"
	"github.com/erosson/recipes2/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Defaults match the directory names the site has always used.
const (
	DefaultSourceDir      = "recipes"
	DefaultDestDir        = "dist"
	DefaultPublicDir      = "public"
	DefaultHighlightStyle = "github"
	DefaultHighlightCSS   = "highlight.css"

	// HighlightStyleNone disables syntax highlighting and its stylesheet.
	HighlightStyleNone = "none"
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxStyleNameLength = 64
)

// appDirName is the directory under the user config dir searched for named configs.
const appDirName = "recipes2"

// Config holds all configuration for a site build.
type Config struct {
	Source    string         `yaml:"source"`    // Markdown recipe tree
	Dest      string         `yaml:"dest"`      // Published output; wiped on every build
	Public    string         `yaml:"public"`    // Static assets copied first ("" = none)
	Templates string         `yaml:"templates"` // recipe.html/index.html directory ("" = built-in)
	Markdown  MarkdownConfig `yaml:"markdown"`
}

// MarkdownConfig defines recipe rendering options.
type MarkdownConfig struct {
	HardWraps    bool            `yaml:"hardWraps"`
	RewriteLinks *bool           `yaml:"rewriteLinks"` // nil = true
	Highlight    HighlightConfig `yaml:"highlight"`
}

// HighlightConfig defines fenced code block highlighting.
type HighlightConfig struct {
	Style   string `yaml:"style"`   // chroma style name, or "none"
	CSSFile string `yaml:"cssFile"` // stylesheet written at the site root
}

// RewriteLinksEnabled reports whether .md links are rewritten (default true).
func (m MarkdownConfig) RewriteLinksEnabled() bool {
	return m.RewriteLinks == nil || *m.RewriteLinks
}

// HighlightEnabled reports whether code blocks are highlighted.
func (h HighlightConfig) HighlightEnabled() bool {
	return h.Style != HighlightStyleNone
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Source: DefaultSourceDir,
		Dest:   DefaultDestDir,
		Public: DefaultPublicDir,
		Markdown: MarkdownConfig{
			Highlight: HighlightConfig{
				Style:   DefaultHighlightStyle,
				CSSFile: DefaultHighlightCSS,
			},
		},
	}
}

// applyDefaults fills fields a config file left empty.
// Public and Templates stay empty: empty is meaningful for both.
func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = DefaultSourceDir
	}
	if c.Dest == "" {
		c.Dest = DefaultDestDir
	}
	if c.Markdown.Highlight.Style == "" {
		c.Markdown.Highlight.Style = DefaultHighlightStyle
	}
	if c.Markdown.Highlight.CSSFile == "" {
		c.Markdown.Highlight.CSSFile = DefaultHighlightCSS
	}
}

// Validate checks required fields and limits. Directory overlap is checked
// by the build itself, which owns the destination tree.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("%w: source: required", ErrInvalidConfig)
	}
	if c.Dest == "" {
		return fmt.Errorf("%w: dest: required", ErrInvalidConfig)
	}

	for _, f := range []struct{ name, value string }{
		{"source", c.Source},
		{"dest", c.Dest},
		{"public", c.Public},
		{"templates", c.Templates},
		{"markdown.highlight.cssFile", c.Markdown.Highlight.CSSFile},
	} {
		if err := validateFieldLength(f.name, f.value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("markdown.highlight.style", c.Markdown.Highlight.Style, MaxStyleNameLength); err != nil {
		return err
	}

	if c.Markdown.Highlight.HighlightEnabled() {
		css := c.Markdown.Highlight.CSSFile
		if css == "" {
			return fmt.Errorf("%w: markdown.highlight.cssFile: required when highlighting is enabled", ErrInvalidConfig)
		}
		if fileutil.IsFilePath(css) || css == "." || css == ".." {
			return fmt.Errorf("%w: markdown.highlight.cssFile: must be a file name, got %q", ErrInvalidConfig, css)
		}
		if !strings.HasSuffix(css, ".css") {
			return fmt.Errorf("%w: markdown.highlight.cssFile: must end in .css, got %q", ErrInvalidConfig, css)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// SearchPaths lists where a config name is looked up, in order.
// Extensions: .yaml, .yml. Locations: current directory, {UserConfigDir}/recipes2/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
