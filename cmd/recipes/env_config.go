package main

import (
	"log/slog"
	"strings"

	"github.com/erosson/recipes2/internal/config"
)

const envPrefix = "RECIPES_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath     string // RECIPES_CONFIG: config file name or path
	Source         string // RECIPES_SOURCE
	Dest           string // RECIPES_DEST
	Public         string // RECIPES_PUBLIC
	Templates      string // RECIPES_TEMPLATES
	HighlightStyle string // RECIPES_HIGHLIGHT_STYLE
}

// knownEnvVars lists valid RECIPES_* environment variables.
var knownEnvVars = map[string]bool{
	"RECIPES_CONFIG":          true,
	"RECIPES_SOURCE":          true,
	"RECIPES_DEST":            true,
	"RECIPES_PUBLIC":          true,
	"RECIPES_TEMPLATES":       true,
	"RECIPES_HIGHLIGHT_STYLE": true,
}

// loadEnvConfig reads the RECIPES_* variables through getenv.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath:     getenv("RECIPES_CONFIG"),
		Source:         getenv("RECIPES_SOURCE"),
		Dest:           getenv("RECIPES_DEST"),
		Public:         getenv("RECIPES_PUBLIC"),
		Templates:      getenv("RECIPES_TEMPLATES"),
		HighlightStyle: getenv("RECIPES_HIGHLIGHT_STYLE"),
	}
}

// warnUnknownEnvVars logs a warning for each unrecognized RECIPES_* variable.
// Helps catch typos like RECIPES_DESTINATION.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", slog.String("name", name))
		}
	}
}

// applyEnvConfig overrides config values with set environment variables.
// Flags are merged afterwards, giving: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Source != "" {
		cfg.Source = env.Source
	}
	if env.Dest != "" {
		cfg.Dest = env.Dest
	}
	if env.Public != "" {
		cfg.Public = env.Public
	}
	if env.Templates != "" {
		cfg.Templates = env.Templates
	}
	if env.HighlightStyle != "" {
		cfg.Markdown.Highlight.Style = env.HighlightStyle
	}
}
