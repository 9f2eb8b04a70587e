package main

import (
	"context"
	"fmt"
	"log/slog"

	recipes "github.com/erosson/recipes2"
	"github.com/erosson/recipes2/internal/config"
	"github.com/erosson/recipes2/internal/logfields"
)

// runBuild resolves configuration and builds the site.
func runBuild(ctx context.Context, flags *buildFlags, env *Environment, logger *slog.Logger) error {
	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	if flags.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("rendering config: %w", err)
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	builder, err := recipes.NewBuilder(builderOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	layout := recipes.Layout{
		SourceDir:   cfg.Source,
		DestDir:     cfg.Dest,
		PublicDir:   cfg.Public,
		TemplateDir: cfg.Templates,
	}
	logger.Debug("starting build",
		logfields.Path(layout.SourceDir),
		logfields.Dest(layout.DestDir),
		logfields.Template(layout.TemplateDir),
	)

	result, err := builder.Build(ctx, layout)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Built %d recipes into %s (%dms)\n",
			len(result.Recipes), layout.DestDir, result.Duration.Milliseconds())
	}
	return nil
}

// resolveConfig layers defaults, config file, environment and flags, then
// validates the result.
func resolveConfig(flags *buildFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Directory flags count when given, even empty: --public "" disables the
// public copy.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	changed := flags.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if changed("source") {
		cfg.Source = flags.dirs.source
	}
	if changed("dest") {
		cfg.Dest = flags.dirs.dest
	}
	if changed("public") {
		cfg.Public = flags.dirs.public
	}
	if changed("templates") {
		cfg.Templates = flags.dirs.templates
	}

	if flags.markdown.highlightStyle != "" {
		cfg.Markdown.Highlight.Style = flags.markdown.highlightStyle
	}
	if flags.markdown.highlightCSS != "" {
		cfg.Markdown.Highlight.CSSFile = flags.markdown.highlightCSS
	}
	if flags.markdown.noHighlight {
		cfg.Markdown.Highlight.Style = config.HighlightStyleNone
	}
	if flags.markdown.hardWraps {
		cfg.Markdown.HardWraps = true
	}
	if flags.markdown.noRewriteLinks {
		rewrite := false
		cfg.Markdown.RewriteLinks = &rewrite
	}
}

// builderOptions translates config into Builder options.
func builderOptions(cfg *config.Config, logger *slog.Logger) []recipes.Option {
	md := recipes.MarkdownOptions{
		HardWraps:    cfg.Markdown.HardWraps,
		RewriteLinks: cfg.Markdown.RewriteLinksEnabled(),
	}
	cssFile := ""
	if cfg.Markdown.Highlight.HighlightEnabled() {
		md.HighlightStyle = cfg.Markdown.Highlight.Style
		cssFile = cfg.Markdown.Highlight.CSSFile
	}

	return []recipes.Option{
		recipes.WithLogger(logger),
		recipes.WithMarkdownOptions(md),
		recipes.WithHighlightStylesheet(cssFile),
	}
}
