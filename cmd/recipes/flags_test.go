package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("no flags", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"recipes"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.changed("source") || f.changed("public") {
			t.Error("no flag should be reported as changed")
		}
	})

	t.Run("short and long forms", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"recipes",
			"-s", "src", "--dest", "out", "-p", "static", "-t", "tmpl",
			"-c", "site.yaml", "-v",
			"--highlight-style", "monokai", "--highlight-css", "code.css",
			"--hard-wraps", "--no-rewrite-links",
		})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.dirs.source != "src" || f.dirs.dest != "out" || f.dirs.public != "static" || f.dirs.templates != "tmpl" {
			t.Errorf("dirs = %+v", f.dirs)
		}
		if f.common.config != "site.yaml" || !f.common.verbose {
			t.Errorf("common = %+v", f.common)
		}
		if f.markdown.highlightStyle != "monokai" || f.markdown.highlightCSS != "code.css" {
			t.Errorf("markdown = %+v", f.markdown)
		}
		if !f.markdown.hardWraps || !f.markdown.noRewriteLinks {
			t.Errorf("markdown = %+v", f.markdown)
		}
	})

	t.Run("empty value counts as changed", func(t *testing.T) {
		t.Parallel()

		f, err := parseFlags([]string{"recipes", "--public="})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if !f.changed("public") || f.dirs.public != "" {
			t.Errorf("public changed=%v value=%q", f.changed("public"), f.dirs.public)
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		_, err := parseFlags([]string{"recipes", "--help"})
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want flag.ErrHelp", err)
		}
	})

	errorCases := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"recipes", "--bogus"}},
		{"missing value", []string{"recipes", "--source"}},
		{"positional argument", []string{"recipes", "extra"}},
		{"quiet and verbose", []string{"recipes", "-q", "-v"}},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseFlags(tt.args)
			if !errors.Is(err, errUsage) {
				t.Errorf("error = %v, want errUsage", err)
			}
		})
	}
}
