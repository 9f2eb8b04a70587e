package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// errUsage marks command-line mistakes.
var errUsage = errors.New("invalid usage")

// commonFlags holds output verbosity and config selection.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// dirFlags holds the build layout.
type dirFlags struct {
	source    string
	dest      string
	public    string
	templates string
}

// markdownFlags holds rendering options.
type markdownFlags struct {
	highlightStyle string
	highlightCSS   string
	noHighlight    bool
	hardWraps      bool
	noRewriteLinks bool
}

// buildFlags holds all flags of the recipes command.
type buildFlags struct {
	common      commonFlags
	dirs        dirFlags
	markdown    markdownFlags
	printConfig bool
	version     bool

	// changed reports whether a flag was given on the command line.
	changed func(name string) bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-recipe progress")
}

func addDirFlags(fs *flag.FlagSet, f *dirFlags) {
	fs.StringVarP(&f.source, "source", "s", "", "recipe source directory")
	fs.StringVarP(&f.dest, "dest", "o", "", "output directory (removed and rebuilt)")
	fs.StringVarP(&f.public, "public", "p", "", "static files copied into the output")
	fs.StringVarP(&f.templates, "templates", "t", "", "directory with recipe.html and index.html")
}

func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for code blocks")
	fs.StringVar(&f.highlightCSS, "highlight-css", "", "highlight stylesheet file name")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render single newlines as line breaks")
	fs.BoolVar(&f.noRewriteLinks, "no-rewrite-links", false, "keep links to .md files as written")
}

// parseFlags parses args (args[0] is the program name).
func parseFlags(args []string) (*buildFlags, error) {
	f := &buildFlags{}
	fs := flag.NewFlagSet("recipes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	addCommonFlags(fs, &f.common)
	addDirFlags(fs, &f.dirs)
	addMarkdownFlags(fs, &f.markdown)
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments: %s", errUsage, strings.Join(fs.Args(), " "))
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", errUsage)
	}

	f.changed = fs.Changed
	return f, nil
}
