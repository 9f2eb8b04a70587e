package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: recipes [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a static recipe site: every *.md file under the source directory")
	fmt.Fprintln(w, "becomes an HTML page, and index.html links them all.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Directories:")
	fmt.Fprintln(w, "  -s, --source <dir>        Recipe sources (default \"recipes\")")
	fmt.Fprintln(w, "  -o, --dest <dir>          Output, removed and rebuilt (default \"dist\")")
	fmt.Fprintln(w, "  -p, --public <dir>        Static files copied first (default \"public\", \"\" = none)")
	fmt.Fprintln(w, "  -t, --templates <dir>     recipe.html and index.html (default: built-in)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style for code blocks (default \"github\")")
	fmt.Fprintln(w, "      --highlight-css <f>   Stylesheet written at the output root (default \"highlight.css\")")
	fmt.Fprintln(w, "      --no-highlight        Disable syntax highlighting")
	fmt.Fprintln(w, "      --hard-wraps          Render single newlines as line breaks")
	fmt.Fprintln(w, "      --no-rewrite-links    Keep links to .md files as written")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --print-config        Print the effective config and exit")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-recipe progress")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RECIPES_CONFIG, RECIPES_SOURCE, RECIPES_DEST, RECIPES_PUBLIC,")
	fmt.Fprintln(w, "  RECIPES_TEMPLATES, RECIPES_HIGHLIGHT_STYLE")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general error, 2 usage or config, 3 I/O, 4 recipe compile error")
}
