package recipes

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// DocumentExt is the extension of source documents.
const DocumentExt = ".md"

// PageExt is the extension of generated pages.
const PageExt = ".html"

// RecipePath locates one discovered document. All derived paths are computed
// on demand from the four fields set at construction.
type RecipePath struct {
	sourceRoot string
	destRoot   string
	dir        string // walked directory, begins with sourceRoot
	file       string
}

// NewRecipePath creates a RecipePath for file inside dir.
// dir must be sourceRoot itself or lie beneath it on a segment boundary;
// otherwise ErrPath is returned. Roots and dir are cleaned first.
func NewRecipePath(sourceRoot, destRoot, dir, file string) (RecipePath, error) {
	if sourceRoot == "" || destRoot == "" {
		return RecipePath{}, fmt.Errorf("%w: source and destination roots are required", ErrPath)
	}
	if file == "" || strings.ContainsAny(file, `/\`) {
		return RecipePath{}, fmt.Errorf("%w: invalid document file name %q", ErrPath, file)
	}

	p := RecipePath{
		sourceRoot: filepath.Clean(sourceRoot),
		destRoot:   filepath.Clean(destRoot),
		dir:        filepath.Clean(dir),
		file:       file,
	}
	if _, ok := p.relDir(); !ok {
		return RecipePath{}, fmt.Errorf("%w: document path not rooted at source root: %s not under %s",
			ErrPath, p.SourceFile(), p.sourceRoot)
	}
	return p, nil
}

// relDir returns dir with the leading source root removed ("" at the root).
func (p RecipePath) relDir() (string, bool) {
	if p.dir == p.sourceRoot {
		return "", true
	}
	if p.sourceRoot == "." {
		if filepath.IsAbs(p.dir) || p.dir == ".." || strings.HasPrefix(p.dir, ".."+string(filepath.Separator)) {
			return "", false
		}
		return p.dir, true
	}
	prefix := p.sourceRoot
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	rel, ok := strings.CutPrefix(p.dir, prefix)
	return rel, ok
}

func (p RecipePath) rel() string {
	rel, _ := p.relDir()
	return rel
}

// SourceRoot returns the cleaned source root.
func (p RecipePath) SourceRoot() string { return p.sourceRoot }

// DestRoot returns the cleaned destination root.
func (p RecipePath) DestRoot() string { return p.destRoot }

// Dir returns the directory holding the document.
func (p RecipePath) Dir() string { return p.dir }

// FileName returns the document's file name, extension included.
func (p RecipePath) FileName() string { return p.file }

// BaseName returns the file name without its extension. A name that is only
// an extension (".md") is kept whole.
func (p RecipePath) BaseName() string {
	stem := strings.TrimSuffix(p.file, filepath.Ext(p.file))
	if strings.Trim(stem, ".") == "" {
		return p.file
	}
	return stem
}

// SourceFile returns the path of the source document.
func (p RecipePath) SourceFile() string {
	return filepath.Join(p.dir, p.file)
}

// DestDir returns the output directory: dir with the source root replaced by
// the destination root.
func (p RecipePath) DestDir() string {
	return filepath.Join(p.destRoot, p.rel())
}

// DestFile returns the output page path.
func (p RecipePath) DestFile() string {
	return filepath.Join(p.DestDir(), p.BaseName()+PageExt)
}

// WebDir returns the page's directory in the published URL space. It always
// starts with "/" and uses forward slashes.
func (p RecipePath) WebDir() string {
	return path.Join("/", filepath.ToSlash(p.rel()))
}

// WebFile returns the page's path in the published URL space.
func (p RecipePath) WebFile() string {
	return path.Join(p.WebDir(), p.BaseName()+PageExt)
}

// Href returns WebFile percent-encoded for use in an href attribute.
func (p RecipePath) Href() string {
	return escapePath(p.WebFile())
}

// String returns the source file path.
func (p RecipePath) String() string {
	return p.SourceFile()
}

// escapePath percent-encodes every byte except unreserved characters and "/".
// url.PathEscape keeps sub-delimiters such as "&" and "'" literal, which are
// unsafe to leave raw in markup.
func escapePath(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func shouldKeep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~', '/':
		return true
	}
	return false
}
