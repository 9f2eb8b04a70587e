// Package pipeline compiles recipe Markdown into a title and an HTML body.
//
// The stages are:
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Parsing via Goldmark (GFM, footnotes, frontmatter, heading IDs)
//   - Title extraction (frontmatter title, else the first level-1 heading)
//   - HTML rendering with chroma syntax highlighting classes
//   - Post-processing (<mark> tags, .md links rewritten to .html)
//
// Page assembly and file output belong to the root recipes package; this
// package never touches the filesystem.
package pipeline
