package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged (no WithUnsafe needed) and are turned
// into <mark> tags after rendering.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)

	markReplacer      = strings.NewReplacer(MarkStartPlaceholder, "<mark>", MarkEndPlaceholder, "</mark>")
	markStripReplacer = strings.NewReplacer(MarkStartPlaceholder, "", MarkEndPlaceholder, "")
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before CommonMark parsing.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown normalizes line endings, converts ==highlight== spans to
// placeholders and compresses runs of blank lines.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightMarks(content)
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return content
}

// highlightMarks wraps ==text== spans in placeholders, leaving fenced code
// blocks, code spans and setext underlines as written.
func highlightMarks(content string) string {
	if !strings.Contains(content, "==") {
		return content
	}

	lines := strings.Split(content, "\n")
	var fence string
	for i, line := range lines {
		if fence != "" {
			if closesFence(line, fence) {
				fence = ""
			}
			continue
		}
		if f := openingFence(line); f != "" {
			fence = f
			continue
		}
		if strings.Trim(line, "= ") == "" {
			continue // setext underline
		}
		lines[i] = highlightLine(line)
	}
	return strings.Join(lines, "\n")
}

// highlightLine replaces ==text== in the parts of one line outside code
// spans. A highlight cannot span a code span.
func highlightLine(line string) string {
	if !strings.Contains(line, "==") {
		return line
	}

	var b strings.Builder
	last := 0
	for _, sp := range codeSpans(line) {
		b.WriteString(replaceMarks(line[last:sp[0]]))
		b.WriteString(line[sp[0]:sp[1]])
		last = sp[1]
	}
	b.WriteString(replaceMarks(line[last:]))
	return b.String()
}

func replaceMarks(s string) string {
	return highlightPattern.ReplaceAllString(s, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

// codeSpans returns the [start, end) byte ranges of the code spans in line:
// a backtick run closed by the next run of the same length.
func codeSpans(line string) [][2]int {
	var spans [][2]int
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}
		n := backtickRun(line, i)
		end := closingRun(line, i+n, n)
		if end == -1 {
			i += n
			continue
		}
		spans = append(spans, [2]int{i, end + n})
		i = end + n
	}
	return spans
}

func backtickRun(s string, i int) int {
	n := 0
	for i+n < len(s) && s[i+n] == '`' {
		n++
	}
	return n
}

// closingRun returns the index of the next backtick run of exactly n
// characters at or after from, or -1.
func closingRun(s string, from, n int) int {
	for j := from; j < len(s); {
		if s[j] != '`' {
			j++
			continue
		}
		m := backtickRun(s, j)
		if m == n {
			return j
		}
		j += m
	}
	return -1
}

// openingFence returns the fence marker (``` or ~~~, possibly longer) that
// opens a fenced code block on line, or "".
func openingFence(line string) string {
	trimmed, ok := trimFenceIndent(line)
	if !ok {
		return ""
	}
	for _, c := range []byte{'`', '~'} {
		n := 0
		for n < len(trimmed) && trimmed[n] == c {
			n++
		}
		if n < 3 {
			continue
		}
		if c == '`' && strings.Contains(trimmed[n:], "`") {
			return ""
		}
		return trimmed[:n]
	}
	return ""
}

// closesFence reports whether line closes a block opened with fence: the same
// character repeated at least as often, followed only by spaces.
func closesFence(line, fence string) bool {
	trimmed, ok := trimFenceIndent(line)
	if !ok {
		return false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == fence[0] {
		n++
	}
	return n >= len(fence) && strings.TrimSpace(trimmed[n:]) == ""
}

// trimFenceIndent strips up to three leading spaces. Four or more make an
// indented line that cannot open or close a fence.
func trimFenceIndent(line string) (string, bool) {
	i := 0
	for i < len(line) && i < 4 && line[i] == ' ' {
		i++
	}
	if i == 4 {
		return "", false
	}
	return line[i:], true
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return markReplacer.Replace(content)
}

// stripMarkPlaceholders removes placeholder markers from plain text such as titles.
func stripMarkPlaceholders(content string) string {
	return markStripReplacer.Replace(content)
}
