package pipeline

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	sourceExt = ".md"
	pageExt   = ".html"
)

// RewriteMarkdownLinks points relative links at recipe sources to the pages
// generated from them: href="../soups/tomato.md#method" becomes
// href="../soups/tomato.html#method".
//
// Left untouched:
//   - URLs with a scheme or host (http:, mailto:, //cdn...)
//   - fragment-only links
//   - links whose path does not end in .md
func RewriteMarkdownLinks(fragment string) (string, error) {
	if !strings.Contains(fragment, sourceExt) {
		return fragment, nil
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	changed := false
	for _, n := range nodes {
		if rewriteNode(n) {
			changed = true
		}
	}
	if !changed {
		return fragment, nil
	}

	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode rewrites anchors under n and reports whether anything changed.
func rewriteNode(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rewritten, ok := rewriteHref(attr.Val); ok {
				n.Attr[i].Val = rewritten
				changed = true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteNode(c) {
			changed = true
		}
	}
	return changed
}

// rewriteHref swaps a trailing .md in the path part of href for .html,
// keeping any query or fragment as written.
func rewriteHref(href string) (string, bool) {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") {
		return "", false
	}
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}

	end := strings.IndexAny(href, "?#")
	if end == -1 {
		end = len(href)
	}
	path, rest := href[:end], href[end:]
	if !strings.HasSuffix(path, sourceExt) || path == sourceExt || strings.HasSuffix(path, "/"+sourceExt) {
		return "", false
	}

	return strings.TrimSuffix(path, sourceExt) + pageExt + rest, true
}
