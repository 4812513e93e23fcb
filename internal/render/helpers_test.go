package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/alnah/go-sheet2html/internal/anchor"
	"github.com/alnah/go-sheet2html/internal/model"
	"github.com/alnah/go-sheet2html/internal/sheet"
)

var fixedTime = time.Date(2024, time.May, 1, 14, 30, 0, 0, time.UTC)

// row builds a sheet row from chapter, section, order, type, lang, body.
func row(chapter, section, order, typ, lang, body string) sheet.Row {
	return sheet.Row{Chapter: chapter, Section: section, Order: order, Type: typ, Lang: lang, Body: body}
}

// buildPage normalizes rows into a per-source page.
func buildPage(t *testing.T, rows ...sheet.Row) Page {
	t.Helper()
	for i := range rows {
		rows[i].Line = i + 2
	}
	items, _, err := model.Normalize(rows)
	if err != nil {
		t.Fatalf("Normalize() unexpected error: %v", err)
	}
	doc, toc := model.Build(items, anchor.NewRegistry())
	return Page{
		Title:     "Handbook",
		Document:  doc,
		TOC:       toc,
		Paths:     PerSourcePaths(),
		Generated: fixedTime,
	}
}

// renderPage renders p with a renderer built from opts.
func renderPage(t *testing.T, p Page, opts ...Option) string {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	out, err := r.Render(context.Background(), p)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	return string(out)
}

// parseHTML parses a rendered page.
func parseHTML(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("html.Parse() unexpected error: %v", err)
	}
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// walk calls fn for every element node below n in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// find returns the first element matching pred, or nil.
func find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(n, func(el *html.Node) {
		if found == nil && pred(el) {
			found = el
		}
	})
	return found
}

// textContent concatenates the text below n.
func textContent(n *html.Node) string {
	var buf bytes.Buffer
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return buf.String()
}
