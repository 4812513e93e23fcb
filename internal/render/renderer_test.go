package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/alnah/go-sheet2html/internal/assets"
)

func TestRender_AnchorsResolve(t *testing.T) {
	t.Parallel()

	page := buildPage(t,
		row("Git", "Setup", "1", "text", "", "Install git."),
		row("Git", "setup", "1", "text", "", "Lowercase twin."),
		row("Git", "Branches", "2", "code", "bash", "git branch"),
		row("C++", "Intro", "", "note", "", "Careful."),
		row("C", "Intro", "", "text", "", "Plain C."),
	)
	doc := parseHTML(t, renderPage(t, page))

	ids := make(map[string]int)
	walk(doc, func(n *html.Node) {
		if id := attr(n, "id"); id != "" {
			ids[id]++
		}
	})
	for id, n := range ids {
		if n != 1 {
			t.Errorf("id %q appears %d times, want 1", id, n)
		}
	}

	nav := find(doc, func(n *html.Node) bool { return n.Data == "ul" && hasClass(n, "toc") })
	if nav == nil {
		t.Fatal("sidebar list not found")
	}
	links := 0
	walk(nav, func(n *html.Node) {
		if n.Data != "a" {
			return
		}
		links++
		href := attr(n, "href")
		if !strings.HasPrefix(href, "#") {
			t.Errorf("sidebar href %q is not a fragment", href)
			return
		}
		if ids[strings.TrimPrefix(href, "#")] != 1 {
			t.Errorf("sidebar href %q has no target", href)
		}
	})
	// 3 chapters + 5 sections ("Setup" and "setup" are distinct)
	if links != 8 {
		t.Errorf("sidebar has %d links, want 8", links)
	}
}

func TestRender_SidebarOrder(t *testing.T) {
	t.Parallel()

	page := buildPage(t,
		row("Zeta", "B", "", "text", "", "b"),
		row("Alpha", "Only", "", "text", "", "x"),
		row("Zeta", "a", "", "text", "", "a"),
	)
	doc := parseHTML(t, renderPage(t, page))

	var got []string
	walk(doc, func(n *html.Node) {
		if n.Data == "li" && (hasClass(n, "toc-chapter") || hasClass(n, "toc-section")) {
			got = append(got, textContent(n))
		}
	})
	want := []string{"Zeta", "a", "B", "Alpha", "Only"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("sidebar entries = %v, want %v", got, want)
	}
}

func TestRender_EscapesSourceText(t *testing.T) {
	t.Parallel()

	page := buildPage(t,
		row("<b>Chap</b>", "A & B", "", "text", "", "<script>alert(1)</script>"),
		row("<b>Chap</b>", "A & B", "", "code", "html", "<div>\"x\"</div>"),
		row("<b>Chap</b>", "A & B", "", "note", "", "<img src=x onerror=alert(1)>"),
	)
	out := renderPage(t, page)

	for _, bad := range []string{"<script>alert(1)", "<b>Chap</b>", "<img src=x", "<div>\"x\"</div>"} {
		if strings.Contains(out, bad) {
			t.Errorf("output contains unescaped %q", bad)
		}
	}
	for _, want := range []string{"&lt;script&gt;alert(1)&lt;/script&gt;", "A &amp; B", "&lt;div&gt;&#34;x&#34;&lt;/div&gt;"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}

func TestRender_ItemMarkup(t *testing.T) {
	t.Parallel()

	page := buildPage(t,
		row("Ch", "Sec", "1", "text", "", "line one\nline two"),
		row("Ch", "Sec", "2", "note", "", "heads up"),
		row("Ch", "Sec", "3", "code", "Go", "fmt.Println(1)"),
		row("Ch", "Sec", "4", "image", "", "shot.png"),
		row("Ch", "Sec", "5", "mystery", "", "fallback"),
		row("Ch", "Sec", "6", "code", "", "plain"),
	)
	out := renderPage(t, page)

	wants := []string{
		`<p class="text">line one<br>` + "\n" + `line two</p>`,
		`<div class="note"><p>heads up</p></div>`,
		`<pre class="code line-numbers" data-lang="go"><code class="language-go">fmt.Println(1)</code></pre>`,
		`<figure class="image"><img src="../images/shot.png" alt="Sec"></figure>`,
		`<p class="text">fallback</p>`,
		`data-lang="text"`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}

func TestRender_CollapsedSection(t *testing.T) {
	t.Parallel()

	page := buildPage(t,
		row("Ch", "Open", "", "text", "", "visible"),
		row("Ch", "Shut", "", "text", "", "hidden"),
	)
	page.Document.Chapters[0].Sections[1].Collapsed = true
	doc := parseHTML(t, renderPage(t, page))

	details := find(doc, func(n *html.Node) bool { return n.Data == "details" })
	if details == nil {
		t.Fatal("collapsed section should render as <details>")
	}
	if !hasClass(details, "collapsible") || attr(details, "id") != "sec-ch-shut" {
		t.Errorf("details class=%q id=%q", attr(details, "class"), attr(details, "id"))
	}
	summary := find(details, func(n *html.Node) bool { return n.Data == "summary" })
	if summary == nil || textContent(summary) != "Shut" {
		t.Error("details should carry the section name in <summary>")
	}

	open := find(doc, func(n *html.Node) bool { return attr(n, "id") == "sec-ch-open" })
	if open == nil || open.Data != "section" {
		t.Fatal("expanded section should render as <section>")
	}
	if h3 := find(open, func(n *html.Node) bool { return n.Data == "h3" }); h3 == nil {
		t.Error("expanded section should have an <h3> heading")
	}
}

func TestRender_Paths(t *testing.T) {
	t.Parallel()

	page := buildPage(t, row("Ch", "Sec", "", "image", "", "a b.png"))

	perSource := renderPage(t, page)
	for _, want := range []string{`href="../assets/style.css"`, `href="../assets/highlight.css"`, `src="../assets/app.js"`, `src="../images/a%20b.png"`} {
		if !strings.Contains(perSource, want) {
			t.Errorf("per-source page should contain %q", want)
		}
	}

	page.Paths = RootPaths()
	root := renderPage(t, page)
	for _, want := range []string{`href="./assets/style.css"`, `src="./images/a%20b.png"`} {
		if !strings.Contains(root, want) {
			t.Errorf("root page should contain %q", want)
		}
	}
}

func TestRender_HeaderAndTheme(t *testing.T) {
	t.Parallel()

	page := buildPage(t, row("Ch", "Sec", "", "text", "", "x"))

	out := renderPage(t, page, WithLang("de"))
	for _, want := range []string{`<html lang="de">`, "<title>Handbook</title>", "Generated 2024-05-01 14:30", `localStorage.getItem("sheet2html-theme")`} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q", want)
		}
	}

	out = renderPage(t, page, WithDateFormat("DD/MM/YYYY"))
	if !strings.Contains(out, "Generated 01/05/2024") {
		t.Error("custom date format not applied")
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	page := buildPage(t,
		row("B", "y", "2", "text", "", "2"),
		row("A", "x", "1", "code", "go", "package main"),
		row("B", "x", "1", "note", "", "1"),
	)
	r, err := New(WithHighlight(ModeServer))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	first, err := r.Render(context.Background(), page)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	second, err := r.Render(context.Background(), page)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if string(first) != string(second) {
		t.Error("rendering the same page twice should produce identical output")
	}
}

func TestRender_ServerHighlight(t *testing.T) {
	t.Parallel()

	page := buildPage(t, row("Ch", "Sec", "", "code", "go", "func main() {}\n"))
	out := renderPage(t, page, WithHighlight(ModeServer))

	for _, want := range []string{`data-lang="go"`, `class="language-go"`, `<span class="kd">func</span>`, `class="ln"`} {
		if !strings.Contains(out, want) {
			t.Errorf("server-highlighted output should contain %q", want)
		}
	}
}

func TestRender_Markdown(t *testing.T) {
	t.Parallel()

	page := buildPage(t, row("Ch", "Sec", "", "markdown", "", "**bold** <script>alert(1)</script>"))

	enabled := renderPage(t, page, WithMarkdown(true))
	if !strings.Contains(enabled, "<strong>bold</strong>") {
		t.Error("markdown item should render through goldmark when enabled")
	}
	if strings.Contains(enabled, "<script>alert(1)") {
		t.Error("raw HTML inside markdown must not pass through")
	}

	disabled := renderPage(t, page)
	if !strings.Contains(disabled, `<p class="text">**bold** &lt;script&gt;`) {
		t.Error("markdown item should render as text when disabled")
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	r, err := New()
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if _, err := r.Render(context.Background(), Page{}); !errors.Is(err, ErrNilDocument) {
		t.Errorf("Render(empty page) error = %v, want ErrNilDocument", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	page := buildPage(t, row("Ch", "Sec", "", "text", "", "x"))
	if _, err := r.Render(ctx, page); !errors.Is(err, context.Canceled) {
		t.Errorf("Render(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	if _, err := New(WithHighlight("fancy")); !errors.Is(err, ErrHighlightMode) {
		t.Errorf("New(bad mode) error = %v, want ErrHighlightMode", err)
	}
	if _, err := New(WithDateFormat("[open")); err == nil {
		t.Error("New(bad date format) should fail")
	}
}

func TestNew_CustomTemplate(t *testing.T) {
	t.Parallel()

	loader := stubLoader{templates: map[string]string{
		assets.TemplatePage:    "<main>{{.Title}}|{{.Body}}</main>",
		assets.TemplateLanding: "{{range .Entries}}{{.Name}};{{end}}",
	}}
	r, err := New(WithAssetLoader(loader))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	out, err := r.Render(context.Background(), buildPage(t, row("Ch", "Sec", "", "text", "", "x")))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(out), "<main>Handbook|<section class=\"chapter\"") {
		t.Errorf("custom template not used: %q", out)
	}

	broken := stubLoader{templates: map[string]string{
		assets.TemplatePage:    "{{.Title",
		assets.TemplateLanding: "",
	}}
	if _, err := New(WithAssetLoader(broken)); !errors.Is(err, ErrTemplate) {
		t.Errorf("New(broken template) error = %v, want ErrTemplate", err)
	}
}

type stubLoader struct {
	templates map[string]string
}

func (s stubLoader) LoadTemplate(name string) (string, error) {
	content, ok := s.templates[name]
	if !ok {
		return "", assets.ErrTemplateNotFound
	}
	return content, nil
}

func (s stubLoader) LoadStatic(name string) ([]byte, error) {
	return nil, assets.ErrStaticNotFound
}

func (s stubLoader) StaticNames() ([]string, error) {
	return nil, nil
}
