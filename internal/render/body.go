package render

import (
	"context"
	"html"
	"net/url"
	"strings"

	"github.com/alnah/go-sheet2html/internal/model"
)

// writeBody writes every chapter block of doc in order.
func (r *Renderer) writeBody(ctx context.Context, w *strings.Builder, doc *model.Document, paths Paths) error {
	for _, ch := range doc.Chapters {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.WriteString(`<section class="chapter" id="`)
		w.WriteString(html.EscapeString(ch.ID))
		w.WriteString("\">\n<h2>")
		w.WriteString(html.EscapeString(ch.Name))
		w.WriteString("</h2>\n")
		for _, sec := range ch.Sections {
			if err := r.writeSection(w, sec, paths); err != nil {
				return err
			}
		}
		w.WriteString("</section>\n")
	}
	return nil
}

// writeSection writes a collapsed section as a disclosure element and any
// other section as a plain block with a heading.
func (r *Renderer) writeSection(w *strings.Builder, sec *model.Section, paths Paths) error {
	id := html.EscapeString(sec.ID)
	name := html.EscapeString(sec.Name)

	if sec.Collapsed {
		w.WriteString(`<details class="section collapsible" id="` + id + "\">\n")
		w.WriteString("<summary><h3>" + name + "</h3></summary>\n")
	} else {
		w.WriteString(`<section class="section" id="` + id + "\">\n")
		w.WriteString("<h3>" + name + "</h3>\n")
	}

	for _, it := range sec.Items {
		if err := r.writeItem(w, it, sec.Name, paths); err != nil {
			return err
		}
	}

	if sec.Collapsed {
		w.WriteString("</details>\n")
	} else {
		w.WriteString("</section>\n")
	}
	return nil
}

// writeItem writes one content block according to its kind.
func (r *Renderer) writeItem(w *strings.Builder, it model.Item, section string, paths Paths) error {
	switch it.Kind {
	case model.KindCode:
		return r.writeCode(w, it)
	case model.KindNote:
		w.WriteString("<div class=\"note\"><p>")
		w.WriteString(textWithBreaks(it.Body))
		w.WriteString("</p></div>\n")
	case model.KindImage:
		w.WriteString(`<figure class="image"><img src="`)
		w.WriteString(html.EscapeString(paths.Images() + url.PathEscape(strings.TrimSpace(it.Body))))
		w.WriteString(`" alt="`)
		w.WriteString(html.EscapeString(section))
		w.WriteString("\"></figure>\n")
	case model.KindMarkdown:
		if r.markdown {
			fragment, err := convertMarkdown(r.md, it.Body)
			if err != nil {
				return err
			}
			w.WriteString("<div class=\"markdown\">\n")
			w.WriteString(fragment)
			w.WriteString("</div>\n")
			return nil
		}
		writeText(w, it.Body)
	default:
		writeText(w, it.Body)
	}
	return nil
}

func writeText(w *strings.Builder, body string) {
	w.WriteString("<p class=\"text\">")
	w.WriteString(textWithBreaks(body))
	w.WriteString("</p>\n")
}

// writeCode writes a code block. Both modes carry the language in
// data-lang and the language-* class.
func (r *Renderer) writeCode(w *strings.Builder, it model.Item) error {
	lang := html.EscapeString(it.Language)
	code := normalizeNewlines(it.Body)

	if r.mode == ModeServer {
		w.WriteString(`<pre class="code line-numbers chroma" data-lang="` + lang + `"><code class="language-` + lang + `">`)
		if err := highlightCode(w, it.Language, code); err != nil {
			return err
		}
	} else {
		w.WriteString(`<pre class="code line-numbers" data-lang="` + lang + `"><code class="language-` + lang + `">`)
		w.WriteString(html.EscapeString(code))
	}
	w.WriteString("</code></pre>\n")
	return nil
}

// textWithBreaks escapes s and turns line breaks into <br>.
func textWithBreaks(s string) string {
	escaped := html.EscapeString(normalizeNewlines(s))
	return strings.ReplaceAll(escaped, "\n", "<br>\n")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
