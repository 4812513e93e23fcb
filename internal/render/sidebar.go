package render

import (
	"html"
	"strings"

	"github.com/alnah/go-sheet2html/internal/model"
)

// writeSidebar writes the table of contents as a flat list: each chapter
// link followed by the links of its sections.
func writeSidebar(w *strings.Builder, toc *model.TOC) {
	w.WriteString("<ul class=\"toc\">\n")
	if toc != nil {
		for _, ch := range toc.Chapters {
			writeTOCLink(w, "toc-chapter", ch.ID, ch.Name)
			for _, sec := range ch.Sections {
				writeTOCLink(w, "toc-section", sec.ID, sec.Name)
			}
		}
	}
	w.WriteString("</ul>")
}

func writeTOCLink(w *strings.Builder, class, id, name string) {
	w.WriteString(`<li class="`)
	w.WriteString(class)
	w.WriteString(`"><a href="#`)
	w.WriteString(html.EscapeString(id))
	w.WriteString(`">`)
	w.WriteString(html.EscapeString(name))
	w.WriteString("</a></li>\n")
}
