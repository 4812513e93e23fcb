package model

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/alnah/go-sheet2html/internal/anchor"
)

// Document is the ordered chapter hierarchy of one source.
type Document struct {
	Chapters []*Chapter
}

// Chapter groups the sections sharing a chapter name.
type Chapter struct {
	Name     string
	ID       string
	Sections []*Section
}

// Section holds the ordered items of one (chapter, section) pair.
type Section struct {
	Name      string
	ID        string
	Collapsed bool // taken from the first item in item order
	Items     []Item
}

// TOC mirrors the document with names and identifiers only.
type TOC struct {
	Chapters []TOCChapter
}

// TOCChapter is a chapter entry of the table of contents.
type TOCChapter struct {
	Name     string
	ID       string
	Sections []TOCSection
}

// TOCSection is a section entry of the table of contents.
type TOCSection struct {
	Name      string
	ID        string
	Collapsed bool
}

// chapterGroup accumulates the items of one chapter during grouping.
type chapterGroup struct {
	name     string
	firstSeq int
	sections map[string][]Item
}

// Build groups items into a Document and its TOC. Identifiers are
// allocated from reg exactly once per chapter and section, in display
// order, and shared by both results. A nil reg uses a fresh Registry.
func Build(items []Item, reg *anchor.Registry) (*Document, *TOC) {
	if reg == nil {
		reg = anchor.NewRegistry()
	}

	groups := make(map[string]*chapterGroup)
	var chapters []*chapterGroup
	for _, it := range items {
		g, ok := groups[it.Chapter]
		if !ok {
			g = &chapterGroup{name: it.Chapter, firstSeq: it.Seq, sections: make(map[string][]Item)}
			groups[it.Chapter] = g
			chapters = append(chapters, g)
		}
		g.firstSeq = min(g.firstSeq, it.Seq)
		g.sections[it.Section] = append(g.sections[it.Section], it)
	}

	slices.SortStableFunc(chapters, chapterOrder)
	sectionCmp := sectionOrder()

	doc := &Document{Chapters: make([]*Chapter, 0, len(chapters))}
	toc := &TOC{Chapters: make([]TOCChapter, 0, len(chapters))}

	for _, g := range chapters {
		ch := &Chapter{Name: g.name, ID: reg.Chapter(g.name)}
		tc := TOCChapter{Name: ch.Name, ID: ch.ID}

		names := make([]string, 0, len(g.sections))
		for name := range g.sections {
			names = append(names, name)
		}
		slices.SortFunc(names, sectionCmp)

		for _, name := range names {
			sectionItems := g.sections[name]
			slices.SortStableFunc(sectionItems, itemOrder)

			sec := &Section{
				Name:      name,
				ID:        reg.Section(g.name, name),
				Collapsed: sectionItems[0].Collapsed,
				Items:     sectionItems,
			}
			ch.Sections = append(ch.Sections, sec)
			tc.Sections = append(tc.Sections, TOCSection{Name: sec.Name, ID: sec.ID, Collapsed: sec.Collapsed})
		}

		doc.Chapters = append(doc.Chapters, ch)
		toc.Chapters = append(toc.Chapters, tc)
	}

	return doc, toc
}

// chapterOrder sorts chapters by their first appearance in the source.
func chapterOrder(a, b *chapterGroup) int {
	return cmp.Compare(a.firstSeq, b.firstSeq)
}

// sectionOrder returns a comparator sorting section names alphabetically,
// ignoring case, with an ordinal tiebreak so the order is total.
// The returned function must not be shared between goroutines.
func sectionOrder() func(a, b string) int {
	fold := cases.Fold()
	return func(a, b string) int {
		if c := strings.Compare(fold.String(a), fold.String(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}
}

// itemOrder sorts items by Order, then by source position.
func itemOrder(a, b Item) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return cmp.Compare(a.Seq, b.Seq)
}

// NumSections returns the total number of sections in d.
func (d *Document) NumSections() int {
	n := 0
	for _, ch := range d.Chapters {
		n += len(ch.Sections)
	}
	return n
}

// NumItems returns the total number of items in d.
func (d *Document) NumItems() int {
	n := 0
	for _, ch := range d.Chapters {
		for _, sec := range ch.Sections {
			n += len(sec.Items)
		}
	}
	return n
}

// ImageRefs returns the image items of d in document order.
func (d *Document) ImageRefs() []Item {
	var refs []Item
	for _, ch := range d.Chapters {
		for _, sec := range ch.Sections {
			for _, it := range sec.Items {
				if it.Kind == KindImage {
					refs = append(refs, it)
				}
			}
		}
	}
	return refs
}
