package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/alnah/go-sheet2html/internal/assets"
	"github.com/alnah/go-sheet2html/internal/dateutil"
	"github.com/alnah/go-sheet2html/internal/model"
)

// Page is the input of one per-source page.
type Page struct {
	Title     string
	Document  *model.Document
	TOC       *model.TOC
	Paths     Paths
	Generated time.Time
}

// LandingEntry is one link on the landing page.
type LandingEntry struct {
	Name string // display name
	Path string // output directory name, linked as ./<Path>/
}

// LandingPage is the input of the site index page.
type LandingPage struct {
	Title     string
	Entries   []LandingEntry
	Paths     Paths
	Generated time.Time
}

// pageData is the data passed to the page template.
type pageData struct {
	Lang        string
	Title       string
	AssetPrefix string
	Generated   string
	Sidebar     template.HTML // #nosec G203 -- built from escaped fragments
	Body        template.HTML // #nosec G203 -- built from escaped fragments
}

// landingData is the data passed to the landing template.
type landingData struct {
	Lang        string
	Title       string
	AssetPrefix string
	Generated   string
	Entries     []LandingEntry
}

// Renderer produces HTML pages. It is safe for concurrent use.
type Renderer struct {
	loader     assets.AssetLoader
	lang       string
	mode       Mode
	dateFormat string
	markdown   bool

	md      goldmark.Markdown
	page    *template.Template
	landing *template.Template
}

// New creates a Renderer, parsing the page and landing templates from the
// configured asset loader.
func New(opts ...Option) (*Renderer, error) {
	r := defaultRenderer()
	for _, opt := range opts {
		opt(r)
	}

	if _, err := ParseMode(string(r.mode)); err != nil {
		return nil, err
	}
	if _, err := dateutil.ParseFormat(r.dateFormat); err != nil {
		return nil, err
	}

	var err error
	if r.page, err = r.parse(assets.TemplatePage); err != nil {
		return nil, err
	}
	if r.landing, err = r.parse(assets.TemplateLanding); err != nil {
		return nil, err
	}
	if r.markdown {
		r.md = newMarkdown()
	}
	return r, nil
}

func (r *Renderer) parse(name string) (*template.Template, error) {
	content, err := r.loader.LoadTemplate(name)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrTemplate, name, err)
	}
	return tmpl, nil
}

// Mode returns the configured highlight mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Render produces the complete page for one source. Rendering the same
// page twice yields identical bytes.
func (r *Renderer) Render(ctx context.Context, p Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.Document == nil {
		return nil, ErrNilDocument
	}

	generated, err := dateutil.Format(p.Generated, r.dateFormat)
	if err != nil {
		return nil, err
	}

	var sidebar strings.Builder
	writeSidebar(&sidebar, p.TOC)

	var body strings.Builder
	if err := r.writeBody(ctx, &body, p.Document, p.Paths); err != nil {
		return nil, err
	}

	data := pageData{
		Lang:        r.lang,
		Title:       p.Title,
		AssetPrefix: p.Paths.AssetPrefix,
		Generated:   generated,
		Sidebar:     template.HTML(sidebar.String()), // #nosec G203 -- escaped in writeSidebar
		Body:        template.HTML(body.String()),    // #nosec G203 -- escaped in writeBody
	}
	return execute(r.page, data)
}

// Landing produces the site index page.
func (r *Renderer) Landing(ctx context.Context, p LandingPage) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	generated, err := dateutil.Format(p.Generated, r.dateFormat)
	if err != nil {
		return nil, err
	}
	data := landingData{
		Lang:        r.lang,
		Title:       p.Title,
		AssetPrefix: p.Paths.AssetPrefix,
		Generated:   generated,
		Entries:     p.Entries,
	}
	return execute(r.landing, data)
}

func execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: executing %s: %v", ErrTemplate, tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
