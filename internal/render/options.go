package render

import (
	"github.com/alnah/go-sheet2html/internal/assets"
	"github.com/alnah/go-sheet2html/internal/dateutil"
)

// DefaultLang is the html lang attribute used when none is configured.
const DefaultLang = "en"

// Option configures a Renderer.
type Option func(*Renderer)

// WithAssetLoader sets the source of the page and landing templates.
func WithAssetLoader(loader assets.AssetLoader) Option {
	return func(r *Renderer) {
		if loader != nil {
			r.loader = loader
		}
	}
}

// WithLang sets the html lang attribute.
func WithLang(lang string) Option {
	return func(r *Renderer) {
		if lang != "" {
			r.lang = lang
		}
	}
}

// WithHighlight selects client or server side code highlighting.
func WithHighlight(mode Mode) Option {
	return func(r *Renderer) {
		r.mode = mode
	}
}

// WithDateFormat sets the layout of the generation timestamp.
// See dateutil.ParseFormat for the accepted tokens.
func WithDateFormat(format string) Option {
	return func(r *Renderer) {
		if format != "" {
			r.dateFormat = format
		}
	}
}

// WithMarkdown enables rendering of markdown items. When disabled they
// render as plain text.
func WithMarkdown(enabled bool) Option {
	return func(r *Renderer) {
		r.markdown = enabled
	}
}

func defaultRenderer() *Renderer {
	return &Renderer{
		loader:     assets.NewEmbeddedLoader(),
		lang:       DefaultLang,
		mode:       ModeClient,
		dateFormat: dateutil.DefaultFormat,
	}
}
