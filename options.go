package sheet2html

import (
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-sheet2html/internal/render"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithNow sets the clock used for the generation timestamp.
func WithNow(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithTitle sets the site title shown on every page.
func WithTitle(title string) Option {
	return func(b *Builder) {
		b.title = title
	}
}

// WithImageDir sets the directory image cells are resolved against.
func WithImageDir(dir string) Option {
	return func(b *Builder) {
		b.imageDir = dir
	}
}

// WithSheet selects the worksheet read from workbooks. Empty reads the
// first sheet.
func WithSheet(name string) Option {
	return func(b *Builder) {
		b.sheet = name
	}
}

// WithAssetPath overrides embedded templates and static files with the
// files present in dir. Missing files fall back to the embedded ones.
func WithAssetPath(dir string) Option {
	return func(b *Builder) {
		b.assetPath = dir
	}
}

// WithRenderOptions passes options to the page renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(b *Builder) {
		b.renderOpts = append(b.renderOpts, opts...)
	}
}

// WithHighlightStyles sets the chroma styles of highlight.css.
func WithHighlightStyles(light, dark string) Option {
	return func(b *Builder) {
		b.lightStyle = light
		b.darkStyle = dark
	}
}
