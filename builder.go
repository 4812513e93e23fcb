package sheet2html

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-sheet2html/internal/anchor"
	"github.com/alnah/go-sheet2html/internal/assets"
	"github.com/alnah/go-sheet2html/internal/fileutil"
	"github.com/alnah/go-sheet2html/internal/model"
	"github.com/alnah/go-sheet2html/internal/render"
	"github.com/alnah/go-sheet2html/internal/sheet"
)

// Output layout below the output directory.
const (
	assetsDir   = "assets"
	imagesDir   = "images"
	packagesDir = "packages"
	pageFile    = "index.html"
)

// Builder turns one source into a page. Create with NewBuilder; a Builder
// is safe for concurrent use.
type Builder struct {
	log        *zap.Logger
	now        func() time.Time
	title      string
	imageDir   string
	sheet      string
	assetPath  string
	lightStyle string
	darkStyle  string
	renderOpts []render.Option

	loader   assets.AssetLoader
	renderer *render.Renderer
}

// Result describes one built source.
type Result struct {
	Source   Source
	PagePath string       // <out>/<name>/index.html
	Images   []string     // referenced image file names, sorted
	Report   model.Report // normalization counters
	Chapters int
	Sections int

	page render.Page
}

// NewBuilder creates a Builder. Returns ErrInvalidAssetPath when the
// custom asset directory is unusable, or the renderer's error when a
// template or option is invalid.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		log:      zap.NewNop(),
		now:      time.Now,
		imageDir: "images",
	}
	for _, opt := range opts {
		opt(b)
	}

	resolver, err := assets.NewAssetResolver(b.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	b.loader = resolver

	renderOpts := append([]render.Option{render.WithAssetLoader(resolver)}, b.renderOpts...)
	if b.renderer, err = render.New(renderOpts...); err != nil {
		return nil, err
	}
	return b, nil
}

// Build reads src, renders its page and writes it with the referenced
// images below outDir. Images are validated before anything is written,
// and the page is replaced atomically, so a failed build leaves earlier
// output intact. Recovers from internal panics.
func (b *Builder) Build(ctx context.Context, src Source, outDir string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%w: building %s: %v", ErrInternal, src.Name, r)
		}
	}()

	log := b.log.With(zap.String("source", src.Name))
	started := time.Now()

	rows, err := sheet.ReadFile(src.Path, sheet.Options{Sheet: b.sheet})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}

	items, report, err := model.Normalize(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	if report.Dropped > 0 {
		log.Warn("Skipped incomplete rows", zap.Int("dropped", report.Dropped), zap.Int("rows", report.Rows))
	}
	if len(report.BadOrder) > 0 {
		log.Warn("Order is not a number, using 0", zap.Ints("lines", report.BadOrder))
	}

	anchors := anchor.NewRegistry()
	doc, toc := model.Build(items, anchors)

	images, err := resolveImages(doc.ImageRefs(), b.imageDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := render.Page{
		Title:     b.pageTitle(src),
		Document:  doc,
		TOC:       toc,
		Paths:     render.PerSourcePaths(),
		Generated: b.now(),
	}
	html, err := b.renderer.Render(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}

	if err := copyImages(images, b.imageDir, outDir, log); err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}

	pagePath := filepath.Join(outDir, src.Name, pageFile)
	if err := fileutil.WriteFileAtomic(pagePath, html); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	log.Debug("Built page",
		zap.String("path", pagePath),
		zap.Int("items", doc.NumItems()),
		zap.Int("anchors", anchors.Len()),
		zap.Int("images", len(images)),
		zap.Duration("elapsed", time.Since(started)))

	return &Result{
		Source:   src,
		PagePath: pagePath,
		Images:   images,
		Report:   report,
		Chapters: len(doc.Chapters),
		Sections: doc.NumSections(),
		page:     page,
	}, nil
}

// pageTitle combines the source name with the site title.
func (b *Builder) pageTitle(src Source) string {
	if b.title == "" {
		return src.Name
	}
	return src.Name + " | " + b.title
}
