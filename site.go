package sheet2html

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-sheet2html/internal/fileutil"
	"github.com/alnah/go-sheet2html/internal/packager"
	"github.com/alnah/go-sheet2html/internal/render"
)

// highlightCSS is the generated stylesheet for server-highlighted code.
const highlightCSS = "highlight.css"

// SiteOptions controls a site build.
type SiteOptions struct {
	OutDir   string
	Workers  int  // see ResolveWorkers
	Landing  bool // write <out>/index.html linking every built source
	Packages bool // write <out>/packages/<name>.zip per source
}

// SiteResult describes a site build.
type SiteResult struct {
	Pages    []*Result // in source order
	Landing  string    // landing page path, empty when not written
	Packages []string  // zip paths in source order
}

// Site builds several sources into one output directory.
type Site struct {
	builder *Builder
	opts    SiteOptions

	assetsOnce sync.Once
	assets     map[string][]byte
	assetsErr  error
}

// NewSite creates a Site building with b.
func NewSite(b *Builder, opts SiteOptions) *Site {
	return &Site{builder: b, opts: opts}
}

// Build writes the shared assets, builds every source, then writes the
// landing page and packages when enabled. The first failing source cancels
// the remaining builds and its error is returned.
func (s *Site) Build(ctx context.Context, sources []Source) (*SiteResult, error) {
	if len(sources) == 0 {
		return nil, ErrNoPublishableSources
	}
	log := s.builder.log

	if err := s.writeAssets(); err != nil {
		return nil, err
	}

	results := make([]*Result, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ResolveWorkers(s.opts.Workers))
	for i, src := range sources {
		g.Go(func() error {
			res, err := s.builder.Build(gctx, src, s.opts.OutDir)
			if err != nil {
				return err
			}
			results[i] = res
			log.Info("Built", zap.String("source", src.Name), zap.String("page", res.PagePath),
				zap.Int("chapters", res.Chapters), zap.Int("sections", res.Sections))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &SiteResult{Pages: results}

	if s.opts.Landing {
		path, err := s.writeLanding(ctx, results)
		if err != nil {
			return nil, err
		}
		out.Landing = path
	}

	if s.opts.Packages {
		paths, err := s.writePackages(ctx, results)
		if err != nil {
			return nil, err
		}
		out.Packages = paths
	}

	return out, nil
}

// writeAssets copies every static file and the generated highlight
// stylesheet to <out>/assets/. A custom highlight.css replaces the
// generated one.
func (s *Site) writeAssets() error {
	files, err := s.assetFiles()
	if err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(files)) {
		path := filepath.Join(s.opts.OutDir, assetsDir, name)
		if err := fileutil.WriteFileAtomic(path, files[name]); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}

// assetFiles returns the shared asset files by name. The result is
// computed once per Site.
func (s *Site) assetFiles() (map[string][]byte, error) {
	s.assetsOnce.Do(func() {
		s.assets, s.assetsErr = loadAssetFiles(s.builder)
	})
	return s.assets, s.assetsErr
}

func loadAssetFiles(b *Builder) (map[string][]byte, error) {
	names, err := b.loader.StaticNames()
	if err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(names)+1)
	for _, name := range names {
		data, err := b.loader.LoadStatic(name)
		if err != nil {
			return nil, err
		}
		files[name] = data
	}
	if _, custom := files[highlightCSS]; !custom {
		css, err := render.HighlightCSS(b.lightStyle, b.darkStyle)
		if err != nil {
			return nil, err
		}
		files[highlightCSS] = css
	}
	return files, nil
}

// writeLanding writes <out>/index.html linking every result.
func (s *Site) writeLanding(ctx context.Context, results []*Result) (string, error) {
	entries := make([]render.LandingEntry, len(results))
	for i, res := range results {
		entries[i] = render.LandingEntry{Name: res.Source.Name, Path: res.Source.Name}
	}
	title := s.builder.title
	if title == "" {
		title = "Index"
	}

	html, err := s.builder.renderer.Landing(ctx, render.LandingPage{
		Title:     title,
		Entries:   entries,
		Paths:     render.RootPaths(),
		Generated: s.builder.now(),
	})
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.opts.OutDir, pageFile)
	if err := fileutil.WriteFileAtomic(path, html); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	s.builder.log.Info("Wrote landing page", zap.String("path", path), zap.Int("sources", len(entries)))
	return path, nil
}

// writePackages writes one zip per result. Inside the archive the page
// sits next to its assets and images, so it is re-rendered with root
// relative paths.
func (s *Site) writePackages(ctx context.Context, results []*Result) ([]string, error) {
	files, err := s.assetFiles()
	if err != nil {
		return nil, err
	}
	assetNames := slices.Sorted(maps.Keys(files))

	paths := make([]string, 0, len(results))
	for _, res := range results {
		page := res.page
		page.Paths = render.RootPaths()
		html, err := s.builder.renderer.Render(ctx, page)
		if err != nil {
			return nil, err
		}

		entries := []packager.Entry{{Name: pageFile, Data: html}}
		for _, name := range assetNames {
			entries = append(entries, packager.Entry{Name: assetsDir + "/" + name, Data: files[name]})
		}
		for _, img := range res.Images {
			entries = append(entries, packager.Entry{
				Name:   imagesDir + "/" + img,
				Source: filepath.Join(s.opts.OutDir, imagesDir, img),
			})
		}

		zipPath := filepath.Join(s.opts.OutDir, packagesDir, res.Source.Name+".zip")
		if err := packager.Write(zipPath, res.Source.Name, entries, page.Generated); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		s.builder.log.Info("Wrote package", zap.String("path", zipPath))
		paths = append(paths, zipPath)
	}
	return paths, nil
}
