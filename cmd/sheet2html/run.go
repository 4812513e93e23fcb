package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	sheet2html "github.com/alnah/go-sheet2html"
	"github.com/alnah/go-sheet2html/internal/config"
	"github.com/alnah/go-sheet2html/internal/fileutil"
	"github.com/alnah/go-sheet2html/internal/hints"
	"github.com/alnah/go-sheet2html/internal/logging"
	"github.com/alnah/go-sheet2html/internal/render"
)

// run parses args, resolves the configuration and builds the selected
// sources. args excludes the program name.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, "Run 'sheet2html --help' for usage.")
		return err
	}
	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "sheet2html %s\n", Version)
		return nil
	}

	envCfg := loadEnvConfig()
	warnEnv(env.Stderr, envCfg)

	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging.Level, env.Stdout, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	sources, err := sheet2html.Discover(cfg.Sources.Dir, sheet2html.DiscoveryRules{
		WIPMarker:    cfg.Sources.WIPMarker,
		LockPrefixes: cfg.Sources.LockPrefixes,
	})
	if err != nil {
		return withHint(err)
	}

	if flags.list {
		printSources(env.Stdout, sources)
		return nil
	}

	selected, err := selectSources(flags, cfg, sources)
	if err != nil {
		return err
	}

	builder, err := newBuilder(cfg, log, env.Now)
	if err != nil {
		return err
	}

	site := sheet2html.NewSite(builder, sheet2html.SiteOptions{
		OutDir:   cfg.Output.Dir,
		Workers:  cfg.Build.Workers,
		Landing:  flags.all && cfg.Output.Landing,
		Packages: cfg.Output.Package,
	})

	started := time.Now()
	result, err := site.Build(ctx, selected)
	if err != nil {
		return withHint(err)
	}

	log.Info("Site written",
		zap.String("output", cfg.Output.Dir),
		zap.Int("pages", len(result.Pages)),
		zap.Int("packages", len(result.Packages)),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

// resolveConfig loads the config file named by --config or
// SHEET2HTML_CONFIG, then applies environment and flag overrides.
func resolveConfig(flags *cliFlags, envCfg *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.sources != "" {
		cfg.Sources.Dir = flags.sources
	}
	if flags.images != "" {
		cfg.Images.Dir = flags.images
	}
	if flags.changed["workers"] {
		cfg.Build.Workers = flags.workers
	}
	if flags.pkg {
		cfg.Output.Package = true
	}
	switch {
	case flags.quiet:
		cfg.Logging.Level = logging.LevelQuiet
	case flags.verbose:
		cfg.Logging.Level = logging.LevelDebug
	}
}

// selectSources returns the sources to build: all of them for --all, the
// named one for --source, otherwise the configured default.
func selectSources(flags *cliFlags, cfg *config.Config, sources []sheet2html.Source) ([]sheet2html.Source, error) {
	switch {
	case flags.all:
		return sources, nil
	case flags.source != "":
		src, err := sheet2html.Select(sources, flags.source)
		if err != nil {
			return nil, err
		}
		return []sheet2html.Source{src}, nil
	default:
		src, err := sheet2html.SelectDefault(sources, cfg.Sources.Default)
		if err != nil {
			return nil, err
		}
		return []sheet2html.Source{src}, nil
	}
}

// newBuilder creates the page builder from cfg.
func newBuilder(cfg *config.Config, log *zap.Logger, now func() time.Time) (*sheet2html.Builder, error) {
	mode, err := render.ParseMode(cfg.Render.Highlight)
	if err != nil {
		return nil, err
	}
	return sheet2html.NewBuilder(
		sheet2html.WithLogger(log),
		sheet2html.WithNow(now),
		sheet2html.WithTitle(cfg.Title),
		sheet2html.WithImageDir(cfg.Images.Dir),
		sheet2html.WithSheet(cfg.Sources.Sheet),
		sheet2html.WithAssetPath(cfg.Assets.Dir),
		sheet2html.WithHighlightStyles(cfg.Render.LightStyle, cfg.Render.DarkStyle),
		sheet2html.WithRenderOptions(
			render.WithLang(cfg.Render.Lang),
			render.WithHighlight(mode),
			render.WithDateFormat(cfg.Render.DateFormat),
			render.WithMarkdown(cfg.Render.Markdown),
		),
	)
}

// printSources writes one line per source: its name and file name.
func printSources(w io.Writer, sources []sheet2html.Source) {
	for _, s := range sources {
		fmt.Fprintf(w, "%s\t%s\n", s.Name, filepath.Base(s.Path))
	}
}

// withHint appends the hint matching err, if any.
func withHint(err error) error {
	switch {
	case errors.Is(err, sheet2html.ErrNoPublishableSources):
		return fmt.Errorf("%w%s", err, hints.ForSources(nil))
	case errors.Is(err, sheet2html.ErrEmptySource), errors.Is(err, sheet2html.ErrEmptyContent):
		return fmt.Errorf("%w%s", err, hints.ForEmptySource())
	case errors.Is(err, sheet2html.ErrWriteOutput):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	default:
		return err
	}
}
