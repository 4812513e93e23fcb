package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// cliFlags holds every command-line flag.
type cliFlags struct {
	source  string
	all     bool
	list    bool
	pkg     bool
	config  string
	output  string
	sources string
	images  string
	workers int
	quiet   bool
	verbose bool
	version bool
	help    bool

	// changed records the long names of flags given explicitly, so zero
	// values such as --workers 0 still override the config.
	changed map[string]bool
}

// newFlagSet declares the flags on a fresh set bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("sheet2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&f.source, "source", "s", "", "build one source")
	fs.BoolVarP(&f.all, "all", "a", false, "build all publishable sources")
	fs.BoolVarP(&f.list, "list", "l", false, "list publishable sources and exit")
	fs.BoolVarP(&f.pkg, "package", "p", false, "write zip packages after build")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.sources, "sources", "", "source directory")
	fs.StringVar(&f.images, "images", "", "image source directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel builds (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help and exit")
	return fs
}

// parseFlags parses args, without the program name, and checks flag
// combinations.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{changed: make(map[string]bool)}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(fs.Args(), " "))
	}
	if f.help || f.version {
		return f, nil
	}
	if f.source != "" && f.all {
		return nil, fmt.Errorf("%w: --source and --all cannot be combined", ErrUsage)
	}
	if f.changed["source"] && f.source == "" {
		return nil, fmt.Errorf("%w: --source needs a name", ErrUsage)
	}
	if f.quiet && f.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose cannot be combined", ErrUsage)
	}
	if f.workers < 0 {
		return nil, fmt.Errorf("%w: --workers must be 0 or more, got %d", ErrUsage, f.workers)
	}
	return f, nil
}
