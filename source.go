package sheet2html

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/alnah/go-sheet2html/internal/hints"
	"github.com/alnah/go-sheet2html/internal/sheet"
)

// Source is one publishable workbook.
type Source struct {
	Name string // file name without extension; names the output directory
	Path string
}

// DiscoveryRules controls which files in the source directory publish.
type DiscoveryRules struct {
	// WIPMarker excludes files whose name contains it, ignoring case.
	// Empty disables the check.
	WIPMarker string
	// LockPrefixes excludes editor lock files such as "~$book.xlsx".
	LockPrefixes []string
}

// DefaultDiscoveryRules returns the rules used when none are configured.
func DefaultDiscoveryRules() DiscoveryRules {
	return DiscoveryRules{
		WIPMarker:    "_wip",
		LockPrefixes: []string{"~$", ".~lock."},
	}
}

// excluded reports whether the file name is skipped by the rules.
func (r DiscoveryRules) excluded(fileName string) bool {
	for _, prefix := range r.LockPrefixes {
		if prefix != "" && strings.HasPrefix(fileName, prefix) {
			return true
		}
	}
	if r.WIPMarker != "" && strings.Contains(strings.ToLower(fileName), strings.ToLower(r.WIPMarker)) {
		return true
	}
	return strings.HasPrefix(fileName, ".")
}

// Discover lists the publishable sources in dir, without recursing, in
// natural name order. Returns ErrNoPublishableSources when none remain and
// ErrDuplicateSource when two files share a name, as in guide.xlsx and
// guide.csv.
func Discover(dir string, rules DiscoveryRules) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %v", ErrReadSource, dir, err)
	}

	byName := make(map[string]string)
	var names []string
	for _, entry := range entries {
		fileName := entry.Name()
		if !entry.Type().IsRegular() || !sheet.IsSupported(fileName) || rules.excluded(fileName) {
			continue
		}
		name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
		if prev, ok := byName[name]; ok {
			return nil, fmt.Errorf("%w: %q from %s and %s", ErrDuplicateSource, name, filepath.Base(prev), fileName)
		}
		byName[name] = filepath.Join(dir, fileName)
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPublishableSources, dir)
	}

	sort.Stable(natural.StringSlice(names))
	sources := make([]Source, len(names))
	for i, name := range names {
		sources[i] = Source{Name: name, Path: byName[name]}
	}
	return sources, nil
}

// Names returns the names of sources in order.
func Names(sources []Source) []string {
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name
	}
	return names
}

// Select returns the source called name. The error lists the available
// names when there is no match.
func Select(sources []Source, name string) (Source, error) {
	for _, s := range sources {
		if s.Name == name {
			return s, nil
		}
	}
	return Source{}, fmt.Errorf("%w: %q%s", ErrSourceNotFound, name, hints.ForSources(Names(sources)))
}

// SelectDefault returns the configured default source.
func SelectDefault(sources []Source, defaultName string) (Source, error) {
	if defaultName == "" {
		return Source{}, fmt.Errorf("%w%s", ErrNoDefaultSource, hints.ForDefaultSource(Names(sources)))
	}
	s, err := Select(sources, defaultName)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %q%s", ErrNoDefaultSource, defaultName, hints.ForDefaultSource(Names(sources)))
	}
	return s, nil
}
