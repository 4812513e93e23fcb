// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// maxListed caps how many names a hint lists before summarizing.
const maxListed = 10

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(toSlash(p), "/sheet2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForSources returns a hint listing the publishable source names.
func ForSources(available []string) string {
	if len(available) == 0 {
		return format("no publishable sources; check --sources and the work-in-progress marker")
	}
	return format("available: " + joinNames(available))
}

// ForDefaultSource returns hints for a missing default source.
func ForDefaultSource(available []string) string {
	hint := "set sources.default in the config, SHEET2HTML_DEFAULT_SOURCE, or use --source/--all"
	if len(available) > 0 {
		hint += "; available: " + joinNames(available)
	}
	return format(hint)
}

// ForImageReference returns hints for invalid image references.
func ForImageReference(imageDir string) string {
	return format("image cells must hold a bare file name present in " + imageDir)
}

// ForEmptySource returns hints for sources without usable rows.
func ForEmptySource() string {
	return format("rows need Chapter, Section and Type; the first row must be the header")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func joinNames(names []string) string {
	if len(names) <= maxListed {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:maxListed], ", ") + ", ..."
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
