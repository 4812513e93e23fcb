package assets

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTemplateNotFound is returned when no page or landing template has the given name.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrStaticNotFound is returned when a stylesheet or script is missing.
	ErrStaticNotFound   = errors.New("static asset not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	// ErrInvalidBasePath is returned when the override directory is unusable.
	ErrInvalidBasePath = errors.New("invalid base path")
	ErrAssetRead       = errors.New("failed to read asset")
	// ErrPathTraversal is returned when a symlink resolves outside the override directory.
	ErrPathTraversal = errors.New("path traversal detected")
)

// ValidateAssetName accepts bare template names such as "page" or "landing".
// The loader appends ".html" itself, so dots are rejected along with separators.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case strings.ContainsAny(name, "/\\."):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateStaticName accepts file names like "style.css" that are copied
// verbatim into a site's assets directory.
func ValidateStaticName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case strings.HasPrefix(name, "."), strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
