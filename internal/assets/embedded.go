package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed static/*
var static embed.FS

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// LoadStatic loads a static file from embedded assets.
func (e *EmbeddedLoader) LoadStatic(name string) ([]byte, error) {
	if err := ValidateStaticName(name); err != nil {
		return nil, err
	}
	content, err := static.ReadFile("static/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStaticNotFound, name)
	}
	return content, nil
}

// StaticNames lists the embedded static files.
func (e *EmbeddedLoader) StaticNames() ([]string, error) {
	entries, err := fs.ReadDir(static, "static")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
