package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
		wantContain  string
	}{
		{
			name:         "loads page template",
			templateName: TemplatePage,
			wantContain:  "{{.Sidebar}}",
		},
		{
			name:         "loads landing template",
			templateName: TemplateLanding,
			wantContain:  "{{- range .Entries}}",
		},
		{
			name:         "returns ErrTemplateNotFound for nonexistent",
			templateName: "nonexistent-template-xyz",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "returns ErrInvalidAssetName for path traversal",
			templateName: "../secret",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadTemplate(%q) content should contain %q", tt.templateName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_ThemeBootstrap(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	for _, name := range []string{TemplatePage, TemplateLanding} {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			t.Fatalf("LoadTemplate(%q) error: %v", name, err)
		}
		for _, part := range []string{`"sheet2html-theme"`, `"light"`, `"dark"`, "prefers-color-scheme"} {
			if !strings.Contains(content, part) {
				t.Errorf("template %q should contain %s", name, part)
			}
		}
	}
}

func TestEmbeddedLoader_Static(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	names, err := loader.StaticNames()
	if err != nil {
		t.Fatalf("StaticNames() error: %v", err)
	}
	if !slices.Equal(names, []string{"app.js", "style.css"}) {
		t.Errorf("StaticNames() = %v, want [app.js style.css]", names)
	}

	css, err := loader.LoadStatic("style.css")
	if err != nil {
		t.Fatalf("LoadStatic(style.css) error: %v", err)
	}
	if !strings.Contains(string(css), `[data-theme="dark"]`) {
		t.Error("style.css should define the dark theme")
	}

	if _, err := loader.LoadStatic("missing.css"); !errors.Is(err, ErrStaticNotFound) {
		t.Errorf("LoadStatic(missing.css) error = %v, want ErrStaticNotFound", err)
	}
	if _, err := loader.LoadStatic("../go.mod"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStatic(../go.mod) error = %v, want ErrInvalidAssetName", err)
	}
}

func TestEmbeddedLoader_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()
	var _ AssetLoader = (*EmbeddedLoader)(nil)
}
