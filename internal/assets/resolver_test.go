package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("HasCustomLoader() = true, want false")
		}
	})

	t.Run("custom directory", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !r.HasCustomLoader() {
			t.Error("HasCustomLoader() = false, want true")
		}
	})

	t.Run("invalid directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_CustomFirst(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "static/style.css", "/* custom */")
	writeAsset(t, tmpDir, "static/logo.svg", "<svg/>")
	writeAsset(t, tmpDir, "templates/landing.html", "custom landing")

	r, err := NewAssetResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	css, err := r.LoadStatic("style.css")
	if err != nil {
		t.Fatalf("LoadStatic(style.css) error = %v", err)
	}
	if string(css) != "/* custom */" {
		t.Errorf("LoadStatic(style.css) = %q, want custom content", css)
	}

	js, err := r.LoadStatic("app.js")
	if err != nil {
		t.Fatalf("LoadStatic(app.js) error = %v", err)
	}
	if !strings.Contains(string(js), "sheet2html-theme") {
		t.Error("LoadStatic(app.js) should fall back to the embedded script")
	}

	landing, err := r.LoadTemplate(TemplateLanding)
	if err != nil {
		t.Fatalf("LoadTemplate(landing) error = %v", err)
	}
	if landing != "custom landing" {
		t.Errorf("LoadTemplate(landing) = %q, want custom content", landing)
	}

	page, err := r.LoadTemplate(TemplatePage)
	if err != nil {
		t.Fatalf("LoadTemplate(page) error = %v", err)
	}
	if !strings.Contains(page, "{{.Sidebar}}") {
		t.Error("LoadTemplate(page) should fall back to the embedded template")
	}

	names, err := r.StaticNames()
	if err != nil {
		t.Fatalf("StaticNames() error = %v", err)
	}
	want := []string{"app.js", "logo.svg", "style.css"}
	if !slices.Equal(names, want) {
		t.Errorf("StaticNames() = %v, want %v", names, want)
	}
}

func TestAssetResolver_NoFallbackOnValidationError(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	if _, err := r.LoadTemplate("../page"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadTemplate(../page) error = %v, want ErrInvalidAssetName", err)
	}
	if _, err := r.LoadStatic("missing.css"); !errors.Is(err, ErrStaticNotFound) {
		t.Errorf("LoadStatic(missing.css) error = %v, want ErrStaticNotFound", err)
	}
}
