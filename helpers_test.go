package sheet2html

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2024, time.May, 1, 14, 30, 0, 0, time.UTC)

// pngBytes is a minimal PNG header, enough for content sniffing.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

const csvHeader = "Chapter,Section,Order,Type,Lang,Body,Collapsed\n"

// project is a temporary source/image/output layout.
type project struct {
	sources string
	images  string
	out     string
}

func newProject(t *testing.T) project {
	t.Helper()
	root := t.TempDir()
	p := project{
		sources: filepath.Join(root, "sources"),
		images:  filepath.Join(root, "images"),
		out:     filepath.Join(root, "site"),
	}
	for _, dir := range []string{p.sources, p.images} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return p
}

// source writes a CSV source from body rows and returns it.
func (p project) source(t *testing.T, name string, rows ...string) Source {
	t.Helper()
	path := filepath.Join(p.sources, name+".csv")
	content := csvHeader + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return Source{Name: name, Path: path}
}

func (p project) image(t *testing.T, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(p.images, name), data, 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func (p project) builder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	base := []Option{
		WithNow(func() time.Time { return fixedTime }),
		WithImageDir(p.images),
		WithTitle("Handbook"),
	}
	b, err := NewBuilder(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	return b
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}
