package packager

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	zip "github.com/hidez8891/zip"
)

var stamp = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func readZip(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	files := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Open(%s) error = %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("ReadAll(%s) error = %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	img := filepath.Join(dir, "shot.png")
	if err := os.WriteFile(img, []byte("png"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	zipPath := filepath.Join(dir, "packages", "guide.zip")
	err := Write(zipPath, "guide", []Entry{
		{Name: "index.html", Data: []byte("<html>")},
		{Name: "images/shot.png", Source: img},
		{Name: "assets/style.css", Data: []byte("body{}")},
	}, stamp)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	files := readZip(t, zipPath)
	want := map[string]string{
		"guide/index.html":       "<html>",
		"guide/images/shot.png":  "png",
		"guide/assets/style.css": "body{}",
	}
	if len(files) != len(want) {
		t.Errorf("archive has %d files, want %d: %v", len(files), len(want), files)
	}
	for name, content := range want {
		if files[name] != content {
			t.Errorf("%s = %q, want %q", name, files[name], content)
		}
	}
}

func TestWrite_Deterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entries := []Entry{
		{Name: "b.txt", Data: []byte("b")},
		{Name: "a.txt", Data: []byte("a")},
	}
	first := filepath.Join(dir, "one.zip")
	second := filepath.Join(dir, "two.zip")
	if err := Write(first, "p", entries, stamp); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	reversed := []Entry{entries[1], entries[0]}
	if err := Write(second, "p", reversed, stamp); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("archives of the same entries should be identical")
	}
}

func TestWrite_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		root    string
		entries []Entry
		wantErr error
	}{
		{name: "no entries", root: "p", wantErr: ErrEmptyPackage},
		{name: "bad root", root: "../p", entries: []Entry{{Name: "a", Data: nil}}, wantErr: ErrInvalidEntry},
		{name: "traversal", root: "p", entries: []Entry{{Name: "../a"}}, wantErr: ErrInvalidEntry},
		{name: "absolute", root: "p", entries: []Entry{{Name: "/etc/a"}}, wantErr: ErrInvalidEntry},
		{name: "backslash", root: "p", entries: []Entry{{Name: `a\b`}}, wantErr: ErrInvalidEntry},
		{name: "duplicate", root: "p", entries: []Entry{{Name: "a"}, {Name: "a"}}, wantErr: ErrInvalidEntry},
		{name: "missing source", root: "p", entries: []Entry{{Name: "a", Source: filepath.Join(dir, "nope")}}, wantErr: os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			zipPath := filepath.Join(dir, tt.name+".zip")
			err := Write(zipPath, tt.root, tt.entries, stamp)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Write() error = %v, want %v", err, tt.wantErr)
			}
			if _, statErr := os.Stat(zipPath); statErr == nil {
				t.Error("failed Write() should not leave an archive")
			}
		})
	}
}
