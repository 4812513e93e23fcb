package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2024, time.May, 1, 14, 30, 0, 0, time.UTC)

const csvHeader = "Chapter,Section,Order,Type,Lang,Body,Collapsed\n"

// workspace is a temporary sources/images/site layout.
type workspace struct {
	root    string
	sources string
	images  string
	out     string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	root := t.TempDir()
	w := workspace{
		root:    root,
		sources: filepath.Join(root, "sources"),
		images:  filepath.Join(root, "images"),
		out:     filepath.Join(root, "site"),
	}
	for _, dir := range []string{w.sources, w.images} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	return w
}

// source writes a CSV source with a header and the given rows.
func (w workspace) source(t *testing.T, name string, rows ...string) {
	t.Helper()
	content := csvHeader + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(w.sources, name+".csv"), []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

// file writes content below the workspace root and returns its path.
func (w workspace) file(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(w.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// dirArgs points the CLI at the workspace directories.
func (w workspace) dirArgs(extra ...string) []string {
	return append([]string{"--sources", w.sources, "--images", w.images, "--output", w.out}, extra...)
}

// testEnv returns an Environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Environment{
		Now:    func() time.Time { return fixedTime },
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
