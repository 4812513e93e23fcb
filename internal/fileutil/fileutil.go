// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath = errors.New("path cannot be empty")
	ErrNotFile   = errors.New("not a regular file")
)

// Default permissions for generated output.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// WriteFileAtomic writes data to path through a temporary file in the same
// directory followed by a rename, so readers never observe a partial file
// and a failed write leaves any previous file intact. Parent directories
// are created as needed.
func WriteFileAtomic(path string, data []byte) error {
	return writeAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// CopyFileAtomic copies the regular file src to dst with the same
// guarantees as WriteFileAtomic. Concurrent copies to the same dst end with
// one complete copy.
func CopyFileAtomic(src, dst string) (err error) {
	if src == "" || dst == "" {
		return ErrEmptyPath
	}
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotFile, src)
	}

	in, err := os.Open(src) // #nosec G304 -- path validated by caller
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	defer func() { err = multierr.Append(err, in.Close()) }()

	return writeAtomic(dst, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}

// writeAtomic streams content into a temp file next to path and renames it.
func writeAtomic(path string, fill func(io.Writer) error) (err error) {
	if path == "" {
		return ErrEmptyPath
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			err = multierr.Append(err, removeIfExists(tmpPath))
		}
	}()

	if err := fill(tmp); err != nil {
		return multierr.Append(fmt.Errorf("writing %s: %w", path, err), tmp.Close())
	}
	if err := tmp.Chmod(FilePerm); err != nil {
		return multierr.Append(fmt.Errorf("setting permissions on %s: %w", path, err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "sheet2html" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/sheet2html/site.yaml" -> true (absolute)
//   - "C:\config\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsBareName reports whether s is a plain file name: non-empty, no path
// separators, no NUL and not a dot entry.
func IsBareName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\\x00")
}
