// Package packager writes self-contained zip packages of built pages.
package packager

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	zip "github.com/hidez8891/zip"
	"go.uber.org/multierr"

	"github.com/alnah/go-sheet2html/internal/fileutil"
)

// Sentinel errors for packaging.
var (
	ErrEmptyPackage = errors.New("package has no entries")
	ErrInvalidEntry = errors.New("invalid package entry")
)

// Entry is one file of a package. Exactly one of Source and Data is used:
// Source names a file on disk, Data holds the content directly.
type Entry struct {
	Name   string // slash-separated path below the package root
	Source string
	Data   []byte
}

// Write creates zipPath containing every entry below root/. Entries are
// stored in name order with the given modification time, so identical
// input produces an identical archive. The archive is written atomically.
func Write(zipPath, root string, entries []Entry, modified time.Time) error {
	if len(entries) == 0 {
		return ErrEmptyPackage
	}
	if err := validateName(root); err != nil {
		return err
	}

	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	for i, e := range sorted {
		if err := validateName(e.Name); err != nil {
			return err
		}
		if i > 0 && sorted[i-1].Name == e.Name {
			return fmt.Errorf("%w: duplicate %q", ErrInvalidEntry, e.Name)
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range sorted {
		if err := addEntry(zw, root+"/"+e.Name, e, modified); err != nil {
			return multierr.Append(err, zw.Close())
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", zipPath, err)
	}

	return fileutil.WriteFileAtomic(zipPath, buf.Bytes())
}

func addEntry(zw *zip.Writer, name string, e Entry, modified time.Time) (err error) {
	hdr := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified}
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}

	if e.Source == "" {
		if _, err := w.Write(e.Data); err != nil {
			return fmt.Errorf("adding %s: %w", name, err)
		}
		return nil
	}

	f, err := os.Open(e.Source) // #nosec G304 -- paths come from the build output
	if err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("adding %s: %w", name, err)
	}
	return nil
}

// validateName accepts clean, relative, slash-separated names.
func validateName(name string) error {
	if name == "" || strings.Contains(name, "\\") || strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidEntry, name)
	}
	if path.Clean(name) != name || name == ".." || strings.HasPrefix(name, "../") {
		return fmt.Errorf("%w: %q", ErrInvalidEntry, name)
	}
	return nil
}
