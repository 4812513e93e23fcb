package sheet2html

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"github.com/alnah/go-sheet2html/internal/fileutil"
	"github.com/alnah/go-sheet2html/internal/hints"
	"github.com/alnah/go-sheet2html/internal/model"
)

// sniffLength is the header size filetype needs to detect image formats.
const sniffLength = 262

// resolveImages checks every image item before anything is copied: the
// cell must hold a bare file name that exists in imageDir. It returns the
// distinct file names in sorted order.
func resolveImages(refs []model.Item, imageDir string) ([]string, error) {
	if len(refs) > 0 && !fileutil.DirExists(imageDir) {
		return nil, fmt.Errorf("%w: image directory %s does not exist (%d references)%s",
			ErrInvalidImageReference, imageDir, len(refs), hints.ForImageReference(imageDir))
	}

	var problems []string
	seen := make(map[string]bool)
	var files []string

	for _, it := range refs {
		name := strings.TrimSpace(it.Body)
		switch {
		case !fileutil.IsBareName(name):
			problems = append(problems, fmt.Sprintf("line %d: %q is not a bare file name", it.Line, name))
		case !fileutil.FileExists(filepath.Join(imageDir, name)):
			problems = append(problems, fmt.Sprintf("line %d: %q not found", it.Line, name))
		case !seen[name]:
			seen[name] = true
			files = append(files, name)
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s%s", ErrInvalidImageReference, strings.Join(problems, "; "), hints.ForImageReference(imageDir))
	}
	slices.Sort(files)
	return files, nil
}

// copyImages copies files from imageDir to <outDir>/images/. Each copy is
// atomic, so builds sharing an image do not corrupt it.
func copyImages(files []string, imageDir, outDir string, log *zap.Logger) error {
	for _, name := range files {
		src := filepath.Join(imageDir, name)
		warnIfNotImage(src, log)
		dst := filepath.Join(outDir, imagesDir, name)
		if err := fileutil.CopyFileAtomic(src, dst); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}

// warnIfNotImage logs a warning when the file content is not a known
// image format. SVG is text and is trusted by extension. Unreadable files
// are left to the copy to report.
func warnIfNotImage(path string, log *zap.Logger) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return
	}
	f, err := os.Open(path) // #nosec G304 -- validated image reference
	if err != nil {
		return
	}
	defer f.Close()

	head := make([]byte, sniffLength)
	n, _ := f.Read(head)
	if n == 0 || !filetype.IsImage(head[:n]) {
		log.Warn("Image reference does not look like an image", zap.String("file", filepath.Base(path)))
	}
}
