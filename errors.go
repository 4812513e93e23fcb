package sheet2html

import (
	"errors"

	"github.com/alnah/go-sheet2html/internal/model"
	"github.com/alnah/go-sheet2html/internal/sheet"
)

// Sentinel errors for library operations. Errors raised by internal
// packages are re-exported so callers only test against this package.
var (
	// Selection errors.
	ErrSourceNotFound       = errors.New("source not found")
	ErrNoDefaultSource      = errors.New("no default source configured or found")
	ErrNoPublishableSources = errors.New("no publishable sources")
	ErrDuplicateSource      = errors.New("duplicate source name")

	// Content errors.
	ErrEmptySource           = model.ErrEmptySource
	ErrEmptyContent          = model.ErrEmptyContent
	ErrInvalidImageReference = errors.New("invalid image reference")
	ErrUnsupportedSource     = sheet.ErrUnsupportedFormat
	ErrSheetNotFound         = sheet.ErrSheetNotFound

	// Build errors.
	ErrReadSource       = sheet.ErrReadSource
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrInternal         = errors.New("internal error")
)
