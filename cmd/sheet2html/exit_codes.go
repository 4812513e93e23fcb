package main

import (
	"errors"
	"os"

	sheet2html "github.com/alnah/go-sheet2html"
	"github.com/alnah/go-sheet2html/internal/config"
	"github.com/alnah/go-sheet2html/internal/dateutil"
	"github.com/alnah/go-sheet2html/internal/logging"
	"github.com/alnah/go-sheet2html/internal/render"
)

// Exit codes for the sheet2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All selected sources built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or source selection
	ExitIO      = 3 // Unreadable source, unwritable output
	ExitContent = 4 // Source content cannot be published
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, sheet2html.ErrEmptySource) ||
		errors.Is(err, sheet2html.ErrEmptyContent) ||
		errors.Is(err, sheet2html.ErrInvalidImageReference) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, sheet2html.ErrReadSource) ||
		errors.Is(err, sheet2html.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/selection errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, render.ErrUnknownStyle) ||
		errors.Is(err, render.ErrHighlightMode) ||
		errors.Is(err, sheet2html.ErrSourceNotFound) ||
		errors.Is(err, sheet2html.ErrNoDefaultSource) ||
		errors.Is(err, sheet2html.ErrNoPublishableSources) ||
		errors.Is(err, sheet2html.ErrDuplicateSource) ||
		errors.Is(err, sheet2html.ErrUnsupportedSource) ||
		errors.Is(err, sheet2html.ErrSheetNotFound) ||
		errors.Is(err, sheet2html.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
