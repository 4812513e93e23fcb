package render

import "errors"

// Sentinel errors for rendering.
var (
	ErrTemplate      = errors.New("page template failed")
	ErrUnknownStyle  = errors.New("unknown highlight style")
	ErrHighlightMode = errors.New("invalid highlight mode")
	ErrNilDocument   = errors.New("page has no document")
	ErrMarkdown      = errors.New("markdown conversion failed")
)
