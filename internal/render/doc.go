// Package render turns a document model into static HTML pages.
//
// A Renderer owns the parsed page shell templates and the content options
// (language, highlight mode, timestamp format, markdown). Render produces
// one per-source page: a sidebar table of contents and a body of chapter
// and section blocks, wrapped in the page template. Landing produces the
// index page linking every built source.
//
// All generated markup escapes source text. Markdown items are the only
// content interpreted as markup, and raw HTML inside them is dropped.
package render
