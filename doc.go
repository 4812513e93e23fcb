// Package sheet2html publishes spreadsheet workbooks as static HTML
// documentation sites.
//
// # Quick Start
//
// Discover the workbooks in a directory, then build them into a site:
//
//	sources, err := sheet2html.Discover("sources", sheet2html.DefaultDiscoveryRules())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b, err := sheet2html.NewBuilder(
//	    sheet2html.WithTitle("Team handbook"),
//	    sheet2html.WithImageDir("images"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	site := sheet2html.NewSite(b, sheet2html.SiteOptions{OutDir: "site", Landing: true})
//	result, err := site.Build(ctx, sources)
//
// # Source Format
//
// Each workbook (.xlsx, .xlsm) or CSV file holds one row per content block
// below a header row naming the columns Chapter, Section, Order, Type,
// Lang, Body and Collapsed. Type is one of text, code, note, image or
// markdown; anything else renders as text.
//
// # Output Layout
//
//	site/
//	├── index.html            landing page (optional)
//	├── assets/               style.css, app.js, highlight.css
//	├── images/               images referenced by any source
//	├── <name>/index.html     one page per source
//	└── packages/<name>.zip   self-contained copy of one page (optional)
//
// # Custom Assets
//
// WithAssetPath points at a directory whose templates/page.html,
// templates/landing.html and static/* files replace the embedded ones
// file by file.
package sheet2html
