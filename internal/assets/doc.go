// Package assets provides the page templates and the static files (CSS,
// JavaScript) shared by every generated site.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in theme)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the site builder. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is not
// found. A custom directory may therefore override a single file, such as
// style.css, and keep every other built-in asset.
//
// # Directory Structure
//
//	{basePath}/
//	├── static/
//	│   ├── style.css            # copied to <out>/assets/
//	│   └── app.js
//	└── templates/
//	    ├── page.html            # per-source page shell
//	    └── landing.html         # landing page
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
