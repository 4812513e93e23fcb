package assets

// Template names.
const (
	TemplatePage    = "page"
	TemplateLanding = "landing"
)

// AssetLoader defines the contract for loading templates and static files.
type AssetLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// LoadStatic loads a static file by file name (e.g. "style.css").
	// Returns ErrStaticNotFound if the file doesn't exist.
	LoadStatic(name string) ([]byte, error)

	// StaticNames lists the static file names, sorted.
	StaticNames() ([]string, error)
}
