package render

// Paths locates shared output relative to the page being rendered.
type Paths struct {
	// AssetPrefix is prepended to "assets/" and "images/".
	AssetPrefix string
}

// PerSourcePaths returns the paths for a page at <out>/<name>/index.html.
func PerSourcePaths() Paths {
	return Paths{AssetPrefix: "../"}
}

// RootPaths returns the paths for a page at <out>/index.html.
func RootPaths() Paths {
	return Paths{AssetPrefix: "./"}
}

// Assets returns the asset directory prefix.
func (p Paths) Assets() string {
	return p.AssetPrefix + "assets/"
}

// Images returns the image directory prefix.
func (p Paths) Images() string {
	return p.AssetPrefix + "images/"
}
