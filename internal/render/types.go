// Package render turns a module spec into the text of every generated file.
package render

// Artifact is one generated file.
type Artifact struct {
	// Path is slash-separated and relative to the module directory.
	Path string

	// Content is the complete file content.
	Content []byte
}

// Paths lists the relative path of every artifact of a module. Every
// file that references another one goes through Paths, so names and
// cross-references cannot drift apart.
type Paths struct {
	Main       string
	PostType   string
	FieldGroup string
	Shortcode  string
	Single     string
	Archive    string
	Readme     string
}

// All returns the paths in artifact order.
func (p Paths) All() []string {
	return []string{p.Main, p.PostType, p.FieldGroup, p.Shortcode, p.Single, p.Archive, p.Readme}
}
