package render

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"text/template"

	oerrors "github.com/wpgen/cli/internal/errors"
	"github.com/wpgen/cli/internal/module"
	"github.com/wpgen/cli/internal/output"
)

//go:embed assets/*.tmpl
var assetsFS embed.FS

// Template names inside the assets directory, one per artifact plus the
// shared field partial.
const (
	tmplMain      = "plugin.php.tmpl"
	tmplPostType  = "cpt.php.tmpl"
	tmplShortcode = "shortcode.php.tmpl"
	tmplSingle    = "single.php.tmpl"
	tmplArchive   = "archive.php.tmpl"
	tmplReadme    = "README.md.tmpl"
	tmplPartials  = "partials.tmpl"
)

// TemplateNames returns the names of every overridable template.
func TemplateNames() []string {
	return []string{tmplMain, tmplPostType, tmplShortcode, tmplSingle, tmplArchive, tmplReadme, tmplPartials}
}

var defaultTemplates = template.Must(
	template.New("wp-gen").Funcs(funcMap()).ParseFS(assetsFS, "assets/*.tmpl"),
)

// Renderer renders module specs with a fixed, read-only template set.
// A Renderer is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a renderer using the embedded templates.
func NewRenderer() *Renderer {
	return &Renderer{tmpl: defaultTemplates}
}

// NewRendererWithOverrides creates a renderer whose templates are replaced
// by the same-named *.tmpl files found at the root of overrides. Files
// with unknown names are rejected.
func NewRendererWithOverrides(overrides fs.FS) (*Renderer, error) {
	matches, err := fs.Glob(overrides, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("listing template overrides: %w", err)
	}
	if len(matches) == 0 {
		return NewRenderer(), nil
	}

	known := TemplateNames()
	for _, m := range matches {
		if !slices.Contains(known, path.Base(m)) {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("unknown template override %s", m),
				m, "",
				fmt.Sprintf("Overridable templates: %v", known))
		}
	}

	tmpl, err := defaultTemplates.Clone()
	if err != nil {
		return nil, fmt.Errorf("cloning templates: %w", err)
	}
	if _, err := tmpl.ParseFS(overrides, matches...); err != nil {
		return nil, fmt.Errorf("parsing template overrides: %w", err)
	}

	output.Debug("loaded template overrides", "files", matches)
	return &Renderer{tmpl: tmpl}, nil
}

// Render returns the seven artifacts of spec with the embedded templates.
func Render(spec *module.Spec) ([]Artifact, error) {
	return NewRenderer().Render(spec)
}

// Render returns the artifacts of spec in a fixed order: main descriptor,
// post type, field group, shortcodes, single template, archive template,
// README. It fails with ErrEmptyFieldList when spec has no fields.
func (r *Renderer) Render(spec *module.Spec) ([]Artifact, error) {
	if spec == nil {
		return nil, oerrors.NewEmptyFieldListError("")
	}
	if !spec.HasFields() {
		return nil, oerrors.NewEmptyFieldListError(spec.RawName())
	}

	data := newTemplateData(spec)
	p := data.Paths

	steps := []struct {
		path   string
		render func() ([]byte, error)
	}{
		{p.Main, r.execute(tmplMain, data)},
		{p.PostType, r.execute(tmplPostType, data)},
		{p.FieldGroup, func() ([]byte, error) { return renderFieldGroup(spec) }},
		{p.Shortcode, r.execute(tmplShortcode, data)},
		{p.Single, r.execute(tmplSingle, data)},
		{p.Archive, r.execute(tmplArchive, data)},
		{p.Readme, r.execute(tmplReadme, data)},
	}

	artifacts := make([]Artifact, 0, len(steps))
	for _, step := range steps {
		content, err := step.render()
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", step.path, err)
		}
		output.Debug("rendered artifact", "path", step.path, "bytes", len(content))
		artifacts = append(artifacts, Artifact{Path: step.path, Content: content})
	}

	return artifacts, nil
}

func (r *Renderer) execute(name string, data *templateData) func() ([]byte, error) {
	return func() ([]byte, error) {
		var buf bytes.Buffer
		if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", name, err)
		}
		return buf.Bytes(), nil
	}
}
