package module

import (
	"fmt"
	"strings"

	oerrors "github.com/wpgen/cli/internal/errors"
	"github.com/wpgen/cli/internal/fieldtype"
	"github.com/wpgen/cli/internal/naming"
)

// Spec is the validated description of one module. It is immutable once
// built: accessors return copies.
type Spec struct {
	rawName string
	names   naming.Names
	fields  []Field
	meta    Meta
}

// ParseField parses a name:type declaration. The split happens on the
// first colon; the type token is not checked against the registry.
func ParseField(decl string) (Decl, error) {
	rawName, token, ok := strings.Cut(decl, ":")
	if !ok {
		return Decl{}, oerrors.NewFieldDeclarationError(decl, "", "missing ':' between field name and type")
	}

	rawName = strings.TrimSpace(rawName)
	token = strings.TrimSpace(token)

	if rawName == "" {
		return Decl{}, oerrors.NewFieldDeclarationError(decl, "", "field name is empty")
	}
	if token == "" {
		return Decl{}, oerrors.NewFieldDeclarationError(decl, rawName, "field type is empty")
	}

	name := naming.FieldName(rawName)
	if name == "" {
		return Decl{}, oerrors.NewFieldDeclarationError(decl, rawName, "field name has no characters usable in a meta key")
	}

	return Decl{
		Raw:   decl,
		Name:  name,
		Label: naming.FieldLabel(rawName),
		Token: token,
	}, nil
}

// New builds a Spec from a raw module name and field declarations.
//
// Validation runs in three passes so that errors surface in a stable
// order: the module name, then the syntax of every declaration, then the
// type of every declaration. Field names must be unique after
// normalization. An empty declaration list is accepted here and rejected
// by the renderer.
func New(name string, decls []string, opts ...Option) (*Spec, error) {
	names, err := naming.Normalize(name)
	if err != nil {
		return nil, err
	}

	parsed := make([]Decl, 0, len(decls))
	for _, d := range decls {
		p, err := ParseField(d)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, p)
	}

	fields := make([]Field, 0, len(parsed))
	seen := make(map[string]string, len(parsed))
	for _, p := range parsed {
		desc, err := fieldtype.Resolve(p.Token)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[p.Name]; dup {
			return nil, oerrors.NewFieldDeclarationError(p.Raw, p.Name,
				fmt.Sprintf("field name %q is already declared by %q", p.Name, first))
		}
		seen[p.Name] = p.Raw
		fields = append(fields, Field{Name: p.Name, Label: p.Label, Type: desc})
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if plural := strings.Join(strings.Fields(o.plural), " "); plural != "" {
		names.LabelPlural = plural
	}

	meta := o.meta
	if meta.Version == "" {
		meta.Version = DefaultVersion
	}
	if meta.Description == "" {
		meta.Description = fmt.Sprintf("Custom content type %s with its ACF fields, templates and shortcodes.", names.LabelSingular)
	}

	return &Spec{
		rawName: name,
		names:   names,
		fields:  fields,
		meta:    meta,
	}, nil
}

// RawName returns the module name as supplied.
func (s *Spec) RawName() string { return s.rawName }

// Names returns every naming variant of the module.
func (s *Spec) Names() naming.Names { return s.names }

// Slug returns the hyphenated module slug.
func (s *Spec) Slug() string { return s.names.Slug }

// Identifier returns the underscored module identifier.
func (s *Spec) Identifier() string { return s.names.Identifier }

// LabelSingular returns the singular human label.
func (s *Spec) LabelSingular() string { return s.names.LabelSingular }

// LabelPlural returns the plural human label.
func (s *Spec) LabelPlural() string { return s.names.LabelPlural }

// Meta returns the plugin header values.
func (s *Spec) Meta() Meta { return s.meta }

// Fields returns a copy of the fields in declaration order.
func (s *Spec) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		if f.Type.Settings.Choices != nil {
			f.Type.Settings.Choices = append([]fieldtype.Choice(nil), f.Type.Settings.Choices...)
		}
		out[i] = f
	}
	return out
}

// HasFields reports whether the module declares at least one field.
func (s *Spec) HasFields() bool { return len(s.fields) > 0 }

// Warnings returns non-fatal problems with the spec that the target
// platform may reject at runtime.
func (s *Spec) Warnings() []string {
	var warnings []string
	if len(s.names.Identifier) > MaxPostTypeLength {
		warnings = append(warnings, fmt.Sprintf(
			"post type key %q is %d characters; WordPress accepts at most %d",
			s.names.Identifier, len(s.names.Identifier), MaxPostTypeLength))
	}
	return warnings
}
