package render

import (
	"strings"

	"github.com/wpgen/cli/internal/fieldtype"
	"github.com/wpgen/cli/internal/module"
	"github.com/wpgen/cli/internal/naming"
)

// symbolNamespace prefixes PHP symbols of modules whose identifier
// starts with a digit.
const symbolNamespace = "wpgen_"

// maxSummaryFields caps the fields shown per item in listings.
const maxSummaryFields = 3

// templateData is built fresh for each render; templates only read it.
type templateData struct {
	Slug       string
	Identifier string
	Singular   string
	Plural     string

	// IdentifierPlural is the plural capability type (produits). It never
	// equals Identifier.
	IdentifierPlural string

	// Prefix is the PHP function prefix (produit, wpgen_2024_events).
	Prefix string

	// Const is the PHP constant prefix (PRODUIT).
	Const string

	JSONDir string

	Meta         module.Meta
	Paths        Paths
	Capabilities []capability
	Fields       []fieldData

	// Summary is the subset of Fields shown in archive and list views.
	Summary []fieldData

	ShortcodeList   string
	ShortcodeSingle string
}

type fieldData struct {
	// Module is the module slug, used for CSS classes and the text domain.
	Module string

	Name    string
	Label   string
	Token   string
	ACFType string
	Kind    fieldtype.SchemaKind
	Hint    fieldtype.DisplayHint
}

// capability maps a WordPress post capability to the module's own name.
type capability struct {
	Generic string
	Mapped  string
}

func newTemplateData(spec *module.Spec) *templateData {
	slug := spec.Slug()
	list, single := ShortcodeNames(slug)

	fields := spec.Fields()
	data := &templateData{
		Slug:             slug,
		Identifier:       spec.Identifier(),
		IdentifierPlural: capabilityPlural(spec.Identifier()),
		Prefix:           symbolPrefix(spec.Identifier()),
		Singular:         spec.LabelSingular(),
		Plural:           spec.LabelPlural(),
		Const:            strings.ToUpper(symbolPrefix(spec.Identifier())),
		JSONDir:          ACFJSONDir,
		Meta:             spec.Meta(),
		Paths:            PathsFor(spec),
		Capabilities:     capabilities(spec.Identifier()),
		Fields:           make([]fieldData, 0, len(fields)),
		ShortcodeList:    list,
		ShortcodeSingle:  single,
	}

	for _, f := range fields {
		fd := fieldData{
			Module:  slug,
			Name:    f.Name,
			Label:   f.Label,
			Token:   f.Type.Token,
			ACFType: f.Type.ACFType,
			Kind:    f.Type.SchemaKind,
			Hint:    f.Type.DisplayHint,
		}
		data.Fields = append(data.Fields, fd)
		if fd.Hint != fieldtype.DisplayRich && len(data.Summary) < maxSummaryFields {
			data.Summary = append(data.Summary, fd)
		}
	}

	return data
}

// capabilities returns the full standard capability set of a post type
// whose capability_type is identifier, in a fixed order.
func capabilities(identifier string) []capability {
	one := identifier
	many := capabilityPlural(identifier)
	return []capability{
		{"edit_post", "edit_" + one},
		{"read_post", "read_" + one},
		{"delete_post", "delete_" + one},
		{"edit_posts", "edit_" + many},
		{"edit_others_posts", "edit_others_" + many},
		{"edit_private_posts", "edit_private_" + many},
		{"edit_published_posts", "edit_published_" + many},
		{"publish_posts", "publish_" + many},
		{"read_private_posts", "read_private_" + many},
		{"delete_posts", "delete_" + many},
		{"delete_private_posts", "delete_private_" + many},
		{"delete_published_posts", "delete_published_" + many},
		{"delete_others_posts", "delete_others_" + many},
		{"create_posts", "edit_" + many},
	}
}

// capabilityPlural returns the plural capability base of identifier.
// Identifiers that already read as plural get an _items suffix so the
// singular and plural capabilities stay distinct.
func capabilityPlural(identifier string) string {
	if many := naming.Pluralize(identifier); many != identifier {
		return many
	}
	return identifier + "_items"
}

// symbolPrefix returns identifier as a valid PHP symbol prefix: names
// cannot start with a digit.
func symbolPrefix(identifier string) string {
	if identifier != "" && identifier[0] >= '0' && identifier[0] <= '9' {
		return symbolNamespace + identifier
	}
	return identifier
}

// Primitive reports whether the capability is granted to roles directly;
// the post meta capabilities and create_posts are mapped, not granted.
func (c capability) Primitive() bool {
	switch c.Generic {
	case "edit_post", "read_post", "delete_post", "create_posts":
		return false
	default:
		return true
	}
}
