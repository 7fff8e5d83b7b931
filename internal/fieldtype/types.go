// Package fieldtype provides the fixed registry of supported field types.
package fieldtype

// SchemaKind is the metadata-schema shape a field type produces.
type SchemaKind string

const (
	SchemaPlainText SchemaKind = "plain-text"
	SchemaRichText  SchemaKind = "rich-text"
	SchemaNumeric   SchemaKind = "numeric"
	SchemaMedia     SchemaKind = "media-reference"
	SchemaChoice    SchemaKind = "choice"
	SchemaDate      SchemaKind = "date"
)

// DisplayHint tells the single-item template how to show a value.
type DisplayHint string

const (
	// DisplayEcho prints the escaped value.
	DisplayEcho DisplayHint = "echo"

	// DisplayRich prints the value as trusted post markup.
	DisplayRich DisplayHint = "rich"

	// DisplayNumber prints the value through number_format_i18n.
	DisplayNumber DisplayHint = "number"

	// DisplayImage prints an <img> tag for an ACF image array.
	DisplayImage DisplayHint = "image"

	// DisplayDate prints the stored Y-m-d value in the site date format.
	DisplayDate DisplayHint = "date"
)

// Choice is one option of a select field.
type Choice struct {
	Value string
	Label string
}

// Settings are the fixed ACF settings a field type contributes to its
// field-group entry. Empty values are omitted from the JSON.
type Settings struct {
	ReturnFormat  string
	PreviewSize   string
	Tabs          string
	Toolbar       string
	DisplayFormat string
	Choices       []Choice
}

// Descriptor identifies one supported field kind.
type Descriptor struct {
	// Token is the identifier used on the command line (e.g. "text").
	Token string

	// Label is the human description shown by list-types.
	Label string

	// ACFType is the ACF field "type" value.
	ACFType string

	SchemaKind  SchemaKind
	DisplayHint DisplayHint
	Settings    Settings
}

// clone returns a copy that shares no slices with the registry.
func (d Descriptor) clone() Descriptor {
	if d.Settings.Choices != nil {
		d.Settings.Choices = append([]Choice(nil), d.Settings.Choices...)
	}
	return d
}
