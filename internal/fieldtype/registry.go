package fieldtype

import (
	oerrors "github.com/wpgen/cli/internal/errors"
)

// Supported tokens, in listing order.
const (
	Text     = "text"
	Textarea = "textarea"
	Image    = "image"
	Number   = "number"
	Wysiwyg  = "wysiwyg"
	Select   = "select"
	Date     = "date"
)

var order = []string{Text, Textarea, Image, Number, Wysiwyg, Select, Date}

// registry is built once and never mutated.
var registry = map[string]Descriptor{
	Text: {
		Token:       Text,
		Label:       "Single-line text",
		ACFType:     "text",
		SchemaKind:  SchemaPlainText,
		DisplayHint: DisplayEcho,
	},
	Textarea: {
		Token:       Textarea,
		Label:       "Multi-line text",
		ACFType:     "textarea",
		SchemaKind:  SchemaPlainText,
		DisplayHint: DisplayEcho,
	},
	Image: {
		Token:       Image,
		Label:       "Image from the media library",
		ACFType:     "image",
		SchemaKind:  SchemaMedia,
		DisplayHint: DisplayImage,
		Settings: Settings{
			ReturnFormat: "array",
			PreviewSize:  "medium",
		},
	},
	Number: {
		Token:       Number,
		Label:       "Number",
		ACFType:     "number",
		SchemaKind:  SchemaNumeric,
		DisplayHint: DisplayNumber,
	},
	Wysiwyg: {
		Token:       Wysiwyg,
		Label:       "WYSIWYG rich text editor",
		ACFType:     "wysiwyg",
		SchemaKind:  SchemaRichText,
		DisplayHint: DisplayRich,
		Settings: Settings{
			Tabs:    "all",
			Toolbar: "full",
		},
	},
	Select: {
		Token:       Select,
		Label:       "Drop-down list",
		ACFType:     "select",
		SchemaKind:  SchemaChoice,
		DisplayHint: DisplayEcho,
		Settings: Settings{
			Choices: []Choice{
				{Value: "option1", Label: "Option 1"},
				{Value: "option2", Label: "Option 2"},
			},
		},
	},
	Date: {
		Token:       Date,
		Label:       "Date picker",
		ACFType:     "date_picker",
		SchemaKind:  SchemaDate,
		DisplayHint: DisplayDate,
		Settings: Settings{
			DisplayFormat: "d/m/Y",
			ReturnFormat:  "Y-m-d",
		},
	},
}

// Resolve returns the descriptor for token.
// Returns an error wrapping ErrUnknownFieldType if token is not supported.
func Resolve(token string) (Descriptor, error) {
	d, ok := registry[token]
	if !ok {
		return Descriptor{}, oerrors.NewUnknownFieldTypeError(token, Tokens())
	}
	return d.clone(), nil
}

// Tokens returns all supported tokens in listing order.
func Tokens() []string {
	return append([]string(nil), order...)
}

// All returns every descriptor in listing order.
func All() []Descriptor {
	all := make([]Descriptor, 0, len(order))
	for _, token := range order {
		all = append(all, registry[token].clone())
	}
	return all
}
