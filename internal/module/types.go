// Package module builds the validated, immutable description of a module
// to generate: its names, its ordered fields and its plugin metadata.
package module

import "github.com/wpgen/cli/internal/fieldtype"

// DefaultVersion is the plugin version written when none is configured.
const DefaultVersion = "1.0.0"

// MaxPostTypeLength is the longest post type key WordPress accepts.
const MaxPostTypeLength = 20

// Decl is one parsed name:type declaration, before type resolution.
type Decl struct {
	// Raw is the declaration as given on the command line.
	Raw string

	// Name is the normalized snake_case field name.
	Name string

	// Label is the human label derived from the raw name.
	Label string

	// Token is the field type token, not yet resolved.
	Token string
}

// Field is one resolved field of a module.
type Field struct {
	Name  string
	Label string
	Type  fieldtype.Descriptor
}

// Meta holds the plugin header values of the main descriptor file.
type Meta struct {
	Version     string
	Author      string
	Description string
}

// Option configures optional Spec values.
type Option func(*options)

type options struct {
	plural string
	meta   Meta
}

// WithPluralLabel overrides the derived plural label.
func WithPluralLabel(label string) Option {
	return func(o *options) {
		o.plural = label
	}
}

// WithVersion sets the plugin version.
func WithVersion(version string) Option {
	return func(o *options) {
		o.meta.Version = version
	}
}

// WithAuthor sets the plugin author.
func WithAuthor(author string) Option {
	return func(o *options) {
		o.meta.Author = author
	}
}

// WithDescription sets the plugin description.
func WithDescription(description string) Option {
	return func(o *options) {
		o.meta.Description = description
	}
}
