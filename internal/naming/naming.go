// Package naming derives every naming variant of a module from its raw name.
package naming

import (
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/wpgen/cli/internal/errors"
)

// PluralSuffix is appended to singular labels by Pluralize.
const PluralSuffix = "s"

// Names holds the naming variants derived from a raw module name.
type Names struct {
	// Slug is lowercase and hyphenated: directory, file and shortcode root.
	Slug string

	// Identifier is Slug with underscores: post type key and capability base.
	Identifier string

	// LabelSingular is the raw name with whitespace collapsed, casing preserved.
	LabelSingular string

	// LabelPlural is LabelSingular pluralized.
	LabelPlural string
}

// Normalize derives Names from a raw module name.
// Returns an error wrapping ErrInvalidModuleName if the name is empty
// or has no letters.
func Normalize(raw string) (Names, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Names{}, oerrors.NewModuleNameError(raw, "module name cannot be empty")
	}
	if !strings.ContainsFunc(trimmed, unicode.IsLetter) {
		return Names{}, oerrors.NewModuleNameError(raw, "module name must contain at least one letter")
	}

	s := Slug(trimmed)
	if s == "" {
		return Names{}, oerrors.NewModuleNameError(raw, "module name has no characters usable in a slug")
	}

	singular := strings.Join(strings.Fields(trimmed), " ")

	return Names{
		Slug:          s,
		Identifier:    Identifier(s),
		LabelSingular: singular,
		LabelPlural:   Pluralize(singular),
	}, nil
}

// Slug lowercases s, folds accents to ASCII, turns runs of spaces,
// underscores and hyphens into a single hyphen, and drops every other
// character outside [a-z0-9].
func Slug(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		// Symbols are dropped before transliteration so slug.Make never
		// spells them out ("&" would become "and").
		w = strings.Map(keepWordRune, w)
		if w == "" {
			continue
		}
		w = strings.Map(keepSlugRune, slug.Make(w))
		if w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, "-")
}

// Identifier converts a slug to an underscore-separated identifier.
func Identifier(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// Pluralize appends PluralSuffix unless label already ends with it.
// Applying it twice yields the same result as applying it once.
func Pluralize(label string) string {
	if label == "" || strings.HasSuffix(strings.ToLower(label), PluralSuffix) {
		return label
	}
	return label + PluralSuffix
}

// FieldName converts a raw field name to the snake_case meta key used in
// the field group and templates.
func FieldName(raw string) string {
	return Identifier(Slug(raw))
}

// FieldLabel converts a raw field name to a title-cased label
// ("date_debut" -> "Date Debut").
func FieldLabel(raw string) string {
	words := strings.FieldsFunc(raw, isSeparator)
	return cases.Title(language.Und).String(strings.Join(words, " "))
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '_' || r == '-'
}

func keepWordRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return r
	}
	return -1
}

func keepSlugRune(r rune) rune {
	if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
		return r
	}
	return -1
}
