package render

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/wpgen/cli/internal/module"
)

// Directory names inside a module.
const (
	IncludesDir  = "includes"
	TemplatesDir = "templates"
	ACFJSONDir   = "acf-json"
	ReadmeFile   = "README.md"
)

// PathsFor returns the artifact paths of spec.
func PathsFor(spec *module.Spec) Paths {
	slug := spec.Slug()
	return Paths{
		Main:       slug + ".php",
		PostType:   fmt.Sprintf("%s/cpt-%s.php", IncludesDir, slug),
		FieldGroup: fmt.Sprintf("%s/%s.json", ACFJSONDir, GroupKey(spec.Identifier())),
		Shortcode:  fmt.Sprintf("%s/shortcode-%s.php", IncludesDir, slug),
		Single:     fmt.Sprintf("%s/single-%s.php", TemplatesDir, slug),
		Archive:    fmt.Sprintf("%s/archive-%s.php", TemplatesDir, slug),
		Readme:     ReadmeFile,
	}
}

// GroupKey returns the ACF field group key of a module.
func GroupKey(identifier string) string {
	return "group_" + shortHash(identifier)
}

// FieldKey returns the ACF key of one field, namespaced by the module identifier.
func FieldKey(identifier, field string) string {
	return "field_" + shortHash(identifier+"_"+field)
}

// ShortcodeNames returns the list and single shortcode names of a module.
func ShortcodeNames(slug string) (list, single string) {
	return slug + "_list", slug + "_single"
}

func shortHash(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:8]
}
