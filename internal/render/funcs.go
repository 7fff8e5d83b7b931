package render

import (
	"strings"
	"text/template"
)

var phpEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// commentEscaper keeps values on one line and out of the docblock terminator.
var commentEscaper = strings.NewReplacer("*/", "* /", "\r\n", " ", "\n", " ", "\r", " ")

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func funcMap() template.FuncMap {
	return template.FuncMap{
		"php":     phpString,
		"comment": commentEscaper.Replace,
		"cell":    markdownEscaper.Replace,
		"lower":   strings.ToLower,
	}
}

// phpString quotes s as a single-quoted PHP string literal.
func phpString(s string) string {
	return "'" + phpEscaper.Replace(s) + "'"
}
