package render

import (
	"bytes"
	"encoding/json"

	"github.com/wpgen/cli/internal/fieldtype"
	"github.com/wpgen/cli/internal/module"
)

// fieldGroup is the ACF local JSON document of a module.
type fieldGroup struct {
	Key                  string           `json:"key"`
	Title                string           `json:"title"`
	Fields               []acfField       `json:"fields"`
	Location             [][]locationRule `json:"location"`
	MenuOrder            int              `json:"menu_order"`
	Position             string           `json:"position"`
	Style                string           `json:"style"`
	LabelPlacement       string           `json:"label_placement"`
	InstructionPlacement string           `json:"instruction_placement"`
	HideOnScreen         string           `json:"hide_on_screen"`
	Active               bool             `json:"active"`
	Description          string           `json:"description"`
	ShowInRest           int              `json:"show_in_rest"`
}

type acfField struct {
	Key              string     `json:"key"`
	Label            string     `json:"label"`
	Name             string     `json:"name"`
	Type             string     `json:"type"`
	Instructions     string     `json:"instructions"`
	Required         int        `json:"required"`
	ConditionalLogic int        `json:"conditional_logic"`
	Wrapper          acfWrapper `json:"wrapper"`
	ReturnFormat     string     `json:"return_format,omitempty"`
	PreviewSize      string     `json:"preview_size,omitempty"`
	Tabs             string     `json:"tabs,omitempty"`
	Toolbar          string     `json:"toolbar,omitempty"`
	DisplayFormat    string     `json:"display_format,omitempty"`
	Choices          choices    `json:"choices,omitempty"`
}

type acfWrapper struct {
	Width string `json:"width"`
	Class string `json:"class"`
	ID    string `json:"id"`
}

type locationRule struct {
	Param    string `json:"param"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// choices marshals as a JSON object that keeps declaration order.
type choices []fieldtype.Choice

// MarshalJSON implements json.Marshaler.
func (c choices) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, choice := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(choice.Value)
		if err != nil {
			return nil, err
		}
		v, err := marshalNoEscape(choice.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// buildFieldGroup maps every field of spec to an ACF entry, in order.
func buildFieldGroup(spec *module.Spec) fieldGroup {
	id := spec.Identifier()
	fields := spec.Fields()

	entries := make([]acfField, 0, len(fields))
	for _, f := range fields {
		s := f.Type.Settings
		entries = append(entries, acfField{
			Key:           FieldKey(id, f.Name),
			Label:         f.Label,
			Name:          f.Name,
			Type:          f.Type.ACFType,
			ReturnFormat:  s.ReturnFormat,
			PreviewSize:   s.PreviewSize,
			Tabs:          s.Tabs,
			Toolbar:       s.Toolbar,
			DisplayFormat: s.DisplayFormat,
			Choices:       choices(s.Choices),
		})
	}

	return fieldGroup{
		Key:    GroupKey(id),
		Title:  spec.LabelSingular() + " fields",
		Fields: entries,
		Location: [][]locationRule{{
			{Param: "post_type", Operator: "==", Value: id},
		}},
		Position:             "normal",
		Style:                "default",
		LabelPlacement:       "top",
		InstructionPlacement: "label",
		Active:               true,
		Description:          "Field group of the " + spec.LabelSingular() + " module.",
		ShowInRest:           1,
	}
}

// renderFieldGroup returns the indented JSON document. HTML characters
// and non-ASCII text are written as-is, the way ACF exports them.
func renderFieldGroup(spec *module.Spec) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildFieldGroup(spec)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
