package fieldtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/wpgen/cli/internal/errors"
)

func TestTokens(t *testing.T) {
	tokens := Tokens()
	assert.Equal(t, []string{"text", "textarea", "image", "number", "wysiwyg", "select", "date"}, tokens)

	// Mutating the returned slice must not affect the registry.
	tokens[0] = "changed"
	assert.Equal(t, "text", Tokens()[0])
}

func TestResolve_Supported(t *testing.T) {
	for _, token := range Tokens() {
		t.Run(token, func(t *testing.T) {
			d, err := Resolve(token)
			require.NoError(t, err)
			assert.Equal(t, token, d.Token)
			assert.NotEmpty(t, d.SchemaKind)
			assert.NotEmpty(t, d.DisplayHint)
			assert.NotEmpty(t, d.ACFType)
			assert.NotEmpty(t, d.Label)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	tests := []string{"currency", "", "TEXT", "date_picker", " text"}

	for _, token := range tests {
		t.Run(token, func(t *testing.T) {
			_, err := Resolve(token)
			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrUnknownFieldType)
			assert.Contains(t, err.Error(), "Valid types: text, textarea")
		})
	}
}

func TestResolve_Mapping(t *testing.T) {
	tests := []struct {
		token   string
		acfType string
		kind    SchemaKind
		hint    DisplayHint
	}{
		{Text, "text", SchemaPlainText, DisplayEcho},
		{Textarea, "textarea", SchemaPlainText, DisplayEcho},
		{Image, "image", SchemaMedia, DisplayImage},
		{Number, "number", SchemaNumeric, DisplayNumber},
		{Wysiwyg, "wysiwyg", SchemaRichText, DisplayRich},
		{Select, "select", SchemaChoice, DisplayEcho},
		{Date, "date_picker", SchemaDate, DisplayDate},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			d, err := Resolve(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.acfType, d.ACFType)
			assert.Equal(t, tt.kind, d.SchemaKind)
			assert.Equal(t, tt.hint, d.DisplayHint)
		})
	}
}

func TestResolve_ReturnsCopy(t *testing.T) {
	d, err := Resolve(Select)
	require.NoError(t, err)
	require.Len(t, d.Settings.Choices, 2)

	d.Settings.Choices[0].Label = "mutated"

	again, err := Resolve(Select)
	require.NoError(t, err)
	assert.Equal(t, "Option 1", again.Settings.Choices[0].Label)
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 7)
	for i, token := range Tokens() {
		assert.Equal(t, token, all[i].Token)
	}
}
