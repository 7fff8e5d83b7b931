// Package errors provides sentinel errors and structured error types for wp-gen.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending path or token (optional).
	Location string

	// Field is the field name for declaration errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewModuleNameError reports a module name that cannot be used.
func NewModuleNameError(name, message string) error {
	return &DetailError{
		Type:     "invalid module name",
		Message:  message,
		Location: fmt.Sprintf("%q", name),
		Hint:     "Module names must contain at least one letter.",
		Cause:    ErrInvalidModuleName,
	}
}

// NewFieldDeclarationError reports a malformed name:type token.
func NewFieldDeclarationError(decl, field, message string) error {
	return &DetailError{
		Type:     "invalid field declaration",
		Message:  message,
		Location: fmt.Sprintf("%q", decl),
		Field:    field,
		Hint:     "Declare fields as name:type, e.g. prix:number.",
		Cause:    ErrInvalidFieldDeclaration,
	}
}

// NewUnknownFieldTypeError reports a type token outside the supported set.
func NewUnknownFieldTypeError(token string, valid []string) error {
	return &DetailError{
		Type:     "unknown field type",
		Message:  fmt.Sprintf("field type %q is not supported", token),
		Location: token,
		Hint:     fmt.Sprintf("Valid types: %s", strings.Join(valid, ", ")),
		Cause:    ErrUnknownFieldType,
	}
}

// NewEmptyFieldListError reports a module declared without fields.
func NewEmptyFieldListError(module string) error {
	return &DetailError{
		Type:     "empty field list",
		Message:  fmt.Sprintf("module %q declares no fields", module),
		Location: module,
		Hint:     "Pass at least one name:type declaration after the module name.",
		Cause:    ErrEmptyFieldList,
	}
}

// WriteError wraps an I/O failure on a generated path with ErrWrite.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrWrite and the underlying cause.
func (e *WriteError) Unwrap() []error {
	return []error{ErrWrite, e.Err}
}

// NewWriteError creates a WriteError for path.
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}
