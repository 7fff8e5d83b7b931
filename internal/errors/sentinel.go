package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates user input failed validation before generation.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")
)

// Generation errors. The first four are validation failures and wrap
// ErrValidation; ErrWrite is an I/O failure during persistence.
var (
	// ErrInvalidModuleName indicates the module name is empty or cannot be normalized.
	ErrInvalidModuleName = fmt.Errorf("invalid module name: %w", ErrValidation)

	// ErrInvalidFieldDeclaration indicates a malformed name:type token.
	ErrInvalidFieldDeclaration = fmt.Errorf("invalid field declaration: %w", ErrValidation)

	// ErrUnknownFieldType indicates a field type token outside the supported set.
	ErrUnknownFieldType = fmt.Errorf("unknown field type: %w", ErrValidation)

	// ErrEmptyFieldList indicates a module was declared without any fields.
	ErrEmptyFieldList = fmt.Errorf("empty field list: %w", ErrValidation)

	// ErrWrite indicates the generated module could not be written.
	ErrWrite = errors.New("write error")
)
