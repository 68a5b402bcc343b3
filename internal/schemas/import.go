// Package schemas provides the structural check applied to imported content
// documents before they replace the live document.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// importSchema is deliberately minimal: an import must look like a content
// document (a portfolio list and a config object at the top level), but
// field-level gaps are fine because migration fills them afterwards.
const importSchema = `{
	"type": "object",
	"required": ["portfolio", "config"],
	"properties": {
		"portfolio": {"type": "array"},
		"config": {"type": "object"}
	}
}`

// ValidationError reports which parts of an imported file failed the
// structural check.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid import file:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateImport checks that the raw bytes parse as JSON and carry the
// required top-level fields. It does not validate field contents; the
// document migration accepts anything structurally sound.
func ValidateImport(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(importSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
