// Package validation checks current form values against a field list. Only
// required fields produce errors; there is no format validation.
package validation

import (
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-dynform/pkg/schema"
)

// RequiredMessage formats the message produced for an empty required field.
func RequiredMessage(label string) string {
	return label + " is required."
}

// Validate returns one entry per required field whose value is absent, empty
// or whitespace-only. Optional fields never produce an entry.
func Validate(fields []schema.FieldSchema, values map[string]string) Errors {
	errs := Errors{}
	for _, field := range fields {
		if !field.Required {
			continue
		}
		value := values[field.Name]
		if !Filled(value) {
			value = ""
		}
		rule := ozzo.Required.Error(RequiredMessage(field.DisplayLabel()))
		if err := ozzo.Validate(value, rule); err != nil {
			errs[field.Name] = err.Error()
		}
	}
	return errs
}

// Filled reports whether value counts as provided. Whitespace-only input is
// treated as empty.
func Filled(value string) bool {
	return strings.TrimSpace(value) != ""
}
