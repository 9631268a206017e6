// Package session holds the live state of the form being filled: the active
// form type, its cached field list, current values, last validation errors
// and derived progress.
package session

import (
	"github.com/goliatone/go-dynform/pkg/progress"
	"github.com/goliatone/go-dynform/pkg/record"
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/validation"
)

// Session is the mutable form state. Values only ever hold keys declared in
// Fields and Progress is recomputed on every value change.
type Session struct {
	formType string
	fields   []schema.FieldSchema
	values   map[string]string
	errors   validation.Errors
	progress float64
}

// New starts a session for formType with an empty value set.
func New(formType string, fields []schema.FieldSchema) *Session {
	return &Session{
		formType: formType,
		fields:   schema.CloneFields(fields),
		values:   make(map[string]string),
		errors:   validation.Errors{},
	}
}

// FormType returns the active form type.
func (s *Session) FormType() string {
	if s == nil {
		return ""
	}
	return s.formType
}

// Fields returns a copy of the cached field list.
func (s *Session) Fields() []schema.FieldSchema {
	if s == nil {
		return []schema.FieldSchema{}
	}
	return schema.CloneFields(s.fields)
}

// Values returns a copy of the current values.
func (s *Session) Values() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	return record.CloneValues(s.values)
}

// Value returns the current value for name.
func (s *Session) Value(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	value, ok := s.values[name]
	return value, ok
}

// Errors returns a copy of the errors from the last validation.
func (s *Session) Errors() validation.Errors {
	if s == nil {
		return validation.Errors{}
	}
	return s.errors.Clone()
}

// Progress returns the derived completion percentage.
func (s *Session) Progress() float64 {
	if s == nil {
		return 0
	}
	return s.progress
}

// Set assigns raw to name and recomputes progress. Names outside the field
// list are ignored and reported as false. Errors are left untouched.
func (s *Session) Set(name, raw string) bool {
	if s == nil || !schema.HasField(s.fields, name) {
		return false
	}
	s.values[name] = raw
	s.recompute()
	return true
}

// Seed replaces every value with those in values that name a declared field,
// clears errors and recomputes progress.
func (s *Session) Seed(values map[string]string) {
	if s == nil {
		return
	}
	s.values = make(map[string]string, len(values))
	for _, field := range s.fields {
		if value, ok := values[field.Name]; ok {
			s.values[field.Name] = value
		}
	}
	s.errors = validation.Errors{}
	s.recompute()
}

// Validate runs the required-field check, stores the outcome and returns a
// copy of it.
func (s *Session) Validate() validation.Errors {
	if s == nil {
		return validation.Errors{}
	}
	s.errors = validation.Validate(s.fields, s.values)
	return s.errors.Clone()
}

func (s *Session) recompute() {
	s.progress = progress.Calculate(s.fields, s.values)
}
