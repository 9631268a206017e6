package schema

import (
	"fmt"
	"strings"
	"unicode"
)

// FieldKind is the closed set of input kinds a form field can declare.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindNumber   FieldKind = "number"
	KindDate     FieldKind = "date"
	KindPassword FieldKind = "password"
	KindDropdown FieldKind = "dropdown"
)

// Kinds lists every supported kind in declaration order.
func Kinds() []FieldKind {
	return []FieldKind{KindText, KindNumber, KindDate, KindPassword, KindDropdown}
}

// Valid reports whether k is one of the supported kinds.
func (k FieldKind) Valid() bool {
	switch k {
	case KindText, KindNumber, KindDate, KindPassword, KindDropdown:
		return true
	default:
		return false
	}
}

// ParseFieldKind normalises raw (case and surrounding whitespace) into a
// FieldKind. An empty value maps to KindText; "select" is accepted as an alias
// for KindDropdown.
func ParseFieldKind(raw string) (FieldKind, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	switch trimmed {
	case "":
		return KindText, nil
	case "select":
		return KindDropdown, nil
	}
	kind := FieldKind(trimmed)
	if !kind.Valid() {
		return "", fmt.Errorf("schema: unknown field kind %q", raw)
	}
	return kind, nil
}

// FieldSchema describes one input of a form. Values are treated as immutable
// once they enter a Catalog; accessors hand out copies.
type FieldSchema struct {
	Name     string    `json:"name" yaml:"name"`
	Kind     FieldKind `json:"kind" yaml:"kind"`
	Label    string    `json:"label" yaml:"label"`
	Required bool      `json:"required" yaml:"required"`
	Options  []string  `json:"options,omitempty" yaml:"options,omitempty"`
	// Placeholder and Help are presentation hints only. Help may carry
	// limited inline markup; renderers sanitise it before output.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string `json:"help,omitempty" yaml:"help,omitempty"`
}

// Clone returns a deep copy of the field.
func (f FieldSchema) Clone() FieldSchema {
	out := f
	if f.Options != nil {
		out.Options = append([]string(nil), f.Options...)
	}
	return out
}

// DisplayLabel returns Label, falling back to a humanised Name.
func (f FieldSchema) DisplayLabel() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return HumanizeName(f.Name)
}

// CloneFields deep-copies a field list. A nil input yields an empty, non-nil
// slice so callers can range and marshal without special cases.
func CloneFields(fields []FieldSchema) []FieldSchema {
	out := make([]FieldSchema, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}

// FieldNames returns the names of fields in order.
func FieldNames(fields []FieldSchema) []string {
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name
	}
	return names
}

// HasField reports whether name is declared in fields.
func HasField(fields []FieldSchema, name string) bool {
	for _, field := range fields {
		if field.Name == name {
			return true
		}
	}
	return false
}

// HumanizeName turns identifiers such as "zipCode" or "card_number" into
// "Zip Code" and "Card Number".
func HumanizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	runes := []rune(trimmed)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && i > 0 && !unicode.IsUpper(runes[i-1]):
			flush()
		}
		current = append(current, r)
	}
	flush()
	for i, word := range words {
		lead := []rune(word)
		lead[0] = unicode.ToUpper(lead[0])
		words[i] = string(lead)
	}
	return strings.Join(words, " ")
}

func normaliseField(field FieldSchema, formType string, seen map[string]struct{}) (FieldSchema, error) {
	field.Name = strings.TrimSpace(field.Name)
	if field.Name == "" {
		return FieldSchema{}, fmt.Errorf("%w: form %q declares a field with an empty name", ErrInvalidCatalog, formType)
	}
	if _, dup := seen[field.Name]; dup {
		return FieldSchema{}, fmt.Errorf("%w: form %q declares field %q twice", ErrInvalidCatalog, formType, field.Name)
	}
	seen[field.Name] = struct{}{}

	kind, err := ParseFieldKind(string(field.Kind))
	if err != nil {
		return FieldSchema{}, fmt.Errorf("%w: form %q field %q: %v", ErrInvalidCatalog, formType, field.Name, err)
	}
	field.Kind = kind

	switch kind {
	case KindDropdown:
		if len(field.Options) == 0 {
			return FieldSchema{}, fmt.Errorf("%w: form %q dropdown %q has no options", ErrInvalidCatalog, formType, field.Name)
		}
	default:
		if len(field.Options) > 0 {
			return FieldSchema{}, fmt.Errorf("%w: form %q field %q of kind %s cannot declare options", ErrInvalidCatalog, formType, field.Name, kind)
		}
	}

	field.Label = field.DisplayLabel()
	return field.Clone(), nil
}
