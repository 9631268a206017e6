package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog wraps every catalog construction failure.
var ErrInvalidCatalog = errors.New("schema: invalid catalog")

// Source is the read-only lookup the form controller depends on.
type Source interface {
	Lookup(formType string) []FieldSchema
}

// Form pairs a form type with its ordered field list. It is the unit used to
// build catalogs and the shape catalog documents decode into.
type Form struct {
	Type   string        `json:"type" yaml:"type"`
	Fields []FieldSchema `json:"fields" yaml:"fields"`
}

// Catalog maps form types to ordered field lists. It is immutable once built
// and safe for concurrent use.
type Catalog struct {
	order []string
	forms map[string][]FieldSchema
}

var _ Source = (*Catalog)(nil)

// NewCatalog validates forms and builds a catalog preserving their order.
// Form types must be non-empty and unique; fields are normalised (kind
// parsing, default labels) and checked for duplicates and option rules.
func NewCatalog(forms ...Form) (*Catalog, error) {
	catalog := &Catalog{forms: make(map[string][]FieldSchema, len(forms))}
	for _, form := range forms {
		formType := strings.TrimSpace(form.Type)
		if formType == "" {
			return nil, fmt.Errorf("%w: form type is required", ErrInvalidCatalog)
		}
		if _, exists := catalog.forms[formType]; exists {
			return nil, fmt.Errorf("%w: duplicate form type %q", ErrInvalidCatalog, formType)
		}

		seen := make(map[string]struct{}, len(form.Fields))
		fields := make([]FieldSchema, 0, len(form.Fields))
		for _, field := range form.Fields {
			normalised, err := normaliseField(field, formType, seen)
			if err != nil {
				return nil, err
			}
			fields = append(fields, normalised)
		}

		catalog.order = append(catalog.order, formType)
		catalog.forms[formType] = fields
	}
	return catalog, nil
}

// MustCatalog panics when NewCatalog fails. Useful for static catalogs.
func MustCatalog(forms ...Form) *Catalog {
	catalog, err := NewCatalog(forms...)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Lookup returns a copy of the fields declared for formType. Unknown types
// yield an empty slice rather than an error.
func (c *Catalog) Lookup(formType string) []FieldSchema {
	if c == nil {
		return []FieldSchema{}
	}
	return CloneFields(c.forms[formType])
}

// Has reports whether formType is declared.
func (c *Catalog) Has(formType string) bool {
	if c == nil {
		return false
	}
	_, ok := c.forms[formType]
	return ok
}

// FormTypes lists the declared form types in declaration order.
func (c *Catalog) FormTypes() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.order...)
}

// Forms returns every form in declaration order.
func (c *Catalog) Forms() []Form {
	if c == nil {
		return nil
	}
	out := make([]Form, 0, len(c.order))
	for _, formType := range c.order {
		out = append(out, Form{Type: formType, Fields: CloneFields(c.forms[formType])})
	}
	return out
}

// Len reports the number of form types.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Merge combines catalogs in order. Duplicate form types across inputs are an
// error.
func Merge(catalogs ...*Catalog) (*Catalog, error) {
	var forms []Form
	for _, catalog := range catalogs {
		forms = append(forms, catalog.Forms()...)
	}
	return NewCatalog(forms...)
}
