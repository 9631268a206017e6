package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// OrderExtension lists property names in rendering order on an OpenAPI
// component schema. Properties it omits follow in lexical order.
const OrderExtension = "x-dynform-order"

// FromOpenAPI builds a catalog from the component schemas of a local OpenAPI
// 3 document. Each object schema becomes a form type named after its title
// (or component key); its properties become fields.
func FromOpenAPI(ctx context.Context, data []byte) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("schema: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load openapi document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return NewCatalog()
	}

	keys := make([]string, 0, len(doc.Components.Schemas))
	for key := range doc.Components.Schemas {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	forms := make([]Form, 0, len(keys))
	for _, key := range keys {
		ref := doc.Components.Schemas[key]
		if ref == nil || ref.Value == nil || len(ref.Value.Properties) == 0 {
			continue
		}
		form, err := formFromSchema(key, ref.Value)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return NewCatalog(forms...)
}

func formFromSchema(key string, src *openapi3.Schema) (Form, error) {
	formType := strings.TrimSpace(src.Title)
	if formType == "" {
		formType = key
	}

	required := make(map[string]struct{}, len(src.Required))
	for _, name := range src.Required {
		required[name] = struct{}{}
	}

	form := Form{Type: formType}
	for _, name := range propertyOrder(src) {
		prop := src.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		_, isRequired := required[name]
		form.Fields = append(form.Fields, fieldFromSchema(name, prop.Value, isRequired))
	}
	return form, nil
}

func fieldFromSchema(name string, src *openapi3.Schema, required bool) FieldSchema {
	field := FieldSchema{
		Name:     name,
		Kind:     kindFromSchema(src),
		Label:    strings.TrimSpace(src.Title),
		Required: required,
		Help:     strings.TrimSpace(src.Description),
	}
	if field.Kind == KindDropdown {
		field.Options = stringifyEnum(src.Enum)
	}
	return field
}

func kindFromSchema(src *openapi3.Schema) FieldKind {
	if len(src.Enum) > 0 {
		return KindDropdown
	}
	switch strings.ToLower(src.Format) {
	case "date", "date-time":
		return KindDate
	case "password":
		return KindPassword
	}
	if src.Type != nil && (src.Type.Is(openapi3.TypeInteger) || src.Type.Is(openapi3.TypeNumber)) {
		return KindNumber
	}
	return KindText
}

func propertyOrder(src *openapi3.Schema) []string {
	seen := make(map[string]struct{}, len(src.Properties))
	var order []string

	if raw, ok := src.Extensions[OrderExtension].([]any); ok {
		for _, entry := range raw {
			name, ok := entry.(string)
			if !ok {
				continue
			}
			if _, exists := src.Properties[name]; !exists {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			order = append(order, name)
		}
	}

	var rest []string
	for name := range src.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func stringifyEnum(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}
