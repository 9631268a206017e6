package widgets

import (
	"fmt"

	"github.com/goliatone/go-dynform/pkg/schema"
)

// Built-in widget names.
const (
	WidgetText     = "text"
	WidgetNumber   = "number"
	WidgetDate     = "date"
	WidgetPassword = "password"
	WidgetSelect   = "select"
)

// Widget tells a presenter how to draw a field. InputType is the HTML input
// type for single-line inputs and empty for choice widgets.
type Widget struct {
	Name      string `json:"name"`
	InputType string `json:"inputType,omitempty"`
	Choice    bool   `json:"choice,omitempty"`
	Masked    bool   `json:"masked,omitempty"`
}

// ForKind maps every FieldKind to its default widget. Unknown kinds are an
// error so new kinds cannot silently fall through.
func ForKind(kind schema.FieldKind) (Widget, error) {
	switch kind {
	case schema.KindText:
		return Widget{Name: WidgetText, InputType: "text"}, nil
	case schema.KindNumber:
		return Widget{Name: WidgetNumber, InputType: "number"}, nil
	case schema.KindDate:
		return Widget{Name: WidgetDate, InputType: "date"}, nil
	case schema.KindPassword:
		return Widget{Name: WidgetPassword, InputType: "password", Masked: true}, nil
	case schema.KindDropdown:
		return Widget{Name: WidgetSelect, Choice: true}, nil
	default:
		return Widget{}, fmt.Errorf("widgets: unsupported field kind %q", kind)
	}
}

// Placeholder is the first, empty option of a select widget.
func Placeholder(field schema.FieldSchema) string {
	return "Select " + field.DisplayLabel()
}
