package controller

import (
	"github.com/goliatone/go-dynform/pkg/record"
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/validation"
)

// State is the controller's position in its lifecycle.
type State string

const (
	// StateIdle means no form type is selected.
	StateIdle State = "idle"
	// StateEditing means a form is being filled, possibly seeded from a
	// recalled record.
	StateEditing State = "editing"
)

// Feedback messages emitted after completed actions.
const (
	FeedbackSubmitted = "Form submitted successfully!"
	FeedbackEdited    = "Changes saved successfully!"
	FeedbackDeleted   = "Entry deleted successfully!"
)

// View is an immutable snapshot of everything a presenter needs to draw the
// current screen. Every map and slice is a copy.
type View struct {
	State           State                `json:"state"`
	FormType        string               `json:"formType"`
	FormTypes       []string             `json:"formTypes"`
	Fields          []schema.FieldSchema `json:"fields"`
	Values          map[string]string    `json:"values"`
	Errors          validation.Errors    `json:"errors"`
	Progress        float64              `json:"progress"`
	ProgressPercent int                  `json:"progressPercent"`
	Feedback        string               `json:"feedback,omitempty"`
	Records         []record.Record      `json:"records"`
}

// Editing reports whether a form is active.
func (v View) Editing() bool {
	return v.State == StateEditing
}

// Value returns the current value for name, empty when unset.
func (v View) Value(name string) string {
	return v.Values[name]
}

// Error returns the validation message for name, empty when valid.
func (v View) Error(name string) string {
	return v.Errors[name]
}
