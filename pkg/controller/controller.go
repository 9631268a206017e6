// Package controller orchestrates form selection, value edits, submission and
// the record list. A Controller owns its session and record store; presenters
// drive it through the action methods and draw the View each one returns.
package controller

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-dynform/pkg/progress"
	"github.com/goliatone/go-dynform/pkg/record"
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/session"
	"github.com/goliatone/go-dynform/pkg/validation"
)

// ErrNoActiveForm is returned by SetValues and ApplyValues when no form type
// is selected.
var ErrNoActiveForm = errors.New("controller: no active form")

// formTypeLister is implemented by sources that can enumerate their form
// types, such as *schema.Catalog.
type formTypeLister interface {
	FormTypes() []string
}

// Controller serialises actions so each completes before the next starts.
type Controller struct {
	mu       sync.Mutex
	source   schema.Source
	session  *session.Session
	store    *record.Store
	feedback string

	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// New constructs a controller in the idle state reading schemas from source.
func New(source schema.Source, options ...Option) *Controller {
	if source == nil {
		source = schema.MustCatalog()
	}
	c := &Controller{
		source: source,
		store:  record.NewStore(),
		logger: defaultLogger(),
		now:    time.Now,
		newID:  defaultID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// View returns the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view()
}

// SelectFormType starts a fresh session for formType. A blank type returns
// the controller to idle; an unknown type yields an empty form.
func (c *Controller) SelectFormType(formType string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selectFormType(formType)
	return c.view()
}

func (c *Controller) selectFormType(formType string) {
	if strings.TrimSpace(formType) == "" {
		c.session = nil
		c.logger.Debug("form type cleared")
		return
	}

	fields := c.source.Lookup(formType)
	c.session = session.New(formType, fields)
	c.logger.Debug("form type selected",
		slog.String("form_type", formType),
		slog.Int("fields", len(fields)))
}

// SetValue assigns raw to the named field and recomputes progress. It is a
// no-op while idle or for names the active form does not declare.
func (c *Controller) SetValue(name, raw string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		c.logger.Debug("value ignored while idle", slog.String("field", name))
		return c.view()
	}
	if !c.session.Set(name, raw) {
		c.logger.Debug("value ignored for undeclared field",
			slog.String("form_type", c.session.FormType()),
			slog.String("field", name))
	}
	return c.view()
}

// SetValues applies every entry of values that names a declared field, in
// field order.
func (c *Controller) SetValues(values map[string]string) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.setValues(values)
	return c.view(), err
}

// ApplyValues selects formType when it differs from the active one and then
// applies values, all as one action. A blank formType keeps the active form.
func (c *Controller) ApplyValues(formType string, values map[string]string) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.switchFormType(formType)
	err := c.setValues(values)
	return c.view(), err
}

// SubmitValues is ApplyValues followed by Submit without releasing the
// controller in between, so concurrent presenters cannot interleave.
func (c *Controller) SubmitValues(formType string, values map[string]string) (View, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.switchFormType(formType)
	if err := c.setValues(values); err != nil {
		return c.view(), false
	}
	ok := c.submit()
	return c.view(), ok
}

func (c *Controller) switchFormType(formType string) {
	if strings.TrimSpace(formType) == "" {
		return
	}
	if c.session != nil && c.session.FormType() == formType {
		return
	}
	c.selectFormType(formType)
}

func (c *Controller) setValues(values map[string]string) error {
	if c.session == nil {
		return ErrNoActiveForm
	}
	for _, field := range c.session.Fields() {
		if value, ok := values[field.Name]; ok {
			c.session.Set(field.Name, value)
		}
	}
	return nil
}

// Submit validates the active form. On failure the errors are stored on the
// session and false is returned. On success a snapshot of the values is
// appended to the record list, the controller returns to idle and true is
// returned. Submitting while idle does nothing.
func (c *Controller) Submit() (View, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok := c.submit()
	return c.view(), ok
}

func (c *Controller) submit() bool {
	if c.session == nil {
		return false
	}

	if errs := c.session.Validate(); !errs.Empty() {
		c.logger.Debug("submission rejected",
			slog.String("form_type", c.session.FormType()),
			slog.Any("fields", errs.Fields()))
		return false
	}

	rec := record.Record{
		ID:          c.newID(),
		FormType:    c.session.FormType(),
		Values:      c.session.Values(),
		SubmittedAt: c.now(),
	}
	c.store.Append(rec)
	c.session = nil
	c.feedback = FeedbackSubmitted
	c.logger.Info("form submitted",
		slog.String("form_type", rec.FormType),
		slog.String("record_id", rec.ID),
		slog.Int("records", c.store.Len()))
	return true
}

// EditRecord recalls the record at index into the active form, keeping the
// current form type. When idle, the record's own form type is selected
// first. Values for fields the active form does not declare are dropped.
// Out-of-range indices return record.ErrOutOfRange and change nothing.
func (c *Controller) EditRecord(index int) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.store.RecallAt(index)
	if err != nil {
		c.logger.Error("edit record failed", slog.Int("index", index), slog.String("error", err.Error()))
		return c.view(), err
	}

	if c.session == nil {
		c.session = session.New(rec.FormType, c.source.Lookup(rec.FormType))
	}
	c.session.Seed(rec.Values)
	c.feedback = FeedbackEdited
	c.logger.Debug("record recalled",
		slog.Int("index", index),
		slog.String("record_id", rec.ID),
		slog.String("form_type", c.session.FormType()))
	return c.view(), nil
}

// DeleteRecord removes the record at index. Out-of-range indices return
// record.ErrOutOfRange and change nothing.
func (c *Controller) DeleteRecord(index int) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.RemoveAt(index); err != nil {
		c.logger.Error("delete record failed", slog.Int("index", index), slog.String("error", err.Error()))
		return c.view(), err
	}
	c.feedback = FeedbackDeleted
	c.logger.Info("record deleted", slog.Int("index", index), slog.Int("records", c.store.Len()))
	return c.view(), nil
}

func (c *Controller) view() View {
	v := View{
		State:     StateIdle,
		FormTypes: c.formTypes(),
		Fields:    []schema.FieldSchema{},
		Values:    map[string]string{},
		Errors:    validation.Errors{},
		Feedback:  c.feedback,
		Records:   c.store.All(),
	}
	if c.session != nil {
		v.State = StateEditing
		v.FormType = c.session.FormType()
		v.Fields = c.session.Fields()
		v.Values = c.session.Values()
		v.Errors = c.session.Errors()
		v.Progress = c.session.Progress()
		v.ProgressPercent = progress.Rounded(v.Progress)
	}
	return v
}

func (c *Controller) formTypes() []string {
	if lister, ok := c.source.(formTypeLister); ok {
		return lister.FormTypes()
	}
	return nil
}
