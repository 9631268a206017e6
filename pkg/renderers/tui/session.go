package tui

import (
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-dynform/pkg/controller"
	"github.com/goliatone/go-dynform/pkg/render"
	"github.com/goliatone/go-dynform/pkg/schema"
	"github.com/goliatone/go-dynform/pkg/widgets"
)

// Menu entries offered by the main loop.
const (
	ActionChoose = "Choose form type"
	ActionFill   = "Fill in form"
	ActionSubmit = "Submit form"
	ActionEdit   = "Edit a record"
	ActionDelete = "Delete a record"
	ActionQuit   = "Quit"
)

const cancelOption = "Cancel"

// ClearValue is the answer that empties a text or masked field. A blank
// answer keeps the current value.
const ClearValue = "-"

// Session is an interactive terminal presenter. It turns prompt answers
// into controller actions and prints the resulting view after each one.
type Session struct {
	ctrl    *controller.Controller
	driver  PromptDriver
	widgets *widgets.Registry
	text    *TextRenderer
	source  schema.Source
	out     io.Writer
	logger  *slog.Logger
}

// New builds a session driving ctrl.
func New(ctrl *controller.Controller, options ...Option) (*Session, error) {
	if ctrl == nil {
		return nil, ErrNoController
	}
	s := &Session{
		ctrl:    ctrl,
		widgets: widgets.NewRegistry(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	s.text = NewTextRenderer(s.widgets)
	return s, nil
}

// Run loops over the main menu until the user quits. Aborting a prompt
// returns ErrAborted.
func (s *Session) Run(ctx context.Context) error {
	if err := s.show(ctx, s.ctrl.View()); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		view := s.ctrl.View()
		actions := menu(view)
		idx, err := s.driver.Select(ctx, SelectConfig{Message: "What next?", Options: actions})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			return fmt.Errorf("tui: invalid menu choice %d", idx)
		}

		action := actions[idx]
		s.logger.Debug("menu action", slog.String("action", action))
		if action == ActionQuit {
			return nil
		}
		next, err := s.dispatch(ctx, action, view)
		if err != nil {
			return err
		}
		if err := s.show(ctx, next); err != nil {
			return err
		}
	}
}

func menu(view controller.View) []string {
	actions := []string{ActionChoose}
	if view.Editing() {
		actions = append(actions, ActionFill, ActionSubmit)
	}
	if len(view.Records) > 0 {
		actions = append(actions, ActionEdit, ActionDelete)
	}
	return append(actions, ActionQuit)
}

func (s *Session) dispatch(ctx context.Context, action string, view controller.View) (controller.View, error) {
	switch action {
	case ActionChoose:
		return s.chooseFormType(ctx, view)
	case ActionFill:
		return s.fill(ctx, view)
	case ActionSubmit:
		next, _ := s.ctrl.Submit()
		return next, nil
	case ActionEdit:
		return s.editRecord(ctx, view)
	case ActionDelete:
		return s.deleteRecord(ctx, view)
	default:
		return view, fmt.Errorf("tui: unknown action %q", action)
	}
}

func (s *Session) chooseFormType(ctx context.Context, view controller.View) (controller.View, error) {
	if len(view.FormTypes) == 0 {
		return view, s.driver.Info(ctx, "No form types available.")
	}
	current := indexOf(view.FormTypes, view.FormType)
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      "Form type",
		Options:      view.FormTypes,
		DefaultIndex: current,
	})
	if err != nil {
		return view, err
	}
	if idx < 0 || idx >= len(view.FormTypes) {
		return view, fmt.Errorf("tui: invalid form type choice %d", idx)
	}
	return s.ctrl.SelectFormType(view.FormTypes[idx]), nil
}

// fill prompts every field in schema order, seeding each prompt with the
// current value.
func (s *Session) fill(ctx context.Context, view controller.View) (controller.View, error) {
	for _, field := range view.Fields {
		value, err := s.promptField(ctx, field, view.Value(field.Name))
		if err != nil {
			return view, err
		}
		view = s.ctrl.SetValue(field.Name, value)
	}
	return view, nil
}

func (s *Session) promptField(ctx context.Context, field schema.FieldSchema, current string) (string, error) {
	widget, ok := s.widgets.Resolve(field)
	if !ok {
		return "", fmt.Errorf("tui: no widget for field %q (%s)", field.Name, field.Kind)
	}
	message := field.DisplayLabel()
	if field.Required {
		message += " *"
	}
	help := stripTags(field.Help)

	switch {
	case widget.Choice:
		options := append([]string{widgets.Placeholder(field)}, field.Options...)
		defaultIdx := 0
		if i := indexOf(field.Options, current); i >= 0 {
			defaultIdx = i + 1
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: defaultIdx,
			Help:         help,
			PageSize:     10,
		})
		if err != nil {
			return "", err
		}
		if idx <= 0 || idx >= len(options) {
			return "", nil
		}
		return options[idx], nil
	}

	if current != "" {
		help = strings.TrimSpace(help + " Enter " + ClearValue + " to clear.")
	}
	cfg := InputConfig{Message: message, Default: current, Help: help}
	prompt := s.driver.Input
	if widget.Masked {
		prompt = s.driver.Password
	}
	answer, err := prompt(ctx, cfg)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == ClearValue {
		return "", nil
	}
	return answer, nil
}

func (s *Session) editRecord(ctx context.Context, view controller.View) (controller.View, error) {
	idx, ok, err := s.pickRecord(ctx, view, "Record to edit")
	if err != nil || !ok {
		return view, err
	}
	next, err := s.ctrl.EditRecord(idx)
	if err != nil {
		return view, fmt.Errorf("tui: edit record: %w", err)
	}
	return next, nil
}

func (s *Session) deleteRecord(ctx context.Context, view controller.View) (controller.View, error) {
	idx, ok, err := s.pickRecord(ctx, view, "Record to delete")
	if err != nil || !ok {
		return view, err
	}
	confirmed, err := s.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Delete record #%d?", idx)})
	if err != nil {
		return view, err
	}
	if !confirmed {
		return view, nil
	}
	next, err := s.ctrl.DeleteRecord(idx)
	if err != nil {
		return view, fmt.Errorf("tui: delete record: %w", err)
	}
	return next, nil
}

// pickRecord offers every record plus a cancel entry. ok is false when the
// user cancels.
func (s *Session) pickRecord(ctx context.Context, view controller.View, message string) (int, bool, error) {
	options := make([]string, 0, len(view.Records)+1)
	for i, rec := range view.Records {
		options = append(options, fmt.Sprintf("#%d %s: %s", i, rec.FormType, s.summarize(view, i)))
	}
	options = append(options, cancelOption)

	idx, err := s.driver.Select(ctx, SelectConfig{Message: message, Options: options, PageSize: 10})
	if err != nil {
		return 0, false, err
	}
	if idx < 0 || idx >= len(view.Records) {
		return 0, false, nil
	}
	return idx, true, nil
}

func (s *Session) show(ctx context.Context, view controller.View) error {
	out, err := s.text.Render(ctx, render.NewPage(view, s.source))
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, strings.TrimRight(string(out), "\n"))
}

func (s *Session) summarize(view controller.View, index int) string {
	var values []string
	for _, table := range render.RecordTables(view.Records, s.source) {
		for _, row := range table.Rows {
			if row.Index != index {
				continue
			}
			for _, cell := range row.Cells {
				if cell != "" {
					values = append(values, cell)
				}
			}
		}
	}
	return strings.Join(values, ", ")
}

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// stripTags reduces help markup to plain text for terminal prompts.
func stripTags(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(raw)))
}
