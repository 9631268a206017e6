package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-dynform/pkg/render"
	"github.com/goliatone/go-dynform/pkg/widgets"
)

// TextName is the registry key of the plain-text renderer.
const TextName = "text"

const progressWidth = 20

// TextRenderer draws a Page as plain text for terminals and logs.
type TextRenderer struct {
	widgets *widgets.Registry
}

var _ render.Renderer = (*TextRenderer)(nil)

// NewTextRenderer builds a text renderer. A nil registry uses the built-in
// widgets.
func NewTextRenderer(registry *widgets.Registry) *TextRenderer {
	if registry == nil {
		registry = widgets.NewRegistry()
	}
	return &TextRenderer{widgets: registry}
}

func (r *TextRenderer) Name() string {
	return TextName
}

func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render prints the active form, its progress, feedback and the record
// tables. Masked widgets never print their values.
func (r *TextRenderer) Render(_ context.Context, page render.Page) ([]byte, error) {
	view := page.View
	var b strings.Builder

	title := page.Title
	if title == "" {
		title = render.DefaultTitle
	}
	fmt.Fprintf(&b, "== %s ==\n", title)

	if view.Feedback != "" {
		fmt.Fprintf(&b, "%s\n", view.Feedback)
	}

	if !view.Editing() {
		b.WriteString("No form selected.\n")
	} else {
		fmt.Fprintf(&b, "Form: %s\n", view.FormType)
		fmt.Fprintf(&b, "Progress: %s %d%%\n", progressBar(view.Progress), view.ProgressPercent)
		for _, field := range view.Fields {
			marker := ""
			if field.Required {
				marker = "*"
			}
			value := view.Value(field.Name)
			if widget, ok := r.widgets.Resolve(field); ok && widget.Masked && value != "" {
				value = strings.Repeat("*", 6)
			}
			fmt.Fprintf(&b, "  %s%s: %s\n", field.DisplayLabel(), marker, value)
			if msg := view.Error(field.Name); msg != "" {
				fmt.Fprintf(&b, "    ! %s\n", msg)
			}
		}
	}

	for _, table := range page.Tables {
		fmt.Fprintf(&b, "\nRecords: %s\n", table.FormType)
		for _, row := range table.Rows {
			fmt.Fprintf(&b, "  #%d %s\n", row.Index, rowSummary(table.Columns, row.Cells))
		}
	}
	return []byte(b.String()), nil
}

func progressBar(percent float64) string {
	filled := int(percent / 100 * progressWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > progressWidth {
		filled = progressWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressWidth-filled) + "]"
}

func rowSummary(columns []render.Column, cells []string) string {
	parts := make([]string, 0, len(columns))
	for i, column := range columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts = append(parts, column.Label+"="+cell)
	}
	return strings.Join(parts, " | ")
}
