package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-dynform/pkg/controller"
	"github.com/goliatone/go-dynform/pkg/schema"
)

// DefaultTitle heads pages that do not set one.
const DefaultTitle = "Dynamic Form"

// Page is everything a renderer needs to draw one screen: the controller
// snapshot plus presentation data derived from it.
type Page struct {
	Title  string
	View   controller.View
	Tables []RecordTable
	Hidden []HiddenField
	Theme  *theme.RendererConfig
}

// PageOption customises NewPage.
type PageOption func(*Page)

// WithTitle overrides DefaultTitle.
func WithTitle(title string) PageOption {
	return func(p *Page) {
		if title != "" {
			p.Title = title
		}
	}
}

// WithTheme attaches a resolved theme configuration.
func WithTheme(cfg *theme.RendererConfig) PageOption {
	return func(p *Page) {
		p.Theme = cfg
	}
}

// WithHidden appends hidden inputs emitted inside the value form.
func WithHidden(fields ...HiddenField) PageOption {
	return func(p *Page) {
		p.Hidden = append(p.Hidden, fields...)
	}
}

// NewPage derives a Page from view. Record tables take their columns from
// source so they follow schema order.
func NewPage(view controller.View, source schema.Source, options ...PageOption) Page {
	page := Page{
		Title:  DefaultTitle,
		View:   view,
		Tables: RecordTables(view.Records, source),
	}
	if view.Editing() {
		page.Hidden = append(page.Hidden, Hidden(FormTypeField, view.FormType))
	}
	for _, opt := range options {
		if opt != nil {
			opt(&page)
		}
	}
	page.Hidden = SortHidden(page.Hidden)
	return page
}
