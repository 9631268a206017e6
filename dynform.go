// Package dynform is the convenience entry point: it re-exports the core
// types and wires the built-in catalog and HTML renderer for callers that
// just want a working form.
package dynform

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-dynform/pkg/controller"
	"github.com/goliatone/go-dynform/pkg/record"
	"github.com/goliatone/go-dynform/pkg/render"
	"github.com/goliatone/go-dynform/pkg/renderers/vanilla"
	"github.com/goliatone/go-dynform/pkg/schema"
)

// Controller owns the active form and the submitted records.
type Controller = controller.Controller

// View is a read-only snapshot of the controller.
type View = controller.View

// FieldSchema describes one form input.
type FieldSchema = schema.FieldSchema

// Catalog maps form types to field lists.
type Catalog = schema.Catalog

// Record is a submitted form snapshot.
type Record = record.Record

// NewController returns a controller over the built-in catalog.
func NewController(options ...controller.Option) *Controller {
	return controller.New(schema.Default(), options...)
}

// DefaultCatalog returns the built-in User, Address and Payment forms.
func DefaultCatalog() *Catalog {
	return schema.Default()
}

// RenderHTML draws view with the built-in HTML renderer. A nil source uses
// the built-in catalog for record-table columns.
func RenderHTML(ctx context.Context, view View, source schema.Source, options ...render.PageOption) ([]byte, error) {
	if source == nil {
		source = schema.Default()
	}
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.NewPage(view, source, options...))
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can
// extend them and pass the result back through vanilla.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the stylesheet served under /assets/.
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(dynform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
