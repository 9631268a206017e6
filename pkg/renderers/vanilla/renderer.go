package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-dynform/pkg/render"
	rendertemplate "github.com/goliatone/go-dynform/pkg/render/template"
	"github.com/goliatone/go-dynform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-dynform/pkg/widgets"
)

// Name is the registry key of the vanilla renderer.
const Name = "vanilla"

const defaultPageTemplate = "templates/page.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	widgets          *widgets.Registry
	routes           Routes
}

// WithTemplatesFS supplies an alternate template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. The directory
// must hold templates/page.tmpl, and it takes precedence over WithTemplatesFS.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithWidgets overrides the widget registry used to pick controls.
func WithWidgets(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.widgets = registry
		}
	}
}

// WithRoutes overrides the endpoints forms post to.
func WithRoutes(routes Routes) Option {
	return func(cfg *config) {
		cfg.routes = routes
	}
}

// Renderer draws a full HTML page: form selector, active form, progress
// bar, feedback banner and record tables.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	widgets   *widgets.Registry
	routes    Routes
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), routes: DefaultRoutes()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.widgets == nil {
		cfg.widgets = widgets.NewRegistry()
	}

	engine := cfg.templateRenderer
	if engine == nil {
		source := gotemplate.WithFS(cfg.templateFS)
		if cfg.templatesDir != "" {
			source = gotemplate.WithBaseDir(cfg.templatesDir)
		}
		built, err := gotemplate.New(source, gotemplate.WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		engine = built
	}

	return &Renderer{templates: engine, widgets: cfg.widgets, routes: cfg.routes}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws page. A theme may swap the page template through the
// render.PartialPage partial.
func (r *Renderer) Render(_ context.Context, page render.Page) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	data, err := r.buildContext(page)
	if err != nil {
		return nil, err
	}

	name := defaultPageTemplate
	if page.Theme != nil && page.Theme.Partials[render.PartialPage] != "" {
		name = page.Theme.Partials[render.PartialPage]
	}
	out, err := r.templates.RenderTemplate(name, map[string]any{"page": data})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(out), nil
}
