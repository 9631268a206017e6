// Package httpserver exposes the form controller to browsers. Form posts
// map onto controller actions and every page is drawn by a registered
// renderer.
package httpserver

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-dynform/pkg/controller"
	"github.com/goliatone/go-dynform/pkg/render"
	"github.com/goliatone/go-dynform/pkg/renderers/tui"
	"github.com/goliatone/go-dynform/pkg/renderers/vanilla"
	"github.com/goliatone/go-dynform/pkg/schema"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and action logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTheme attaches a resolved theme to every rendered page.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(s *Server) {
		s.theme = cfg
	}
}

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}

// WithRenderers replaces the renderer registry. It must contain the
// vanilla renderer.
func WithRenderers(registry *render.Registry) Option {
	return func(s *Server) {
		if registry != nil {
			s.renderers = registry
		}
	}
}

// Server holds the shared controller. One controller serves every request,
// so all browsers see the same form and records.
type Server struct {
	ctrl      *controller.Controller
	source    schema.Source
	renderers *render.Registry
	theme     *theme.RendererConfig
	title     string
	logger    *slog.Logger
}

// New builds a server around ctrl. source supplies record-table columns.
func New(ctrl *controller.Controller, source schema.Source, options ...Option) (*Server, error) {
	if ctrl == nil {
		return nil, errors.New("httpserver: controller is required")
	}
	s := &Server{
		ctrl:   ctrl,
		source: source,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.renderers == nil {
		registry, err := DefaultRenderers()
		if err != nil {
			return nil, err
		}
		s.renderers = registry
	}
	return s, nil
}

// DefaultRenderers registers the HTML and plain-text renderers. options
// configure the HTML renderer.
func DefaultRenderers(options ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(tui.NewTextRenderer(nil)); err != nil {
		return nil, err
	}
	return registry, nil
}

// Handler returns the chi router with every route mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	assets := http.FileServer(http.FS(vanilla.AssetsFS()))
	r.Handle("/assets/*", http.StripPrefix("/assets/", assets))

	r.Get("/", s.handlePage)
	r.Post("/form/type", s.handleSelectFormType)
	r.Post("/form/values", s.handleSetValues)
	r.Post("/form/submit", s.handleSubmit)
	r.Post("/records/{index}/edit", s.handleEditRecord)
	r.Post("/records/{index}/delete", s.handleDeleteRecord)
	r.Get("/api/view", s.handleView)
	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()))
		})
	}
}
