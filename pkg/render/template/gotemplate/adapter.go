package gotemplate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-dynform/pkg/render/template"
)

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates  fs.FS
	extension  string
	filters    map[string]func(any, any) (any, error)
	globalData map[string]any
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		if dir = strings.TrimSpace(dir); dir != "" {
			cfg.templates = os.DirFS(dir)
		}
	}
}

// WithExtension sets the suffix appended to template names that lack it.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.extension = ext
	}
}

// WithFilter registers a filter when the engine is built.
func WithFilter(name string, fn func(input any, param any) (any, error)) Option {
	return func(cfg *config) {
		if cfg.filters == nil {
			cfg.filters = make(map[string]func(any, any) (any, error))
		}
		cfg.filters[strings.TrimSpace(name)] = fn
	}
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine implements template.TemplateRenderer on a pongo2 template set.
// Parsed templates are cached by name.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	extension string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. A template source is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: ".tmpl"}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.templates == nil {
		return nil, errors.New("gotemplate: a template fs.FS or base dir is required")
	}

	engine := &Engine{
		set:       pongo2.NewSet("dynform", pongo2.NewFSLoader(cfg.templates)),
		templates: make(map[string]*pongo2.Template),
		extension: cfg.extension,
	}
	registerBuiltinFilters()

	for name, fn := range cfg.filters {
		if err := engine.RegisterFilter(name, fn); err != nil {
			return nil, err
		}
	}
	if len(cfg.globalData) > 0 {
		if err := engine.GlobalContext(cfg.globalData); err != nil {
			return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
		}
	}
	return engine, nil
}

// RenderTemplate executes the named template, appending the configured
// extension when name has none. The output is also copied to every writer in
// out.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	if !strings.HasSuffix(name, e.extension) {
		name += e.extension
	}
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, data, fmt.Sprintf("template %q", name), out)
}

// RenderString parses content and executes it.
func (e *Engine) RenderString(content string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	return e.execute(tmpl, data, "template string", out)
}

// RegisterFilter adds fn as a pongo2 filter. Filters are process-wide in
// pongo2, so a name can only be registered once.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the values every template sees.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("gotemplate: engine is nil")
	}
	if data == nil {
		return nil
	}
	ctx, err := toContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	e.set.Globals.Update(ctx)
	return nil
}

func (e *Engine) execute(tmpl *pongo2.Template, data any, label string, out []io.Writer) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", label, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}

// toContext normalises data into a pongo2.Context. Structs go through their
// JSON encoding, so templates address fields by json tag.
func toContext(data any) (pongo2.Context, error) {
	var raw map[string]any
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		raw = v
	case map[string]any:
		raw = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(encoded, &raw); err != nil {
			return nil, fmt.Errorf("data must encode to a JSON object: %w", err)
		}
	}

	ctx := make(pongo2.Context, len(raw))
	for key, value := range raw {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		normalised, err := normalise(value)
		if err != nil {
			return nil, err
		}
		ctx[key] = normalised
	}
	return ctx, nil
}

func normalise(value any) (any, error) {
	switch value.(type) {
	case nil, string, bool, int, int64:
		return value, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, err
	}
	return integral(decoded), nil
}

// integral turns whole float64 values back into ints after a JSON round
// trip; pongo2 prints floats with six decimals.
func integral(value any) any {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int(v)
		}
		return v
	case []any:
		for i := range v {
			v[i] = integral(v[i])
		}
		return v
	case map[string]any:
		for key := range v {
			v[key] = integral(v[key])
		}
		return v
	default:
		return value
	}
}

func registerBuiltinFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(strings.TrimSpace(in.String())), nil
		})
	}
}
