package render

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// PartialPage is the theme partial key naming the page template.
const PartialPage = "dynform.page"

// ErrThemeNotFound is returned when a selector has no manifest for a name.
var ErrThemeNotFound = errors.New("render: theme not found")

// DefaultManifest is the built-in look. Token names become CSS custom
// properties prefixed with "--".
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "default",
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent":       "#4a90e2",
			"progress":     "#4caf50",
			"error":        "#d9534f",
			"surface":      "#ffffff",
			"text":         "#222222",
			"border":       "#dddddd",
			"feedback-bg":  "#e8f5e9",
			"feedback-ink": "#2e7d32",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"surface":     "#1e1e1e",
					"text":        "#eeeeee",
					"border":      "#444444",
					"feedback-bg": "#1b3a1f",
				},
			},
		},
	}
}

// Themes is an in-memory theme.ThemeSelector keyed by manifest name.
type Themes struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
	fallback  string
}

var _ theme.ThemeSelector = (*Themes)(nil)

// NewThemes registers manifests; the first one becomes the fallback for
// blank names.
func NewThemes(manifests ...*theme.Manifest) (*Themes, error) {
	t := &Themes{manifests: make(map[string]*theme.Manifest)}
	for _, manifest := range manifests {
		if err := t.Add(manifest); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add registers manifest. Names must be unique.
func (t *Themes) Add(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("render: theme manifest is required")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("render: theme name is required")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.manifests[name]; exists {
		return fmt.Errorf("render: theme %q already registered", name)
	}
	t.manifests[name] = manifest
	if t.fallback == "" {
		t.fallback = name
	}
	return nil
}

// Select implements theme.ThemeSelector. An unknown variant resolves to the
// base manifest.
func (t *Themes) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = t.fallback
	}
	manifest, ok := t.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	variant = strings.TrimSpace(variant)
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// ResolveTheme asks selector for name/variant and flattens the selection
// into a renderer config.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("render: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return ThemeConfig(selection), nil
}

// ThemeConfig merges the selected variant over its base manifest: tokens,
// partials and asset files from the variant win. CSS variables mirror the
// merged tokens.
func ThemeConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest

	tokens := mergeStrings(manifest.Tokens, nil)
	partials := mergeStrings(manifest.Templates, nil)
	prefix := manifest.Assets.Prefix
	files := mergeStrings(manifest.Assets.Files, nil)

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStrings(tokens, variant.Tokens)
		partials = mergeStrings(partials, variant.Templates)
		files = mergeStrings(files, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  CSSVars(tokens),
		AssetURL: assetResolver(prefix, files),
	}
}

// CSSVars maps token names to custom property names.
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out[name] = value
	}
	return out
}

// CSSVarsStyle renders vars as a sorted :root rule.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return path.Join(prefix, file)
	}
}

func mergeStrings(base, overlay map[string]string) map[string]string {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}
