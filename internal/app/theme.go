package app

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-dynform/internal/config"
	"github.com/goliatone/go-dynform/pkg/render"
)

// BuildTheme registers the built-in manifest under the configured name with
// configured tokens layered on top, then resolves the requested variant.
func BuildTheme(cfg config.ThemeConfig) (*theme.RendererConfig, error) {
	manifest := render.DefaultManifest()
	if cfg.Name != "" {
		manifest.Name = cfg.Name
	}
	for key, value := range cfg.Tokens {
		manifest.Tokens[key] = value
	}

	themes, err := render.NewThemes(manifest)
	if err != nil {
		return nil, err
	}
	return render.ResolveTheme(themes, manifest.Name, cfg.Variant)
}
