package render

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456", "ink": "#000000"},
		Templates: map[string]string{
			PartialPage: "themes/acme/page.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{"brand": "#654321"},
				Assets: theme.Assets{
					Files: map[string]string{"logo": "logo.dark.svg"},
				},
			},
		},
	}
}

func TestThemes_SelectAndResolve(t *testing.T) {
	themes, err := NewThemes(acmeManifest())
	if err != nil {
		t.Fatalf("new themes: %v", err)
	}

	cfg, err := ResolveTheme(themes, "acme", "dark")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection %s/%s", cfg.Theme, cfg.Variant)
	}
	wantTokens := map[string]string{"brand": "#654321", "ink": "#000000"}
	if diff := cmp.Diff(wantTokens, cfg.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens: %v", cfg.CSSVars)
	}
	if cfg.Partials[PartialPage] != "themes/acme/page.tmpl" {
		t.Fatalf("partials not propagated: %v", cfg.Partials)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("logo"); got != "/assets/themes/acme/logo.dark.svg" {
		t.Fatalf("unexpected logo url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %q", got)
	}
}

func TestThemes_FallbacksAndErrors(t *testing.T) {
	themes, err := NewThemes(DefaultManifest(), acmeManifest())
	if err != nil {
		t.Fatalf("new themes: %v", err)
	}

	sel, err := themes.Select("", "unknown-variant")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Theme != "default" || sel.Variant != "" {
		t.Fatalf("expected default base theme, got %s/%s", sel.Theme, sel.Variant)
	}

	if _, err := themes.Select("nope", ""); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if err := themes.Add(acmeManifest()); err == nil {
		t.Fatalf("expected duplicate theme error")
	}
}

func TestCSSVarsStyle(t *testing.T) {
	got := CSSVarsStyle(CSSVars(map[string]string{"b": "2", "--a": "1"}))
	want := ":root {\n  --a: 1;\n  --b: 2;\n}"
	if got != want {
		t.Fatalf("style mismatch\nwant: %q\n got: %q", want, got)
	}
	if CSSVarsStyle(nil) != "" {
		t.Fatalf("expected empty style for no vars")
	}
}
