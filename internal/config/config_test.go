package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewDefaultConfig_IsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, ":8080", cfg.HTTP.Address())
}

func TestLoad_OverlaysDefaultsAndExpandsEnv(t *testing.T) {
	t.Setenv("DYNFORM_TEST_PORT", "9191")
	path := writeConfig(t, `
app:
  log_level: debug
  log_format: text
http:
  port: ${DYNFORM_TEST_PORT}
catalog:
  path: ./forms
theme:
  name: default
  variant: dark
  tokens:
    accent: "#ff0000"
`)

	cfg := NewDefaultConfig()
	require.NoError(t, Load(path, cfg))

	require.Equal(t, slog.LevelDebug, cfg.App.LogLevel)
	require.Equal(t, LogFormatText, cfg.App.LogFormat)
	require.Equal(t, 9191, cfg.HTTP.Port)
	require.Equal(t, "Dynamic Form", cfg.HTTP.Title)
	require.Equal(t, "./forms", cfg.Catalog.Path)
	require.Equal(t, "dark", cfg.Theme.Variant)
	require.Equal(t, map[string]string{"accent": "#ff0000"}, cfg.Theme.Tokens)
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"port out of range": "http:\n  port: 70000\n",
		"unknown format":    "app:\n  log_format: xml\n",
		"no sources":        "catalog:\n  skip_default: true\n",
		"blank theme":       "theme:\n  name: \"\"\n",
		"missing templates": "http:\n  templates_dir: /nonexistent/dynform\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			err := Load(writeConfig(t, body), cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestLoad_MissingAndMalformedFiles(t *testing.T) {
	cfg := NewDefaultConfig()
	require.Error(t, Load(filepath.Join(t.TempDir(), "missing.yaml"), cfg))
	require.Error(t, Load(writeConfig(t, "http: [unterminated"), cfg))
}

func TestLoadOptional(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"), cfg))
	require.Equal(t, 8080, cfg.HTTP.Port)

	require.NoError(t, LoadOptional(writeConfig(t, "http:\n  port: 3000\n"), cfg))
	require.Equal(t, 3000, cfg.HTTP.Port)

	bad := NewDefaultConfig()
	bad.HTTP.Port = 0
	require.Error(t, LoadOptional("", bad))
}

func TestApplicationConfig_DefaultsFormat(t *testing.T) {
	cfg := ApplicationConfig{}
	require.NoError(t, cfg.Validate())
	require.Equal(t, LogFormatJSON, cfg.LogFormat)
}
