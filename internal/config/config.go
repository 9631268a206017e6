// Package config defines the dynform application configuration and loads it
// from YAML with environment variable expansion.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Log formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	HTTP    HTTPConfig        `yaml:"http"`
	Catalog CatalogConfig     `yaml:"catalog"`
	Theme   ThemeConfig       `yaml:"theme"`
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if err := c.Catalog.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := c.Theme.Validate(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// ApplicationConfig holds process-wide settings.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatJSON
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatJSON, LogFormatText)),
	)
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port  int    `yaml:"port"`
	Title string `yaml:"title"`
	// TemplatesDir replaces the bundled HTML templates. It must contain
	// templates/page.tmpl.
	TemplatesDir string `yaml:"templates_dir"`
}

// Address returns the listen address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.TemplatesDir, validation.By(isDir)),
	)
}

// isDir accepts an empty path or an existing directory.
func isDir(value any) error {
	path, _ := value.(string)
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// CatalogConfig lists where form schemas come from. Sources are merged in
// order: built-in forms, Path, then OpenAPI.
type CatalogConfig struct {
	// Path is a directory of YAML/JSON catalog documents.
	Path string `yaml:"path"`
	// OpenAPI is a local OpenAPI 3 document whose component schemas become
	// form types.
	OpenAPI string `yaml:"openapi"`
	// SkipDefault drops the built-in forms.
	SkipDefault bool `yaml:"skip_default"`
}

// Validate validates the catalog configuration.
func (c *CatalogConfig) Validate() error {
	if c.SkipDefault && c.Path == "" && c.OpenAPI == "" {
		return errors.New("no form sources configured")
	}
	return nil
}

// ThemeConfig selects the page theme. Tokens override theme tokens and end
// up as CSS custom properties.
type ThemeConfig struct {
	Name    string            `yaml:"name"`
	Variant string            `yaml:"variant"`
	Tokens  map[string]string `yaml:"tokens"`
}

// Validate validates the theme configuration.
func (c *ThemeConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
	)
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatJSON,
		},
		HTTP: HTTPConfig{
			Port:  8080,
			Title: "Dynamic Form",
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}
