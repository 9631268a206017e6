package app

import (
	"context"
	"fmt"
	"os"

	"github.com/goliatone/go-dynform/internal/config"
	"github.com/goliatone/go-dynform/pkg/schema"
)

// BuildCatalog merges the configured form sources in order: built-in forms
// unless skipped, the catalog directory, then the OpenAPI document.
func BuildCatalog(ctx context.Context, cfg config.CatalogConfig) (*schema.Catalog, error) {
	var parts []*schema.Catalog
	if !cfg.SkipDefault {
		parts = append(parts, schema.Default())
	}

	if cfg.Path != "" {
		info, err := os.Stat(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("catalog path: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("catalog path %s is not a directory", cfg.Path)
		}
		dir, err := schema.LoadFS(os.DirFS(cfg.Path))
		if err != nil {
			return nil, err
		}
		parts = append(parts, dir)
	}

	if cfg.OpenAPI != "" {
		data, err := os.ReadFile(cfg.OpenAPI)
		if err != nil {
			return nil, fmt.Errorf("read openapi document: %w", err)
		}
		doc, err := schema.FromOpenAPI(ctx, data)
		if err != nil {
			return nil, err
		}
		parts = append(parts, doc)
	}

	catalog, err := schema.Merge(parts...)
	if err != nil {
		return nil, err
	}
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("catalog declares no form types")
	}
	return catalog, nil
}
