package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type catalogDocument struct {
	Forms []Form `json:"forms" yaml:"forms"`
}

// LoadFS walks fsys and parses every JSON/YAML catalog document it finds.
// Files are visited in lexical order so the resulting form order is stable.
// A nil fsys or a tree without catalog files yields an empty catalog.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return NewCatalog()
	}

	var forms []Form
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		doc, err := parseCatalogDocument(data, path)
		if err != nil {
			return err
		}
		forms = append(forms, doc.Forms...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	catalog, err := NewCatalog(forms...)
	if err != nil {
		return nil, fmt.Errorf("schema: load catalog: %w", err)
	}
	return catalog, nil
}

// ParseCatalog decodes a single JSON or YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	doc, err := parseCatalogDocument(data, "catalog")
	if err != nil {
		return nil, err
	}
	return NewCatalog(doc.Forms...)
}

func parseCatalogDocument(data []byte, source string) (catalogDocument, error) {
	var doc catalogDocument
	if len(strings.TrimSpace(string(data))) == 0 {
		return catalogDocument{}, fmt.Errorf("schema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = catalogDocument{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return catalogDocument{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
