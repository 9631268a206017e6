package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dynform/pkg/schema"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// catalogDocument mirrors the shape schema.LoadFS reads, so yaml and json
// output can be fed back in as a catalog directory.
type catalogDocument struct {
	Forms []schema.Form `json:"forms" yaml:"forms"`
}

func writeCatalog(w io.Writer, catalog *schema.Catalog, format string) error {
	doc := catalogDocument{Forms: catalog.Forms()}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case formatText, "":
		for _, form := range doc.Forms {
			fmt.Fprintln(w, form.Type)
			for _, field := range form.Fields {
				marker := ""
				if field.Required {
					marker = ", required"
				}
				fmt.Fprintf(w, "  %s (%s%s): %s\n", field.Name, field.Kind, marker, field.Label)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
