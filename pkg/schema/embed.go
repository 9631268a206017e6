package schema

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed catalogs/*.yaml
var embeddedCatalogs embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// CatalogsFS exposes the embedded catalog documents.
func CatalogsFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalogs, "catalogs")
	if err != nil {
		return embeddedCatalogs
	}
	return sub
}

// Default returns the built-in catalog: "User Information", "Address
// Information" and "Payment Information". The embedded document is validated
// by tests, so a failure here is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		catalog, err := LoadFS(CatalogsFS())
		if err != nil {
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}
