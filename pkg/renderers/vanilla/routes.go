package vanilla

import (
	"fmt"
	"path"
	"strings"
)

// Routes are the endpoints the rendered forms post to.
type Routes struct {
	SelectForm   string
	SetValues    string
	Submit       string
	EditRecord   string // format string taking the record index
	DeleteRecord string // format string taking the record index
	Assets       string
}

// DefaultRoutes matches the routes served by the bundled HTTP presenter.
func DefaultRoutes() Routes {
	return Routes{
		SelectForm:   "/form/type",
		SetValues:    "/form/values",
		Submit:       "/form/submit",
		EditRecord:   "/records/%d/edit",
		DeleteRecord: "/records/%d/delete",
		Assets:       "/assets",
	}
}

// WithPrefix returns a copy of r mounted under prefix.
func (r Routes) WithPrefix(prefix string) Routes {
	prefix = "/" + strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "/" {
		return r
	}
	join := func(p string) string {
		if p == "" {
			return ""
		}
		return path.Join(prefix, p)
	}
	return Routes{
		SelectForm:   join(r.SelectForm),
		SetValues:    join(r.SetValues),
		Submit:       join(r.Submit),
		EditRecord:   join(r.EditRecord),
		DeleteRecord: join(r.DeleteRecord),
		Assets:       join(r.Assets),
	}
}

func (r Routes) edit(index int) string {
	return fmt.Sprintf(r.EditRecord, index)
}

func (r Routes) remove(index int) string {
	return fmt.Sprintf(r.DeleteRecord, index)
}

func (r Routes) stylesheet() string {
	return path.Join(r.Assets, StylesheetName)
}
