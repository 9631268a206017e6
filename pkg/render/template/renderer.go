package template

import (
	"io"
)

// TemplateRenderer is the engine contract renderers depend on. Named
// templates are resolved by the engine; RenderString parses inline content.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
