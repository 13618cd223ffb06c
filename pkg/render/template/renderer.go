package template

import (
	"io"
)

// TemplateRenderer is the engine contract renderers rely on. Render picks the
// right entry point based on whether name looks like inline template content;
// RenderTemplate resolves name against the engine's template source.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
