// Package template defines the engine seam renderers depend on. Concrete
// engines live in subpackages; renderers only see the TemplateRenderer
// interface so tests can substitute fakes and callers can swap engines.
package template
