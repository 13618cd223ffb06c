// Package rddlgen generates RDDL planning-domain text from typed problem
// documents. The root package exposes the convenience surface; the pipeline
// stages live under pkg/ and stay individually injectable.
package rddlgen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-rddlgen/pkg/model"
	"github.com/goliatone/go-rddlgen/pkg/orchestrator"
	"github.com/goliatone/go-rddlgen/pkg/problem"
	"github.com/goliatone/go-rddlgen/pkg/rddl"
	"github.com/goliatone/go-rddlgen/pkg/render"
)

// Document aliases the typed problem document for callers that only import
// the root package.
type Document = model.Document

// Request aliases the render request with one field per skeleton placeholder.
type Request = rddl.Request

// RenderOptions describes per-request overrides such as an alternate horizon
// or instance name.
type RenderOptions = render.RenderOptions

// EmbeddedTemplates exposes the built-in skeleton bundle so callers can reuse
// or replace it without importing the rddl package directly.
func EmbeddedTemplates() fs.FS {
	return rddl.TemplatesFS()
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the problem source, parses it, and renders it with the named
// renderer. It is the simplest entry point for callers that just want RDDL
// text from a problem file.
func Generate(ctx context.Context, source problem.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFromModel renders a pre-built document, bypassing the loader and
// parser stages while still delegating to the orchestrator.
func GenerateFromModel(ctx context.Context, doc model.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Model:    &doc,
		Renderer: rendererName,
	})
}
