package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalloader "github.com/goliatone/go-rddlgen/internal/problem/loader"
	internalparser "github.com/goliatone/go-rddlgen/internal/problem/parser"
	"github.com/goliatone/go-rddlgen/pkg/model"
	"github.com/goliatone/go-rddlgen/pkg/problem"
	"github.com/goliatone/go-rddlgen/pkg/render"
	"github.com/goliatone/go-rddlgen/pkg/renderers/rddltext"
)

const defaultRendererName = "rddl"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom problem loader.
func WithLoader(loader problem.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLoaderOptions builds the default loader from the supplied options,
// enabling HTTP sources or an alternate filesystem without a custom Loader.
func WithLoaderOptions(options ...problem.LoaderOption) Option {
	return func(o *Orchestrator) {
		o.loader = internalloader.New(problem.NewLoaderOptions(options...))
	}
}

// WithParser injects a custom problem parser.
func WithParser(parser problem.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// Orchestrator coordinates the full pipeline from problem description to
// rendered model text. It applies sensible defaults (RDDL renderer, offline
// loader) while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          problem.Loader
	parser          problem.Parser
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render one problem.
type Request struct {
	// Source identifies where the problem description lives. Optional when
	// Document or Model is supplied.
	Source problem.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *problem.Document

	// Model allows callers to bypass both loader and parser by supplying the
	// typed document directly.
	Model *model.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request overrides such as an alternate
	// horizon or instance name. When omitted, renderers receive the
	// zero-value struct.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → parser → renderer sequence and returns the
// rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := o.resolveModel(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	out, err := renderer.Render(ctx, doc, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render with %q: %w", renderer.Name(), err)
	}
	return out, nil
}

// Registry exposes the configured renderer registry so callers can register
// additional renderers after construction.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

func (o *Orchestrator) resolveModel(ctx context.Context, req Request) (model.Document, error) {
	if req.Model != nil {
		return *req.Model, nil
	}

	var (
		doc problem.Document
		err error
	)
	switch {
	case req.Document != nil:
		doc = *req.Document
	case req.Source != nil:
		doc, err = o.loader.Load(ctx, req.Source)
		if err != nil {
			return model.Document{}, fmt.Errorf("orchestrator: load problem: %w", err)
		}
	default:
		return model.Document{}, errors.New("orchestrator: request needs a source, document, or model")
	}

	parsed, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return model.Document{}, fmt.Errorf("orchestrator: parse problem: %w", err)
	}
	return parsed, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve renderer: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	o.defaultsApplied = true

	if o.loader == nil {
		o.loader = internalloader.New(problem.LoaderOptions{})
	}
	if o.parser == nil {
		o.parser = internalparser.New()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
	}
	if !o.registry.Has(defaultRendererName) {
		renderer, err := rddltext.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise default renderer: %w", err)
			return
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register default renderer: %w", err)
		}
	}
}
