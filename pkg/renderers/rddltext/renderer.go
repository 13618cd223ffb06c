package rddltext

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-rddlgen/pkg/model"
	"github.com/goliatone/go-rddlgen/pkg/rddl"
	"github.com/goliatone/go-rddlgen/pkg/render"
	rendertemplate "github.com/goliatone/go-rddlgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-rddlgen/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	builder          model.Builder
}

// WithTemplatesFS supplies an alternate skeleton bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the skeleton from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithBuilder injects a custom request builder.
func WithBuilder(builder model.Builder) Option {
	return func(cfg *config) {
		if builder != nil {
			cfg.builder = builder
		}
	}
}

// Renderer produces RDDL model text from a Document.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	builder   model.Builder
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the RDDL renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: rddl.TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = rddl.TemplatesFS()
	}
	if cfg.builder == nil {
		cfg.builder = model.NewBuilder()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("rddl renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, builder: cfg.builder}, nil
}

func (r *Renderer) Name() string {
	return "rddl"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render formats the document into a substitution request and fills the
// skeleton. The document is taken by value, so per-request overrides never
// leak back into the caller's copy.
func (r *Renderer) Render(_ context.Context, doc model.Document, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("rddl renderer: template renderer is nil")
	}

	options.Apply(&doc.Instance)

	req, err := r.builder.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("rddl renderer: build request: %w", err)
	}

	values := req.Values()
	// Guards against the skeleton gaining a placeholder the request struct
	// does not cover.
	if err := rddl.Validate(values); err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate(rddl.SkeletonTemplateName, values)
	if err != nil {
		return nil, fmt.Errorf("rddl renderer: render skeleton: %w", err)
	}
	return []byte(result), nil
}
