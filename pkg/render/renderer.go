package render

import (
	"context"

	"github.com/goliatone/go-rddlgen/pkg/model"
)

// Renderer converts a Document into a byte representation of the generated
// model text.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc model.Document, options RenderOptions) ([]byte, error)
}
