package render

import (
	"context"

	"github.com/goliatone/go-formbs/pkg/element"
)

// Renderer converts a whole form into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form element.Form, options RenderOptions) ([]byte, error)
}
