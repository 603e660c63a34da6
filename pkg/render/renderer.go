package render

import (
	"context"

	"github.com/goliatone/go-docsfooter/pkg/sitemap"
)

// Renderer converts a footer tree into a byte representation (HTML, JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, footer sitemap.Footer, options RenderOptions) ([]byte, error)
}
