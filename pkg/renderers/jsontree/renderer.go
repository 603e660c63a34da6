// Package jsontree renders the footer tree as JSON so client-side page
// frameworks can mount the footer themselves.
package jsontree

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-docsfooter/pkg/render"
	"github.com/goliatone/go-docsfooter/pkg/sitemap"
)

// Name identifies the renderer in a render.Registry.
const Name = "json"

type Option func(*Renderer)

// WithIndent overrides the indentation used for the output. An empty indent
// produces compact JSON.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer emits the footer tree plus the resolved theme identity.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

type document struct {
	Footer sitemap.Footer `json:"footer"`
	Theme  *themeInfo     `json:"theme,omitempty"`
}

type themeInfo struct {
	Name    string            `json:"name,omitempty"`
	Variant string            `json:"variant,omitempty"`
	CSSVars map[string]string `json:"cssVars,omitempty"`
}

func (r *Renderer) Render(ctx context.Context, footer sitemap.Footer, opts render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("json renderer: %w", err)
		}
	}

	if lang := strings.TrimSpace(opts.Language); lang != "" {
		footer.Language = lang
	}
	doc := document{Footer: footer}
	if cfg := opts.Theme; cfg != nil {
		doc.Theme = &themeInfo{Name: cfg.Theme, Variant: cfg.Variant, CSSVars: cfg.CSSVars}
	}

	var (
		out []byte
		err error
	)
	if r.indent == "" {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: encode footer: %w", err)
	}
	return append(out, '\n'), nil
}
