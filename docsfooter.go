// Package docsfooter renders the footer of a documentation site (a sitemap of
// docs, community and repository links plus a copyright line) from a site
// configuration record. It re-exports the most common entry points of the
// pkg/ packages.
package docsfooter

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-docsfooter/pkg/orchestrator"
	"github.com/goliatone/go-docsfooter/pkg/render"
	"github.com/goliatone/go-docsfooter/pkg/siteconfig"
)

// Config is the site configuration record.
type Config = siteconfig.Config

// RenderOptions describes per-request data renderers use to customise output.
type RenderOptions = render.RenderOptions

// Request describes one footer rendering.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML builds the footer for cfg and renders it with the named
// renderer (the vanilla HTML renderer when empty).
func GenerateHTML(ctx context.Context, cfg Config, language, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Config:   cfg,
		Language: language,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
