package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without changing the footer tree.
type RenderOptions struct {
	// Language is the language the footer was built for. HTML renderers emit
	// it as the footer's lang attribute.
	Language string
	// Theme carries the resolved go-theme selection (tokens, CSS variables,
	// asset resolver). Nil renders the unthemed footer.
	Theme *theme.RendererConfig
}
