// Package themes keeps go-theme manifests for the footer renderers. A
// Registry selects a theme and variant (it implements theme.ThemeSelector),
// and RendererConfig flattens a selection into the theme.RendererConfig
// handed to renderers through render.RenderOptions.
package themes
