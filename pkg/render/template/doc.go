// Package template defines the renderer-agnostic template interface used by
// the footer renderers. The gotemplate sub-package provides the pongo2-backed
// implementation.
package template
