package docsfooter

import (
	"io/fs"

	vanilla "github.com/goliatone/go-docsfooter/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// StylesheetFS exposes the bundled footer stylesheet so Go applications can
// serve it without a frontend build step.
//
// Typical mount:
//
//	mux.Handle("/footer/",
//	  http.StripPrefix("/footer/",
//	    http.FileServerFS(docsfooter.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	return vanilla.AssetsFS()
}
