package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	// FooterTemplate is the template path rendered by the vanilla renderer.
	FooterTemplate = "templates/footer.tmpl"
	StylesheetName = "docsfooter.css"
	// ThemeStylesheetKey is the go-theme asset key consulted for a footer
	// stylesheet.
	ThemeStylesheetKey = "footer.stylesheet"
)

// TemplatesFS exposes the embedded template bundle so callers can reuse or
// override the built-in footer markup.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded stylesheet so callers can serve it over HTTP
// or copy it into their asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
