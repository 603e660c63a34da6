package themes_test

import (
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docsfooter/pkg/themes"
)

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Templates: map[string]string{
			"footer.sitemap": "themes/acme/sitemap.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"footer.stylesheet": "footer.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					"footer.copyright": "themes/acme/dark/copyright.tmpl",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"footer.logo": "logo.dark.svg",
					},
				},
			},
		},
	}
}

func TestRegistry_SelectExplicit(t *testing.T) {
	registry := themes.NewRegistry()
	registry.MustRegister(acmeManifest())

	sel, err := registry.Select("acme", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Theme != "acme" || sel.Variant != "dark" {
		t.Fatalf("unexpected selection: %s/%s", sel.Theme, sel.Variant)
	}
	if sel.Manifest == nil || sel.Manifest.Name != "acme" {
		t.Fatalf("expected manifest attached to selection")
	}
}

func TestRegistry_SelectFallbacks(t *testing.T) {
	registry := themes.NewRegistry()
	registry.MustRegister(acmeManifest())

	sel, err := registry.Select("", "")
	if err != nil {
		t.Fatalf("select single theme: %v", err)
	}
	if sel.Theme != "acme" || sel.Variant != "" {
		t.Fatalf("expected sole theme without variant, got %s/%s", sel.Theme, sel.Variant)
	}

	registry.SetDefaults("acme", "dark")
	sel, err = registry.Select("", "")
	if err != nil {
		t.Fatalf("select defaults: %v", err)
	}
	if sel.Variant != "dark" {
		t.Fatalf("expected default variant, got %q", sel.Variant)
	}

	registry.SetDefaults("acme", "sepia")
	sel, err = registry.Select("", "")
	if err != nil {
		t.Fatalf("select undeclared default variant: %v", err)
	}
	if sel.Variant != "" {
		t.Fatalf("expected base theme when default variant is undeclared, got %q", sel.Variant)
	}
}

func TestRegistry_SelectErrors(t *testing.T) {
	registry := themes.NewRegistry()
	registry.MustRegister(acmeManifest())

	if _, err := registry.Select("missing", ""); !errors.Is(err, themes.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if _, err := registry.Select("acme", "sepia"); !errors.Is(err, themes.ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}

	empty := themes.NewRegistry()
	if _, err := empty.Select("", ""); !errors.Is(err, themes.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound on empty registry, got %v", err)
	}
}

func TestRegistry_RegisterRejectsInvalid(t *testing.T) {
	registry := themes.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil manifest")
	}
	if err := registry.Register(&theme.Manifest{Version: "1.0.0"}); err == nil {
		t.Fatalf("expected error for unnamed manifest")
	}
	registry.MustRegister(acmeManifest())
	if err := registry.Register(acmeManifest()); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRendererConfig_MergesVariant(t *testing.T) {
	registry := themes.NewRegistry()
	registry.MustRegister(acmeManifest())

	sel, err := registry.Select("acme", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	cfg := themes.RendererConfig(sel, map[string]string{
		"footer.sitemap": "templates/sitemap.tmpl",
		"footer.home":    "templates/home.tmpl",
	})

	wantPartials := map[string]string{
		"footer.sitemap":   "themes/acme/sitemap.tmpl",
		"footer.home":      "templates/home.tmpl",
		"footer.copyright": "themes/acme/dark/copyright.tmpl",
	}
	if diff := cmp.Diff(wantPartials, cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"--brand": "#654321"}, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("tokens not merged with variant override, got %s", cfg.Tokens["brand"])
	}
	if got := cfg.AssetURL("footer.stylesheet"); got != "/assets/themes/acme/footer.css" {
		t.Fatalf("unexpected stylesheet url: %s", got)
	}
	if got := cfg.AssetURL("footer.logo"); got != "/assets/themes/acme/logo.dark.svg" {
		t.Fatalf("unexpected variant asset url: %s", got)
	}
	if got := cfg.AssetURL("unknown"); got != "" {
		t.Fatalf("expected empty url for unknown asset, got %s", got)
	}
}

func TestRendererConfig_BaseThemeAndNil(t *testing.T) {
	if themes.RendererConfig(nil, nil) != nil {
		t.Fatalf("expected nil config for nil selection")
	}

	manifest := acmeManifest()
	manifest.Assets.Files["cdn"] = "https://cdn.example.com/footer.css"
	cfg := themes.RendererConfig(&theme.Selection{Theme: "acme", Manifest: manifest}, nil)

	if cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("expected base token, got %s", cfg.CSSVars["--brand"])
	}
	if _, ok := cfg.Partials["footer.copyright"]; ok {
		t.Fatalf("variant partial leaked into base selection")
	}
	if got := cfg.AssetURL("cdn"); got != "https://cdn.example.com/footer.css" {
		t.Fatalf("absolute asset rewritten: %s", got)
	}
}

func TestRegistry_LoadFile(t *testing.T) {
	registry := themes.NewRegistry()
	if err := registry.LoadFile(filepath.Join("testdata", "themes.yaml")); err != nil {
		t.Fatalf("load file: %v", err)
	}

	if diff := cmp.Diff([]string{"acme", "plain"}, registry.List()); diff != "" {
		t.Fatalf("theme names mismatch (-want +got):\n%s", diff)
	}
	name, variant := registry.Defaults()
	if name != "acme" || variant != "" {
		t.Fatalf("unexpected defaults %s/%s", name, variant)
	}

	sel, err := registry.Select("", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	cfg := themes.RendererConfig(sel, nil)
	if cfg.CSSVars["--brand"] != "#654321" || cfg.CSSVars["--footer-background"] != "#000000" {
		t.Fatalf("unexpected css vars: %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL("footer.logo"); got != "/assets/themes/acme/logo.dark.svg" {
		t.Fatalf("unexpected asset url: %s", got)
	}
}

func TestRegistry_LoadErrors(t *testing.T) {
	registry := themes.NewRegistry()
	files := fstest.MapFS{
		"empty.yaml":   {Data: []byte("  \n")},
		"none.yaml":    {Data: []byte("default: x\n")},
		"invalid.yaml": {Data: []byte("themes: [\n")},
		"unnamed.yaml": {Data: []byte("themes:\n  - version: 1.0.0\n")},
	}
	for _, name := range []string{"empty.yaml", "none.yaml", "invalid.yaml", "unnamed.yaml", "missing.yaml"} {
		if err := registry.LoadFS(files, name); err == nil {
			t.Fatalf("expected error loading %s", name)
		}
	}
	if err := registry.LoadFile(""); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestBuiltin(t *testing.T) {
	registry, err := themes.Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}

	sel, err := registry.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel.Theme != "docusaurus" || sel.Variant != "dark" {
		t.Fatalf("unexpected builtin selection %s/%s", sel.Theme, sel.Variant)
	}

	light, err := registry.Select("docusaurus", "light")
	if err != nil {
		t.Fatalf("select light: %v", err)
	}
	cfg := themes.RendererConfig(light, nil)
	if cfg.CSSVars["--footer-background"] != "#f5f6f7" {
		t.Fatalf("unexpected light background %q", cfg.CSSVars["--footer-background"])
	}
}
