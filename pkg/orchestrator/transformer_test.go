package orchestrator_test

import (
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-docsfooter/pkg/orchestrator"
	"github.com/goliatone/go-docsfooter/pkg/sitemap"
	"github.com/goliatone/go-docsfooter/pkg/testsupport"
)

func TestPresetTransformer_PatchesLinks(t *testing.T) {
	files := fstest.MapFS{
		"preset.json": {Data: []byte(`{
  "links": {
    "footer.community.discord": {"label": "Discord", "href": "https://discord.gg/testing-library"},
    "footer.docs.help": {"href": "/help"}
  },
  "sections": {"footer.community": {"hide": false}}
}`)},
	}
	preset, err := orchestrator.NewPresetTransformerFromFS(files, "preset.json")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}

	footer := sitemap.Build(testsupport.SiteConfig(), sitemap.Options{})
	if err := preset.Transform(testsupport.Context(), &footer); err != nil {
		t.Fatalf("transform: %v", err)
	}

	discord := footer.Sections[1].Links[2]
	if discord.Label != "Discord" || discord.Href != "https://discord.gg/testing-library" || !discord.External {
		t.Fatalf("unexpected discord link %+v", discord)
	}
	help := footer.Sections[0].Links[3]
	if help.Href != "/help" || help.External {
		t.Fatalf("unexpected help link %+v", help)
	}
}

func TestPresetTransformer_HidesSection(t *testing.T) {
	preset, err := orchestrator.NewPresetTransformer([]byte(`
sections:
  footer.community: {hide: true}
links:
  footer.community.blog: {label: News}
`))
	if err != nil {
		t.Fatalf("preset: %v", err)
	}

	footer := sitemap.Build(testsupport.SiteConfig(), sitemap.Options{})
	if err := preset.Transform(testsupport.Context(), &footer); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if len(footer.Sections) != 2 || footer.Sections[1].TitleKey != "footer.more" {
		t.Fatalf("expected community section removed, got %+v", footer.Sections)
	}
}

func TestPresetTransformer_Errors(t *testing.T) {
	if _, err := orchestrator.NewPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := orchestrator.NewPresetTransformer([]byte("links: [")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := orchestrator.NewPresetTransformerFromFS(nil, "x.yaml"); err == nil {
		t.Fatalf("expected error for nil fs")
	}

	preset, err := orchestrator.NewPresetTransformer([]byte("links:\n  footer.unknown: {hide: true}\n"))
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	footer := sitemap.Build(testsupport.SiteConfig(), sitemap.Options{})
	if err := preset.Transform(testsupport.Context(), &footer); err == nil {
		t.Fatalf("expected error for unknown link key")
	}
	if err := preset.Transform(testsupport.Context(), nil); err == nil {
		t.Fatalf("expected error for nil footer")
	}
}
