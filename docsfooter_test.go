package docsfooter

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-docsfooter/pkg/testsupport"
)

func TestStylesheetFSContainsFooterStyles(t *testing.T) {
	data, err := fs.ReadFile(StylesheetFS(), "docsfooter.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".nav-footer") {
		t.Fatalf("expected stylesheet to style .nav-footer")
	}
}

func TestEmbeddedTemplatesContainsFooter(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/footer.tmpl"); err != nil {
		t.Fatalf("expected footer template: %v", err)
	}
}

func TestGenerateHTML(t *testing.T) {
	output, err := GenerateHTML(testsupport.Context(), testsupport.SiteConfig(), "fr", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(output)
	if !strings.Contains(html, `lang="fr"`) || !strings.Contains(html, "<h5>Documentation</h5>") {
		t.Fatalf("expected localised footer\n%s", html)
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("baseUrl: /x/\ntitle: X\nrepoUrl: https://github.com/a/b\n"), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.BaseURL != "/x/" || cfg.Title != "X" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
