package urls_test

import (
	"testing"

	"github.com/goliatone/go-docsfooter/pkg/siteconfig"
	"github.com/goliatone/go-docsfooter/pkg/urls"
)

func TestDocURL(t *testing.T) {
	tests := []struct {
		name     string
		cfg      siteconfig.Config
		doc      string
		language string
		want     string
	}{
		{
			name: "no docs url",
			cfg:  siteconfig.Config{BaseURL: "/x/"},
			doc:  "intro",
			want: "/x/intro",
		},
		{
			name: "docs url",
			cfg:  siteconfig.Config{BaseURL: "/x/", DocsURL: "docs"},
			doc:  "intro",
			want: "/x/docs/intro",
		},
		{
			name:     "language without docs url",
			cfg:      siteconfig.Config{BaseURL: "/x/"},
			doc:      "faq",
			language: "fr",
			want:     "/x/fr/faq",
		},
		{
			name:     "language with docs url",
			cfg:      siteconfig.Config{BaseURL: "/x/", DocsURL: "docs"},
			doc:      "faq",
			language: "pt-BR",
			want:     "/x/docs/pt-BR/faq",
		},
		{
			name: "malformed input is concatenated as-is",
			cfg:  siteconfig.Config{BaseURL: "x", DocsURL: "/d/"},
			doc:  "y",
			want: "x/d//y",
		},
		{
			name: "empty config",
			doc:  "intro",
			want: "intro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := urls.DocURL(tt.cfg, tt.doc, tt.language); got != tt.want {
				t.Fatalf("DocURL mismatch: want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDocURL_Properties(t *testing.T) {
	bases := []string{"", "/", "/x/", "https://example.com/site/"}
	docsURLs := []string{"", "docs", "v2/docs"}
	docs := []string{"intro", "api-queries", ""}
	languages := []string{"", "en", "zh-Hans"}

	for _, base := range bases {
		for _, docsURL := range docsURLs {
			for _, doc := range docs {
				for _, lang := range languages {
					cfg := siteconfig.Config{BaseURL: base, DocsURL: docsURL}
					got := urls.DocURL(cfg, doc, lang)

					want := base
					if docsURL != "" {
						want += docsURL + "/"
					}
					if lang != "" {
						want += lang + "/"
					}
					want += doc

					if got != want {
						t.Fatalf("DocURL(%+v, %q, %q): want %q, got %q", cfg, doc, lang, want, got)
					}
					if docsURL == "" && lang == "" && got != base+doc {
						t.Fatalf("docsUrl unset: want %q, got %q", base+doc, got)
					}
				}
			}
		}
	}
}

func TestPageURL(t *testing.T) {
	cfg := siteconfig.Config{BaseURL: "/x/", DocsURL: "docs"}

	if got := urls.PageURL(cfg, "blog", ""); got != "/x/blog" {
		t.Fatalf("PageURL without language: got %q", got)
	}
	if got := urls.PageURL(cfg, "blog", "de"); got != "/x/de/blog" {
		t.Fatalf("PageURL with language: got %q", got)
	}
}

func TestAssetURL(t *testing.T) {
	cfg := siteconfig.Config{BaseURL: "/x/"}
	if got := urls.AssetURL(cfg, "img/logo.svg"); got != "/x/img/logo.svg" {
		t.Fatalf("AssetURL: got %q", got)
	}
}

func TestStargazersPath(t *testing.T) {
	tests := map[string]string{
		"https://github.com/kentcdodds/react-testing-library":     "/kentcdodds/react-testing-library/stargazers",
		"https://github.com/kentcdodds/react-testing-library/":    "/kentcdodds/react-testing-library/stargazers",
		"https://github.com/kentcdodds/react-testing-library.git": "/kentcdodds/react-testing-library/stargazers",
		"https://github.com": "",
		"":                   "",
		"://bad":             "",
	}
	for in, want := range tests {
		if got := urls.StargazersPath(in); got != want {
			t.Errorf("StargazersPath(%q): want %q, got %q", in, want, got)
		}
	}
}
