package sitemap_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docsfooter/pkg/siteconfig"
	"github.com/goliatone/go-docsfooter/pkg/sitemap"
)

func testConfig() siteconfig.Config {
	return siteconfig.Config{
		BaseURL:     "/x/",
		DocsURL:     "docs",
		FooterIcon:  "img/owl.png",
		Title:       "Testing Library",
		RepoURL:     "https://github.com/kentcdodds/react-testing-library",
		DocsRepoURL: "https://github.com/alexkrolick/testing-library-docs",
		Copyright:   "Copyright 2018 Kent C. Dodds",
	}
}

func TestBuild_DefaultTree(t *testing.T) {
	got := sitemap.Build(testConfig(), sitemap.Options{})

	ext := func(label, key, href string) sitemap.Link {
		return sitemap.Link{Label: label, LabelKey: key, Href: href, External: true}
	}
	want := sitemap.Footer{
		Home: sitemap.Home{
			Href:  "/x/",
			Class: "nav-home",
			Icon: &sitemap.Image{
				Src:    "/x/img/owl.png",
				Alt:    "Testing Library",
				Width:  66,
				Height: 58,
			},
		},
		Sections: []sitemap.Section{
			{Title: "Docs", TitleKey: "footer.docs", Links: []sitemap.Link{
				{Label: "Getting Started", LabelKey: "footer.docs.gettingStarted", Href: "/x/docs/intro"},
				{Label: "Examples", LabelKey: "footer.docs.examples", Href: "/x/docs/example-codesandbox"},
				{Label: "API", LabelKey: "footer.docs.api", Href: "/x/docs/api-queries"},
				{Label: "Help", LabelKey: "footer.docs.help", Href: "/x/docs/faq"},
			}},
			{Title: "Community", TitleKey: "footer.community", Links: []sitemap.Link{
				{Label: "Blog", LabelKey: "footer.community.blog", Href: "/x/blog"},
				ext("Stack Overflow", "footer.community.stackOverflow", "https://stackoverflow.com/questions/tagged/react-testing-library"),
				ext("Reactiflux on Discord", "footer.community.discord", "https://www.reactiflux.com/"),
				ext("Spectrum", "footer.community.spectrum", "https://spectrum.chat/react-testing-library"),
			}},
			{Title: "More", TitleKey: "footer.more", Links: []sitemap.Link{
				{
					Label:    "Star",
					LabelKey: "footer.more.star",
					Href:     "https://github.com/kentcdodds/react-testing-library",
					External: true,
					Class:    "github-button",
					Attrs: []sitemap.Attr{
						{Name: "data-icon", Value: "octicon-star"},
						{Name: "data-count-href", Value: "/kentcdodds/react-testing-library/stargazers"},
						{Name: "data-show-count", Value: "true"},
						{Name: "data-count-aria-label", Value: "# stargazers on GitHub"},
						{Name: "aria-label", Value: "Star this project on GitHub"},
					},
				},
				ext("GitHub", "footer.more.github", "https://github.com/kentcdodds/react-testing-library"),
				ext("Edit Docs on GitHub", "footer.more.editDocs", "https://github.com/alexkrolick/testing-library-docs"),
			}},
		},
		Copyright: "Copyright 2018 Kent C. Dodds",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("footer mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_IconOnlyWhenConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.FooterIcon = ""

	got := sitemap.Build(cfg, sitemap.Options{})
	if got.Home.Icon != nil {
		t.Fatalf("expected no icon, got %+v", got.Home.Icon)
	}
	if got.Home.Href != "/x/" {
		t.Fatalf("home link should still point at base url, got %q", got.Home.Href)
	}
}

func TestBuild_LanguageAppliesToDocLinksOnly(t *testing.T) {
	got := sitemap.Build(testConfig(), sitemap.Options{Language: "fr"})

	if got.Language != "fr" {
		t.Fatalf("language not recorded: %q", got.Language)
	}
	if href := got.Sections[0].Links[0].Href; href != "/x/docs/fr/intro" {
		t.Fatalf("doc link should carry language, got %q", href)
	}
	if href := got.Sections[1].Links[0].Href; href != "/x/blog" {
		t.Fatalf("blog link should not carry language, got %q", href)
	}
}

func TestBuild_LinkOverrides(t *testing.T) {
	cfg := testConfig()
	cfg.DocsURL = ""
	cfg.Footer = siteconfig.FooterConfig{
		Docs: []siteconfig.LinkConfig{
			{Label: "Start", Doc: "start"},
			{Label: "Changelog", Href: "https://example.com/changelog"},
		},
		Community: []siteconfig.LinkConfig{
			{Label: "Forum", Href: "https://forum.example.com"},
		},
	}

	got := sitemap.Build(cfg, sitemap.Options{Language: "en"})

	wantDocs := []sitemap.Link{
		{Label: "Start", Href: "/x/en/start"},
		{Label: "Changelog", Href: "https://example.com/changelog", External: true},
	}
	if diff := cmp.Diff(wantDocs, got.Sections[0].Links); diff != "" {
		t.Fatalf("docs mismatch (-want +got):\n%s", diff)
	}

	wantCommunity := []sitemap.Link{
		{Label: "Forum", Href: "https://forum.example.com", External: true},
	}
	if diff := cmp.Diff(wantCommunity, got.Sections[1].Links); diff != "" {
		t.Fatalf("community mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_DoesNotMutateDefaults(t *testing.T) {
	before := append([]siteconfig.LinkConfig(nil), sitemap.DefaultDocLinks...)
	_ = sitemap.Build(testConfig(), sitemap.Options{Language: "de"})
	if diff := cmp.Diff(before, sitemap.DefaultDocLinks); diff != "" {
		t.Fatalf("defaults mutated (-want +got):\n%s", diff)
	}
}
