// Package sitemap turns a site configuration into the footer tree rendered by
// the renderers. Building is pure: the same config and options always yield
// the same tree.
package sitemap

import (
	"strings"

	"github.com/goliatone/go-docsfooter/pkg/siteconfig"
	"github.com/goliatone/go-docsfooter/pkg/urls"
)

const (
	IconWidth  = 66
	IconHeight = 58
)

// Options carries per-build inputs that are not part of the site config.
type Options struct {
	// Language is inserted before document identifiers in doc links.
	Language string
}

// DefaultDocLinks are the Docs column entries used when the config does not
// override them.
var DefaultDocLinks = []siteconfig.LinkConfig{
	{Label: "Getting Started", LabelKey: "footer.docs.gettingStarted", Doc: "intro"},
	{Label: "Examples", LabelKey: "footer.docs.examples", Doc: "example-codesandbox"},
	{Label: "API", LabelKey: "footer.docs.api", Doc: "api-queries"},
	{Label: "Help", LabelKey: "footer.docs.help", Doc: "faq"},
}

// DefaultCommunityLinks are the Community column entries following the Blog
// link when the config does not override them.
var DefaultCommunityLinks = []siteconfig.LinkConfig{
	{Label: "Stack Overflow", LabelKey: "footer.community.stackOverflow", Href: "https://stackoverflow.com/questions/tagged/react-testing-library"},
	{Label: "Reactiflux on Discord", LabelKey: "footer.community.discord", Href: "https://www.reactiflux.com/"},
	{Label: "Spectrum", LabelKey: "footer.community.spectrum", Href: "https://spectrum.chat/react-testing-library"},
}

// Build assembles the footer tree for cfg.
func Build(cfg siteconfig.Config, opts Options) Footer {
	return Footer{
		Home:     buildHome(cfg),
		Language: opts.Language,
		Sections: []Section{
			{Title: "Docs", TitleKey: "footer.docs", Links: buildLinks(cfg, opts, docLinks(cfg))},
			{Title: "Community", TitleKey: "footer.community", Links: buildCommunity(cfg, opts)},
			{Title: "More", TitleKey: "footer.more", Links: buildMore(cfg)},
		},
		Copyright: cfg.Copyright,
	}
}

func buildHome(cfg siteconfig.Config) Home {
	home := Home{Href: cfg.BaseURL, Class: "nav-home"}
	if cfg.HasIcon() {
		home.Icon = &Image{
			Src:    urls.AssetURL(cfg, cfg.FooterIcon),
			Alt:    cfg.Title,
			Width:  IconWidth,
			Height: IconHeight,
		}
	}
	return home
}

func docLinks(cfg siteconfig.Config) []siteconfig.LinkConfig {
	if len(cfg.Footer.Docs) > 0 {
		return cfg.Footer.Docs
	}
	return DefaultDocLinks
}

func buildCommunity(cfg siteconfig.Config, opts Options) []Link {
	if len(cfg.Footer.Community) > 0 {
		return buildLinks(cfg, opts, cfg.Footer.Community)
	}
	links := []Link{{Label: "Blog", LabelKey: "footer.community.blog", Href: urls.PageURL(cfg, "blog", "")}}
	return append(links, buildLinks(cfg, opts, DefaultCommunityLinks)...)
}

func buildLinks(cfg siteconfig.Config, opts Options, entries []siteconfig.LinkConfig) []Link {
	links := make([]Link, 0, len(entries))
	for _, entry := range entries {
		if href := strings.TrimSpace(entry.Href); href != "" {
			links = append(links, externalLink(entry.Label, entry.LabelKey, href))
			continue
		}
		links = append(links, Link{
			Label:    entry.Label,
			LabelKey: entry.LabelKey,
			Href:     urls.DocURL(cfg, entry.Doc, opts.Language),
		})
	}
	return links
}

func buildMore(cfg siteconfig.Config) []Link {
	star := externalLink("Star", "footer.more.star", cfg.RepoURL)
	star.Class = "github-button"
	star.Attrs = []Attr{
		{Name: "data-icon", Value: "octicon-star"},
		{Name: "data-count-href", Value: urls.StargazersPath(cfg.RepoURL)},
		{Name: "data-show-count", Value: "true"},
		{Name: "data-count-aria-label", Value: "# stargazers on GitHub"},
		{Name: "aria-label", Value: "Star this project on GitHub"},
	}

	return []Link{
		star,
		externalLink("GitHub", "footer.more.github", cfg.RepoURL),
		externalLink("Edit Docs on GitHub", "footer.more.editDocs", cfg.DocsRepoURL),
	}
}

func externalLink(label, key, href string) Link {
	return Link{Label: label, LabelKey: key, Href: href, External: true}
}
