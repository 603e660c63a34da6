// Package urls builds the links the footer points at. The builders only
// concatenate fragments: malformed input produces a malformed URL rather than
// an error.
package urls

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-docsfooter/pkg/siteconfig"
)

// DocURL returns the link to a documentation page:
// baseUrl + [docsUrl + "/"] + [language + "/"] + doc.
func DocURL(cfg siteconfig.Config, doc, language string) string {
	var b strings.Builder
	b.WriteString(cfg.BaseURL)
	if cfg.DocsURL != "" {
		b.WriteString(cfg.DocsURL)
		b.WriteByte('/')
	}
	if language != "" {
		b.WriteString(language)
		b.WriteByte('/')
	}
	b.WriteString(doc)
	return b.String()
}

// PageURL returns the link to a top level site page: baseUrl + [language + "/"] + doc.
func PageURL(cfg siteconfig.Config, doc, language string) string {
	if language == "" {
		return cfg.BaseURL + doc
	}
	return cfg.BaseURL + language + "/" + doc
}

// AssetURL prefixes a site-relative asset path with the base URL.
func AssetURL(cfg siteconfig.Config, path string) string {
	return cfg.BaseURL + path
}

// StargazersPath derives "/<owner>/<repo>/stargazers" from a repository URL,
// as expected by the GitHub star button's data-count-href. It returns "" when
// the URL cannot be parsed or carries no path.
func StargazersPath(repoURL string) string {
	u, err := url.Parse(strings.TrimSpace(repoURL))
	if err != nil {
		return ""
	}
	path := strings.Trim(u.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	if path == "" {
		return ""
	}
	return "/" + path + "/stargazers"
}
