package siteconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

func requireString(v *ValidationErrors, path string, value string) bool {
	if strings.TrimSpace(value) == "" {
		err := errRequired(path)
		logConfigError(path, value, err)
		v.Add(err)
		return false
	}
	logConfigOK(path, value)
	return true
}

// Validate checks the record for values that would render broken links. The
// returned error is a *ValidationErrors listing every problem found.
func (c Config) Validate() error {
	var verr ValidationErrors

	if requireString(&verr, "baseUrl", c.BaseURL) && !strings.HasSuffix(c.BaseURL, "/") {
		err := errors.New("baseUrl must end with /")
		logConfigError("baseUrl", c.BaseURL, err)
		verr.Add(err)
	}
	requireString(&verr, "title", c.Title)
	requireString(&verr, "repoUrl", c.RepoURL)

	if c.DocsURL != "" {
		if strings.HasPrefix(c.DocsURL, "/") || strings.HasSuffix(c.DocsURL, "/") {
			err := errors.New("docsUrl must not start or end with /")
			logConfigError("docsUrl", c.DocsURL, err)
			verr.Add(err)
		} else {
			logConfigOK("docsUrl", c.DocsURL)
		}
	}

	c.validateLanguages(&verr, "languages")
	validateLinks(&verr, "footer/docs", c.Footer.Docs)
	validateLinks(&verr, "footer/community", c.Footer.Community)

	if verr.HasErrors() {
		return &verr
	}
	return nil
}

func (c Config) validateLanguages(v *ValidationErrors, path string) {
	seen := make(map[string]struct{}, len(c.Languages))
	for i, lang := range c.Languages {
		key := fmt.Sprintf("%s[%d]", path, i)
		if _, err := language.Parse(lang); err != nil {
			err = fmt.Errorf("%s: invalid language tag %q: %w", key, lang, err)
			logConfigError(key, lang, err)
			v.Add(err)
			continue
		}
		if _, dup := seen[lang]; dup {
			err := fmt.Errorf("%s: duplicate language %q", key, lang)
			logConfigError(key, lang, err)
			v.Add(err)
			continue
		}
		seen[lang] = struct{}{}
		logConfigOK(key, lang)
	}
}

func validateLinks(v *ValidationErrors, path string, links []LinkConfig) {
	for i, link := range links {
		key := fmt.Sprintf("%s[%d]", path, i)
		requireString(v, key+"/label", link.Label)

		hasDoc := strings.TrimSpace(link.Doc) != ""
		hasHref := strings.TrimSpace(link.Href) != ""
		if hasDoc == hasHref {
			err := fmt.Errorf("%s: exactly one of doc or href must be set", key)
			logConfigError(key, link, err)
			v.Add(err)
		}
	}
}

// ValidationErrors aggregates every problem reported by Validate.
type ValidationErrors struct {
	errors []error
}

func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns a copy of the collected errors.
func (v *ValidationErrors) Errors() []error {
	return append([]error(nil), v.errors...)
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

func logConfigOK(path string, value any) {
	log.Logger.Debug().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func logConfigError(path string, value any, err error) {
	log.Logger.Warn().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
}
