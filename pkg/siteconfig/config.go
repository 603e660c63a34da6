package siteconfig

// Config mirrors the site-wide settings consumed by the footer. Keys follow
// the camelCase naming used by documentation site configs.
type Config struct {
	BaseURL     string       `json:"baseUrl" yaml:"baseUrl"`
	DocsURL     string       `json:"docsUrl,omitempty" yaml:"docsUrl,omitempty"`
	FooterIcon  string       `json:"footerIcon,omitempty" yaml:"footerIcon,omitempty"`
	Title       string       `json:"title" yaml:"title"`
	RepoURL     string       `json:"repoUrl" yaml:"repoUrl"`
	DocsRepoURL string       `json:"docsRepoUrl" yaml:"docsRepoUrl"`
	Copyright   string       `json:"copyright" yaml:"copyright"`
	Languages   []string     `json:"languages,omitempty" yaml:"languages,omitempty"`
	Footer      FooterConfig `json:"footer,omitempty" yaml:"footer,omitempty"`
	Theme       ThemeConfig  `json:"theme,omitempty" yaml:"theme,omitempty"`
	// Translations maps language -> message key -> text for footer labels.
	Translations map[string]map[string]string `json:"translations,omitempty" yaml:"translations,omitempty"`
}

// FooterConfig overrides the default link columns. Empty slices keep the
// built-in links.
type FooterConfig struct {
	Docs      []LinkConfig `json:"docs,omitempty" yaml:"docs,omitempty"`
	Community []LinkConfig `json:"community,omitempty" yaml:"community,omitempty"`
}

// LinkConfig describes a single footer link. Doc is a document identifier
// resolved through the doc URL builder; Href is used verbatim and marks the
// link as external. LabelKey names the translation used for Label.
type LinkConfig struct {
	Label    string `json:"label" yaml:"label"`
	LabelKey string `json:"labelKey,omitempty" yaml:"labelKey,omitempty"`
	Doc      string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Href     string `json:"href,omitempty" yaml:"href,omitempty"`
}

// ThemeConfig selects the default go-theme manifest and variant.
type ThemeConfig struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// HasIcon reports whether a footer logo is configured.
func (c Config) HasIcon() bool {
	return c.FooterIcon != ""
}
