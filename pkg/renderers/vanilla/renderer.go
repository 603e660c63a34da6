package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-docsfooter/pkg/render"
	rendertemplate "github.com/goliatone/go-docsfooter/pkg/render/template"
	gotemplate "github.com/goliatone/go-docsfooter/pkg/render/template/gotemplate"
	"github.com/goliatone/go-docsfooter/pkg/sitemap"
)

// Name identifies the renderer in a render.Registry.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	templateFuncs    map[string]any
	stylesheet       string
	defaultStyles    bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain templates/footer.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateFuncs exposes extra helpers to custom templates, for example
// render.TemplateI18nFuncs. Ignored when WithTemplateRenderer is used.
func WithTemplateFuncs(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.templateFuncs == nil {
			cfg.templateFuncs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFuncs[name] = fn
		}
	}
}

// WithStylesheet links an external stylesheet ahead of the footer markup. It
// takes precedence over a stylesheet resolved from the theme.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(href)
	}
}

// WithDefaultStyles inlines the bundled stylesheet in a <style> block.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.defaultStyles = true
	}
}

// Renderer renders a footer tree to HTML.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	stylesheet    string
	defaultStyles string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithTemplateFuncs(cfg.templateFuncs),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	out := &Renderer{
		templates:  renderer,
		stylesheet: cfg.stylesheet,
	}
	if cfg.defaultStyles {
		out.defaultStyles = defaultStylesheet()
	}
	return out, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, footer sitemap.Footer, opts render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, errors.New("vanilla renderer: template renderer is nil")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("vanilla renderer: %w", err)
		}
	}

	language := strings.TrimSpace(opts.Language)
	if language == "" {
		language = footer.Language
	}

	stylesheet := r.stylesheet
	if stylesheet == "" {
		stylesheet = themeStylesheet(opts.Theme)
	}
	themeName, themeVariant := themeIdentity(opts.Theme)

	result, err := r.templates.RenderTemplate(FooterTemplate, map[string]any{
		"footer":          footer,
		"language":        language,
		"copyright":       sanitizeCopyright(footer.Copyright),
		"theme_style":     cssVarsStyle(opts.Theme),
		"theme_name":      themeName,
		"theme_variant":   themeVariant,
		"stylesheet":      stylesheet,
		"default_styles":  r.defaultStyles,
		"external_target": sitemap.ExternalTarget,
		"external_rel":    sitemap.ExternalRel,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
