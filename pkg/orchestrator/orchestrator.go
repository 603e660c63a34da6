package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-docsfooter/pkg/render"
	"github.com/goliatone/go-docsfooter/pkg/renderers/jsontree"
	"github.com/goliatone/go-docsfooter/pkg/renderers/vanilla"
	"github.com/goliatone/go-docsfooter/pkg/siteconfig"
	"github.com/goliatone/go-docsfooter/pkg/sitemap"
	"github.com/goliatone/go-docsfooter/pkg/themes"
)

const defaultRendererName = vanilla.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector passes a go-theme selector used to resolve theme/variant
// choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks seeds the partial map of every derived
// theme.RendererConfig.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		if len(fallbacks) == 0 {
			return
		}
		if o.themeFallbacks == nil {
			o.themeFallbacks = make(map[string]string, len(fallbacks))
		}
		for key, value := range fallbacks {
			o.themeFallbacks[key] = value
		}
	}
}

// WithTranslator overrides the translator built from the config's
// translations table.
func WithTranslator(t render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = t
	}
}

// WithMissingTranslationHandler decides the label used when a key has no
// translation. The default keeps the English label.
func WithMissingTranslationHandler(handler render.MissingTranslationHandler) Option {
	return func(o *Orchestrator) {
		o.onMissing = handler
	}
}

// WithTransformer registers a Transformer that can mutate the footer tree
// after localisation and before rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.transformers = append(o.transformers, t)
		}
	}
}

// Orchestrator coordinates the pipeline from site config to rendered footer.
// It defaults to the vanilla and json renderers while remaining open to
// dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	translator      render.Translator
	onMissing       render.MissingTranslationHandler
	transformers    []Transformer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one footer rendering.
type Request struct {
	Config siteconfig.Config

	// Renderer names the renderer to use, or a media type such as
	// "application/json" matched against renderer content types. If empty,
	// the orchestrator falls back to the configured default renderer.
	Renderer string

	// Language is inserted into doc links and selects translations.
	Language string

	// ThemeName and ThemeVariant override the config's theme section. Both
	// are ignored when no theme selector is configured.
	ThemeName    string
	ThemeVariant string
}

// Result is one rendered footer.
type Result struct {
	Language    string
	ContentType string
	Body        []byte
}

// Generate builds and renders the footer for req.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

// GenerateAll renders the footer once per configured language, or once with
// no language when none are configured. Results are keyed by language.
func (o *Orchestrator) GenerateAll(ctx context.Context, req Request) (map[string]Result, error) {
	languages := req.Config.Languages
	if len(languages) == 0 {
		languages = []string{""}
	}

	out := make(map[string]Result, len(languages))
	for _, lang := range languages {
		next := req
		next.Language = lang
		result, err := o.generate(ctx, next)
		if err != nil {
			if lang == "" {
				return nil, err
			}
			return nil, fmt.Errorf("orchestrator: language %q: %w", lang, err)
		}
		out[lang] = result
	}
	return out, nil
}

func (o *Orchestrator) generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	themeConfig, err := o.resolveTheme(req)
	if err != nil {
		return Result{}, err
	}

	language := strings.TrimSpace(req.Language)
	footer := sitemap.Build(req.Config, sitemap.Options{Language: language})
	render.LocalizeFooter(&footer, language, o.translatorFor(req.Config), o.onMissing)

	for _, transformer := range o.transformers {
		if err := transformer.Transform(ctx, &footer); err != nil {
			return Result{}, fmt.Errorf("orchestrator: transform footer: %w", err)
		}
	}

	output, err := renderer.Render(ctx, footer, render.RenderOptions{
		Language: language,
		Theme:    themeConfig,
	})
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}

	log.Debug().
		Str("renderer", renderer.Name()).
		Str("language", language).
		Int("bytes", len(output)).
		Msg("footer rendered")

	return Result{Language: language, ContentType: renderer.ContentType(), Body: output}, nil
}

func (o *Orchestrator) translatorFor(cfg siteconfig.Config) render.Translator {
	if o.translator != nil {
		return o.translator
	}
	if len(cfg.Translations) == 0 {
		return nil
	}
	return render.MapTranslator(cfg.Translations)
}

func (o *Orchestrator) resolveTheme(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}

	name := firstNonEmpty(req.ThemeName, req.Config.Theme.Name)
	variant := firstNonEmpty(req.ThemeVariant, req.Config.Theme.Variant)

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	return themes.RendererConfig(selection, o.themeFallbacks), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	if strings.Contains(name, "/") {
		renderer, err := o.registry.ForContentType(name)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
		return renderer, nil
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(jsontree.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
