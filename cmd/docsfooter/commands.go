package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-docsfooter/pkg/orchestrator"
	"github.com/goliatone/go-docsfooter/pkg/prompt"
	"github.com/goliatone/go-docsfooter/pkg/render"
	"github.com/goliatone/go-docsfooter/pkg/renderers/jsontree"
	"github.com/goliatone/go-docsfooter/pkg/renderers/vanilla"
	"github.com/goliatone/go-docsfooter/pkg/siteconfig"
	"github.com/goliatone/go-docsfooter/pkg/themes"
)

// newDriver is swapped in tests to script the init prompts.
var newDriver = prompt.NewSurveyDriver

func newFlagSet(name, usage string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: docsfooter %s [options]\n\n%s\n\nOptions:\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

type renderFlags struct {
	config     string
	renderer   string
	language   string
	theme      string
	variant    string
	themes     string
	noTheme    bool
	output     string
	all        bool
	preset     string
	templates  string
	stylesheet string
	inlineCSS  bool
}

func runRender(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("render", "Render the footer for a site config.", stderr)
	var f renderFlags
	fs.StringVar(&f.config, "config", "", "site config file (YAML or JSON)")
	fs.StringVar(&f.renderer, "renderer", vanilla.Name, "renderer to use")
	fs.StringVar(&f.language, "lang", "", "language segment inserted into doc links")
	fs.StringVar(&f.theme, "theme", "", "theme name (overrides the config)")
	fs.StringVar(&f.variant, "variant", "", "theme variant (overrides the config)")
	fs.StringVar(&f.themes, "themes", "", "themes YAML file (built-in themes when empty)")
	fs.BoolVar(&f.noTheme, "no-theme", false, "render without theme tokens")
	fs.StringVar(&f.output, "output", "", "output file, or directory with -all (stdout if empty)")
	fs.BoolVar(&f.all, "all", false, "render once per configured language")
	fs.StringVar(&f.preset, "preset", "", "preset file patching footer sections and links")
	fs.StringVar(&f.templates, "templates", "", "directory overriding templates/footer.tmpl")
	fs.StringVar(&f.stylesheet, "stylesheet", "", "stylesheet href linked before the footer")
	fs.BoolVar(&f.inlineCSS, "inline-css", false, "inline the bundled stylesheet")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(f.config) == "" {
		fs.Usage()
		return errors.New("render: -config is required")
	}

	cfg, err := siteconfig.LoadFile(f.config)
	if err != nil {
		return err
	}

	gen, err := newGenerator(f)
	if err != nil {
		return err
	}

	req := orchestrator.Request{
		Config:       cfg,
		Renderer:     f.renderer,
		Language:     f.language,
		ThemeName:    f.theme,
		ThemeVariant: f.variant,
	}

	if !f.all {
		output, err := gen.Generate(ctx, req)
		if err != nil {
			return err
		}
		return writeOutput(f.output, output, stdout)
	}

	if f.output == "" {
		return errors.New("render: -all requires -output to name a directory")
	}
	results, err := gen.GenerateAll(ctx, req)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.output, 0o755); err != nil {
		return fmt.Errorf("render: create %s: %w", f.output, err)
	}

	languages := make([]string, 0, len(results))
	for lang := range results {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	for _, lang := range languages {
		result := results[lang]
		path := filepath.Join(f.output, outputName(lang, result.ContentType))
		if err := os.WriteFile(path, result.Body, 0o644); err != nil {
			return fmt.Errorf("render: write %s: %w", path, err)
		}
		fmt.Fprintf(stdout, "Footer written to %s\n", path)
	}
	return nil
}

func newGenerator(f renderFlags) (*orchestrator.Orchestrator, error) {
	var vanillaOpts []vanilla.Option
	if f.templates != "" {
		vanillaOpts = append(vanillaOpts, vanilla.WithTemplatesDir(f.templates))
	}
	if f.stylesheet != "" {
		vanillaOpts = append(vanillaOpts, vanilla.WithStylesheet(f.stylesheet))
	}
	if f.inlineCSS {
		vanillaOpts = append(vanillaOpts, vanilla.WithDefaultStyles())
	}

	registry, err := newRegistry(vanillaOpts...)
	if err != nil {
		return nil, err
	}
	options := []orchestrator.Option{orchestrator.WithRegistry(registry)}

	if !f.noTheme {
		selector, err := loadThemes(f.themes)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithThemeSelector(selector))
	}

	if f.preset != "" {
		dir, name := filepath.Split(f.preset)
		if dir == "" {
			dir = "."
		}
		preset, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(dir), name)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithTransformer(preset))
	}

	return orchestrator.New(options...), nil
}

func newRegistry(vanillaOpts ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(vanillaOpts...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(jsontree.New())
	return registry, nil
}

func loadThemes(path string) (*themes.Registry, error) {
	if path == "" {
		return themes.Builtin()
	}
	registry := themes.NewRegistry()
	if err := registry.LoadFile(path); err != nil {
		return nil, err
	}
	return registry, nil
}

func outputName(lang, contentType string) string {
	ext := ".html"
	if strings.HasPrefix(contentType, "application/json") {
		ext = ".json"
	}
	if lang == "" {
		return "footer" + ext
	}
	return "footer." + lang + ext
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "Footer written to %s\n", path)
	return nil
}

func runCheck(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("check", "Validate a site config and report every problem.", stderr)
	configPath := fs.String("config", "", "site config file (YAML or JSON)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*configPath) == "" {
		fs.Usage()
		return errors.New("check: -config is required")
	}

	cfg, err := siteconfig.LoadFile(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		var verr *siteconfig.ValidationErrors
		if errors.As(err, &verr) {
			for _, problem := range verr.Errors() {
				fmt.Fprintf(stderr, "%s: %v\n", *configPath, problem)
			}
			return fmt.Errorf("check: %d problem(s) in %s", len(verr.Errors()), *configPath)
		}
		return err
	}

	fmt.Fprintf(stdout, "%s: ok\n", *configPath)
	return nil
}

func runInit(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("init", "Create a site config by answering prompts.", stderr)
	output := fs.String("output", "docsfooter.yaml", "file to write")
	from := fs.String("from", "", "existing config used as defaults")
	force := fs.Bool("force", false, "overwrite an existing output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*output); err == nil && !*force {
		return fmt.Errorf("init: %s exists, use -force to overwrite", *output)
	}

	var defaults siteconfig.Config
	if *from != "" {
		loaded, err := siteconfig.LoadFile(*from)
		if err != nil {
			return err
		}
		defaults = loaded
	}

	cfg, err := prompt.ScaffoldConfig(ctx, newDriver(), defaults)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			log.Warn().Msg("init aborted")
		}
		return err
	}
	if err := siteconfig.WriteFile(*output, cfg); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Config written to %s\n", *output)
	return nil
}

func runRenderers(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("renderers", "List available renderers.", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	registry, err := newRegistry()
	if err != nil {
		return err
	}
	for _, name := range registry.List() {
		renderer := registry.MustGet(name)
		fmt.Fprintf(stdout, "%s\t%s\n", name, renderer.ContentType())
	}
	return nil
}
