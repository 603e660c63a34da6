// Package prompt walks a user through creating a site config on the
// terminal. The flow runs against the Driver interface; NewSurveyDriver
// provides the interactive implementation.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/goliatone/go-docsfooter/pkg/siteconfig"
)

// CommonLanguages seeds the language picker. Languages already present in
// the defaults are listed first.
var CommonLanguages = []string{"en", "de", "es", "fr", "it", "ja", "ko", "pt-BR", "ru", "zh-CN"}

// Prompt messages, exported so scripted drivers can answer by message.
const (
	MsgTitle        = "Site title"
	MsgBaseURL      = "Base URL"
	MsgDocsURL      = "Docs path segment"
	MsgFooterIcon   = "Footer icon path"
	MsgRepoURL      = "Repository URL"
	MsgDocsRepoURL  = "Docs repository URL"
	MsgCopyright    = "Copyright notice"
	MsgLanguages    = "Languages"
	MsgConfigTheme  = "Configure a theme?"
	MsgThemeName    = "Theme name"
	MsgThemeVariant = "Theme variant"
)

// ScaffoldConfig asks for every site config field, starting from defaults,
// and returns the answers as a validated config.
func ScaffoldConfig(ctx context.Context, driver Driver, defaults siteconfig.Config) (siteconfig.Config, error) {
	if ctx == nil {
		return siteconfig.Config{}, errors.New("prompt: context is nil")
	}
	if driver == nil {
		return siteconfig.Config{}, errors.New("prompt: driver is nil")
	}

	if err := driver.Info(ctx, "Creating a docs footer config. Press Ctrl+C to abort."); err != nil {
		return siteconfig.Config{}, fmt.Errorf("prompt: %w", err)
	}

	cfg := defaults
	askField := func(target *string, input InputConfig) error {
		if input.Default == "" {
			input.Default = *target
		}
		answer, err := driver.Input(ctx, input)
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", strings.ToLower(input.Message), err)
		}
		*target = strings.TrimSpace(answer)
		return nil
	}

	steps := []struct {
		target *string
		input  InputConfig
	}{
		{&cfg.Title, InputConfig{Message: MsgTitle, Help: "Used as the footer logo alt text.", Validator: required}},
		{&cfg.BaseURL, InputConfig{Message: MsgBaseURL, Help: "Root path of the site, ending with /.", Validator: baseURL}},
		{&cfg.DocsURL, InputConfig{Message: MsgDocsURL, Help: "Leave empty when docs live at the base URL.", Validator: docsSegment}},
		{&cfg.FooterIcon, InputConfig{Message: MsgFooterIcon, Help: "Relative to the base URL. Leave empty for no logo."}},
		{&cfg.RepoURL, InputConfig{Message: MsgRepoURL, Validator: required}},
	}
	for _, step := range steps {
		if err := askField(step.target, step.input); err != nil {
			return siteconfig.Config{}, err
		}
	}

	if err := askField(&cfg.DocsRepoURL, InputConfig{Message: MsgDocsRepoURL, Default: firstNonEmpty(cfg.DocsRepoURL, cfg.RepoURL)}); err != nil {
		return siteconfig.Config{}, err
	}
	if err := askField(&cfg.Copyright, InputConfig{Message: MsgCopyright, Default: firstNonEmpty(cfg.Copyright, "Copyright © "+cfg.Title)}); err != nil {
		return siteconfig.Config{}, err
	}

	languages, err := askLanguages(ctx, driver, cfg.Languages)
	if err != nil {
		return siteconfig.Config{}, err
	}
	cfg.Languages = languages

	themed, err := driver.Confirm(ctx, ConfirmConfig{Message: MsgConfigTheme, Default: cfg.Theme.Name != ""})
	if err != nil {
		return siteconfig.Config{}, fmt.Errorf("prompt: theme: %w", err)
	}
	if themed {
		if err := askField(&cfg.Theme.Name, InputConfig{Message: MsgThemeName, Validator: required}); err != nil {
			return siteconfig.Config{}, err
		}
		if err := askField(&cfg.Theme.Variant, InputConfig{Message: MsgThemeVariant}); err != nil {
			return siteconfig.Config{}, err
		}
	} else {
		cfg.Theme = siteconfig.ThemeConfig{}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("prompt: scaffolded config is invalid: %w", err)
	}
	log.Debug().Str("title", cfg.Title).Strs("languages", cfg.Languages).Msg("config scaffolded")
	return cfg, nil
}

func askLanguages(ctx context.Context, driver Driver, current []string) ([]string, error) {
	options := make([]string, 0, len(current)+len(CommonLanguages))
	seen := make(map[string]struct{})
	for _, tag := range append(append([]string{}, current...), CommonLanguages...) {
		if _, dup := seen[tag]; dup || languageTag(tag) != nil {
			continue
		}
		seen[tag] = struct{}{}
		options = append(options, tag)
	}

	var defaults []int
	for i, option := range options {
		for _, tag := range current {
			if tag == option {
				defaults = append(defaults, i)
				break
			}
		}
	}

	picked, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  MsgLanguages,
		Options:  options,
		Defaults: defaults,
		Help:     "Leave empty to render a single footer without language segments.",
		PageSize: 10,
	})
	if err != nil {
		return nil, fmt.Errorf("prompt: languages: %w", err)
	}
	if len(picked) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(options) {
			out = append(out, options[idx])
		}
	}
	return out, nil
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value is required")
	}
	return nil
}

func baseURL(value string) error {
	if err := required(value); err != nil {
		return err
	}
	if !strings.HasSuffix(strings.TrimSpace(value), "/") {
		return errors.New("base URL must end with /")
	}
	return nil
}

func docsSegment(value string) error {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "/") || strings.HasSuffix(value, "/") {
		return errors.New("docs path must not start or end with /")
	}
	return nil
}

func languageTag(value string) error {
	if _, err := language.Parse(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("invalid language tag %q: %w", value, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
