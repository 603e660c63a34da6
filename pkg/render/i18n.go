package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-docsfooter/pkg/sitemap"
)

// ErrMissingTranslator is reported to MissingTranslationHandler when a key
// must be translated but no Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// ErrMissingTranslation is returned by MapTranslator for unknown keys.
var ErrMissingTranslation = errors.New("render: translation missing")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the text used when a translation cannot
// be resolved. args[0] carries {"default": fallback} when a fallback exists.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// MapTranslator serves translations from a locale -> key -> text table, the
// shape stored under "translations" in the site config.
type MapTranslator map[string]map[string]string

// Translate looks key up for locale, falling back to the base language of a
// regional locale ("pt-BR" -> "pt").
func (m MapTranslator) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeCandidates(locale) {
		if msg, ok := m[candidate][key]; ok && strings.TrimSpace(msg) != "" {
			if len(args) > 0 && strings.Contains(msg, "%") {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, locale, key)
}

func localeCandidates(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	out := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		out = append(out, locale[:idx])
	}
	return out
}

// LocalizeFooter mutates footer in place, replacing section titles and link
// labels that carry a translation key. It is best-effort: untranslated keys
// are routed through onMissing, which defaults to keeping the English label.
func LocalizeFooter(footer *sitemap.Footer, locale string, t Translator, onMissing MissingTranslationHandler) {
	if footer == nil || strings.TrimSpace(locale) == "" {
		return
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	for i := range footer.Sections {
		section := &footer.Sections[i]
		if key := strings.TrimSpace(section.TitleKey); key != "" {
			section.Title = translate(locale, key, section.Title, t, onMissing)
		}
		for j := range section.Links {
			link := &section.Links[j]
			if key := strings.TrimSpace(link.LabelKey); key != "" {
				link.Label = translate(locale, key, link.Label, t, onMissing)
			}
		}
	}
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	if t == nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if len(args) > 0 {
		if m, ok := args[0].(map[string]any); ok {
			if fallback, ok := m["default"].(string); ok && strings.TrimSpace(fallback) != "" {
				return fallback
			}
		}
	}
	return key
}
