package render

import "strings"

// TemplateI18nFuncs returns template helpers for custom footer templates:
//
//	translate(locale, key, ...args) string
//	current_locale(locale) string
//
// Missing translations resolve through onMissing (default: the key itself).
func TemplateI18nFuncs(t Translator, onMissing MissingTranslationHandler) map[string]any {
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	return map[string]any{
		"translate": func(locale string, key string, params ...any) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			if t == nil {
				return onMissing(locale, key, params, ErrMissingTranslator)
			}
			msg, err := t.Translate(locale, key, params...)
			if err != nil || strings.TrimSpace(msg) == "" {
				return onMissing(locale, key, params, err)
			}
			return msg
		},
		"current_locale": func(locale string) string {
			return strings.TrimSpace(locale)
		},
	}
}
