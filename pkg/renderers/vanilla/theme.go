package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// cssVarsStyle flattens theme CSS variables into an inline style value with a
// stable (sorted) order.
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+cfg.CSSVars[key])
	}
	return strings.Join(parts, "; ")
}

func themeStylesheet(cfg *theme.RendererConfig) string {
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	return strings.TrimSpace(cfg.AssetURL(ThemeStylesheetKey))
}

func themeIdentity(cfg *theme.RendererConfig) (string, string) {
	if cfg == nil {
		return "", ""
	}
	return cfg.Theme, cfg.Variant
}
