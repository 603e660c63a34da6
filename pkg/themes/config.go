package themes

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// RendererConfig flattens sel into the structure renderers consume. Base
// manifest values are overlaid by the selected variant; fallbacks seed the
// partial map before either. A nil selection yields nil.
func RendererConfig(sel *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if sel == nil {
		return nil
	}

	partials := make(map[string]string, len(fallbacks))
	for key, value := range fallbacks {
		partials[key] = value
	}
	tokens := make(map[string]string)
	files := make(map[string]string)
	prefix := ""

	if manifest := sel.Manifest; manifest != nil {
		mergeInto(partials, manifest.Templates)
		mergeInto(tokens, manifest.Tokens)
		mergeInto(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix

		if variant, ok := manifest.Variants[sel.Variant]; ok && sel.Variant != "" {
			mergeInto(partials, variant.Templates)
			mergeInto(tokens, variant.Tokens)
			mergeInto(files, variant.Assets.Files)
			if strings.TrimSpace(variant.Assets.Prefix) != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	return &theme.RendererConfig{
		Theme:    sel.Theme,
		Variant:  sel.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars(tokens),
		AssetURL: assetResolver(prefix, files),
	}
}

func mergeInto(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

// cssVars maps each token to a custom property: "brand" -> "--brand".
func cssVars(tokens map[string]string) map[string]string {
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !strings.HasPrefix(key, "--") {
			key = "--" + key
		}
		vars[key] = value
	}
	return vars
}

// assetResolver joins prefix and the file registered for a key. Absolute
// URLs and root-relative paths are returned untouched; unknown keys resolve
// to "".
func assetResolver(prefix string, files map[string]string) func(string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	return func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}
