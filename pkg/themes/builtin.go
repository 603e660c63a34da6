package themes

import (
	"embed"
	"fmt"
)

//go:embed builtin/themes.yaml
var builtinThemes embed.FS

// BuiltinFile is the embedded themes document loaded by Builtin.
const BuiltinFile = "builtin/themes.yaml"

// Builtin returns a registry preloaded with the bundled footer themes.
func Builtin() (*Registry, error) {
	registry := NewRegistry()
	if err := registry.LoadFS(builtinThemes, BuiltinFile); err != nil {
		return nil, fmt.Errorf("themes: load builtin: %w", err)
	}
	return registry, nil
}
