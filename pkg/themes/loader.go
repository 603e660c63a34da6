package themes

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a themes document:
//
//	default: docs
//	defaultVariant: light
//	themes:
//	  - name: docs
//	    version: 1.0.0
//	    tokens: {footer-background: "#20232a"}
//	    assets: {prefix: /assets/themes/docs, files: {footer.stylesheet: footer.css}}
//	    variants:
//	      light: {tokens: {footer-background: "#f5f5f5"}}
type File struct {
	Default        string         `yaml:"default"`
	DefaultVariant string         `yaml:"defaultVariant"`
	Themes         []ManifestFile `yaml:"themes"`
}

type ManifestFile struct {
	Name      string                 `yaml:"name"`
	Version   string                 `yaml:"version"`
	Tokens    map[string]string      `yaml:"tokens"`
	Templates map[string]string      `yaml:"templates"`
	Assets    AssetsFile             `yaml:"assets"`
	Variants  map[string]VariantFile `yaml:"variants"`
}

type VariantFile struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    AssetsFile        `yaml:"assets"`
}

type AssetsFile struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// Manifest converts the decoded entry into a go-theme manifest.
func (m ManifestFile) Manifest() *theme.Manifest {
	manifest := &theme.Manifest{
		Name:      strings.TrimSpace(m.Name),
		Version:   strings.TrimSpace(m.Version),
		Tokens:    m.Tokens,
		Templates: m.Templates,
		Assets:    theme.Assets{Prefix: m.Assets.Prefix, Files: m.Assets.Files},
	}
	if len(m.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(m.Variants))
		for name, variant := range m.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets:    theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest
}

// Load decodes a themes document and registers every manifest. Defaults in
// the document apply only when the registry has none yet.
func (r *Registry) Load(data []byte, source string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("themes: %s is empty", source)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("themes: decode %s: %w", source, err)
	}
	if len(file.Themes) == 0 {
		return fmt.Errorf("themes: %s declares no themes", source)
	}

	for _, entry := range file.Themes {
		if err := r.Register(entry.Manifest()); err != nil {
			return fmt.Errorf("themes: load %s: %w", source, err)
		}
	}

	current, currentVariant := r.Defaults()
	if current == "" {
		current = file.Default
	}
	if currentVariant == "" {
		currentVariant = file.DefaultVariant
	}
	r.SetDefaults(current, currentVariant)
	return nil
}

// LoadFile reads and registers the themes document at path.
func (r *Registry) LoadFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("themes: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("themes: read %s: %w", path, err)
	}
	return r.Load(data, path)
}

// LoadFS reads and registers the themes document name from fsys.
func (r *Registry) LoadFS(fsys fs.FS, name string) error {
	if fsys == nil {
		return errors.New("themes: fs is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("themes: read %s: %w", name, err)
	}
	return r.Load(data, name)
}
