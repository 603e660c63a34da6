package themes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog/log"
)

var (
	// ErrThemeNotFound is returned when a selection names an unknown theme.
	ErrThemeNotFound = errors.New("themes: theme not registered")
	// ErrVariantNotFound is returned when a selection names a variant the
	// theme does not declare.
	ErrVariantNotFound = errors.New("themes: variant not declared")
)

// Registry stores manifests by name. It is safe for concurrent use.
type Registry struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	provider       theme.ThemeProvider
	validate       func(*theme.Manifest) error
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Registry)(nil)

// NewRegistry returns an empty registry. Manifests are also registered with
// a go-theme registry so its validation rules apply.
func NewRegistry() *Registry {
	provider := theme.NewRegistry()
	return &Registry{
		manifests: make(map[string]*theme.Manifest),
		provider:  provider,
		validate:  provider.Register,
	}
}

// Register adds manifest. Names are unique.
func (r *Registry) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("themes: manifest is nil")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("themes: manifest name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.manifests[name]; exists {
		return fmt.Errorf("themes: theme %q already registered", name)
	}
	if err := r.validate(manifest); err != nil {
		return fmt.Errorf("themes: register %q: %w", name, err)
	}
	r.manifests[name] = manifest

	log.Debug().Str("theme", name).Int("variants", len(manifest.Variants)).Msg("theme registered")
	return nil
}

// MustRegister panics when Register fails.
func (r *Registry) MustRegister(manifest *theme.Manifest) {
	if err := r.Register(manifest); err != nil {
		panic(err)
	}
}

// SetDefaults configures the theme and variant used when a selection leaves
// them blank.
func (r *Registry) SetDefaults(themeName, variant string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultTheme = strings.TrimSpace(themeName)
	r.defaultVariant = strings.TrimSpace(variant)
}

// Defaults reports the configured default theme and variant.
func (r *Registry) Defaults() (string, string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultTheme, r.defaultVariant
}

// Get returns the manifest registered under name.
func (r *Registry) Get(name string) (*theme.Manifest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	manifest, ok := r.manifests[strings.TrimSpace(name)]
	return manifest, ok
}

// List returns the registered theme names in lexical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.manifests))
	for name := range r.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Provider exposes the underlying go-theme registry.
func (r *Registry) Provider() theme.ThemeProvider {
	return r.provider
}

// Select resolves a theme and variant. A blank name falls back to the
// default theme, or to the only registered theme. A blank variant falls back
// to the default variant when the theme declares it, and to the base theme
// otherwise. Query options are accepted for interface compatibility and are
// not interpreted.
func (r *Registry) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = r.defaultTheme
	}
	if name == "" && len(r.manifests) == 1 {
		for only := range r.manifests {
			name = only
		}
	}

	manifest, ok := r.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	variant = strings.TrimSpace(variant)
	if variant == "" {
		if _, declared := manifest.Variants[r.defaultVariant]; declared && r.defaultVariant != "" {
			variant = r.defaultVariant
		}
	} else if _, declared := manifest.Variants[variant]; !declared {
		return nil, fmt.Errorf("%w: %q has no variant %q", ErrVariantNotFound, name, variant)
	}

	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
