package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docsfooter/pkg/sitemap"
)

// Transformer mutates a footer tree before it is rendered.
type Transformer interface {
	Transform(ctx context.Context, footer *sitemap.Footer) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, footer *sitemap.Footer) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, footer *sitemap.Footer) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, footer)
}

// PresetTransformer applies declarative patches loaded from a YAML (or JSON)
// document. Sections and links are addressed by their translation key:
//
//	sections:
//	  footer.more: {title: Elsewhere}
//	links:
//	  footer.community.spectrum: {hide: true}
//	  footer.community.discord: {label: Discord, href: "https://discord.gg/x"}
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Sections map[string]presetPatch `yaml:"sections" json:"sections"`
	Links    map[string]presetPatch `yaml:"links" json:"links"`
}

type presetPatch struct {
	Title string `yaml:"title" json:"title"`
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
	Hide  bool   `yaml:"hide" json:"hide"`
}

// NewPresetTransformer constructs a transformer from raw YAML or JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches onto footer. Unknown keys are an error so
// typos in presets surface instead of silently doing nothing.
func (t *PresetTransformer) Transform(ctx context.Context, footer *sitemap.Footer) error {
	if footer == nil {
		return errors.New("preset transformer: footer is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(t.document.Sections)+len(t.document.Links))
	sections := footer.Sections[:0]
	for _, section := range footer.Sections {
		patch, ok := t.document.Sections[section.TitleKey]
		if ok {
			seen["section:"+section.TitleKey] = true
			if patch.Hide {
				for _, link := range section.Links {
					seen["link:"+link.LabelKey] = true
				}
				continue
			}
			if patch.Title != "" {
				section.Title = patch.Title
			}
		}

		links := section.Links[:0]
		for _, link := range section.Links {
			patch, ok := t.document.Links[link.LabelKey]
			if !ok {
				links = append(links, link)
				continue
			}
			seen["link:"+link.LabelKey] = true
			if patch.Hide {
				continue
			}
			applyLinkPatch(&link, patch)
			links = append(links, link)
		}
		section.Links = links
		sections = append(sections, section)
	}
	footer.Sections = sections

	for key := range t.document.Sections {
		if !seen["section:"+key] {
			return fmt.Errorf("preset transformer: section %q not found", key)
		}
	}
	for key := range t.document.Links {
		if !seen["link:"+key] {
			return fmt.Errorf("preset transformer: link %q not found", key)
		}
	}
	return nil
}

func applyLinkPatch(link *sitemap.Link, patch presetPatch) {
	if patch.Label != "" {
		link.Label = patch.Label
	}
	if href := strings.TrimSpace(patch.Href); href != "" {
		link.Href = href
		link.External = strings.Contains(href, "://")
	}
}
