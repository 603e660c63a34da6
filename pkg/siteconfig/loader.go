package siteconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Parse decodes a JSON or YAML document into a Config. JSON is attempted
// first since every JSON document is also YAML but the JSON decoder reports
// clearer errors for it.
func Parse(data []byte, source string) (Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Config{}, fmt.Errorf("siteconfig: %s is empty", source)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err == nil {
		log.Logger.Debug().Str("source", source).Str("format", "json").Msg("site config parsed")
		return cfg, nil
	}

	cfg = Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("siteconfig: parse %s: %w", source, err)
	}
	log.Logger.Debug().Str("source", source).Str("format", "yaml").Msg("site config parsed")
	return cfg, nil
}

// LoadFile reads and parses the config stored at path.
func LoadFile(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Config{}, errors.New("siteconfig: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("siteconfig: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses name from fsys.
func LoadFS(fsys fs.FS, name string) (Config, error) {
	if fsys == nil {
		return Config{}, errors.New("siteconfig: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("siteconfig: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Marshal encodes cfg as YAML using two-space indentation.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("siteconfig: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("siteconfig: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile stores cfg as YAML at path.
func WriteFile(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("siteconfig: write %s: %w", path, err)
	}
	return nil
}
