package docsfooter

import "github.com/goliatone/go-docsfooter/pkg/siteconfig"

// LoadConfig reads a YAML or JSON site config from disk.
func LoadConfig(path string) (Config, error) {
	return siteconfig.LoadFile(path)
}

// ParseConfig decodes a YAML or JSON site config; source names the input in
// error messages.
func ParseConfig(data []byte, source string) (Config, error) {
	return siteconfig.Parse(data, source)
}
