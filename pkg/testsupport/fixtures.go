// Package testsupport holds helpers shared by the package tests: fixture
// configs, golden file handling, and output capture.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-docsfooter/pkg/siteconfig"
)

// SiteConfig returns a fully populated config modelled on a typical
// documentation site.
func SiteConfig() siteconfig.Config {
	return siteconfig.Config{
		BaseURL:     "/react-testing-library/",
		DocsURL:     "docs",
		FooterIcon:  "img/owl.png",
		Title:       "React Testing Library",
		RepoURL:     "https://github.com/kentcdodds/react-testing-library",
		DocsRepoURL: "https://github.com/alexkrolick/react-testing-library-docs",
		Copyright:   "Copyright © 2018 Kent C. Dodds",
		Languages:   []string{"en", "fr"},
		Translations: map[string]map[string]string{
			"fr": {
				"footer.docs":                "Documentation",
				"footer.docs.gettingStarted": "Commencer",
			},
		},
	}
}

// MustLoadSiteConfig reads a config fixture, failing the test on error.
func MustLoadSiteConfig(t *testing.T, path string) siteconfig.Config {
	t.Helper()

	cfg, err := siteconfig.LoadFile(path)
	if err != nil {
		t.Fatalf("load site config: %v", err)
	}
	return cfg
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGoldenString reads a golden file and returns its content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
