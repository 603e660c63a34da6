// Package siteconfig defines the site configuration record the footer is
// rendered from, together with JSON/YAML loaders and validation helpers.
//
// The record is read-only for rendering: builders never mutate it and never
// require it to be valid. Validate exists for tooling (the CLI check command)
// that wants to surface likely mistakes before publishing.
package siteconfig
