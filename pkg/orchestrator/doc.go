// Package orchestrator wires site config -> theme selection -> footer tree ->
// localisation -> renderer into a single entry point with dependency
// injection friendly defaults.
package orchestrator
