// Package render defines the renderer contract and a name-keyed registry so
// callers can pick an output format (HTML, JSON) at runtime.
package render
