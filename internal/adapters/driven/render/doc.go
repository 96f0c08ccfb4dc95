// Package render formats diff results for terminals and machines.
// Renderers are downstream collaborators: they read a finished diff
// and never alter its contents.
package render
