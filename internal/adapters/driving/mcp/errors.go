// Package mcp provides an MCP (Model Context Protocol) server adapter
// for yamly. It lets AI assistants diff documents and data files
// without shelling out to the CLI.
package mcp

import "errors"

// ErrMissingDiffService is returned when the diff service is not provided.
var ErrMissingDiffService = errors.New("mcp: diff service is required")

// ErrMissingLoaders is returned when the document or value loader is not provided.
var ErrMissingLoaders = errors.New("mcp: document and value loaders are required")
