// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Chainguide. It exposes the guide library to AI coding assistants so they
// work from curated, current material instead of stale built-in knowledge.
package mcp

import "errors"

// ErrMissingLibraryService is returned when the library service is not provided.
var ErrMissingLibraryService = errors.New("mcp: library service is required")
