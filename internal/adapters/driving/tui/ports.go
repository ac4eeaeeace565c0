// Package tui provides an interactive terminal browser for the guide
// library, following the Elm architecture on top of Bubbletea.
package tui

import (
	"errors"

	"github.com/chainguide-labs/chainguide-cli/internal/core/ports/driving"
)

// ErrMissingLibraryService is returned when the library service is not provided.
var ErrMissingLibraryService = errors.New("tui: library service is required")

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Library provides guide listing and retrieval.
	Library driving.LibraryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Library == nil {
		return ErrMissingLibraryService
	}
	return nil
}
