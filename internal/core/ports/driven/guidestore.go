package driven

import (
	"context"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
)

// GuideStore enumerates and loads guide documents.
// Backed by a directory tree with one subdirectory per category.
//
// Implementations must discover fresh on every call so that edits to
// guides on disk are visible without a restart; no persistent index is
// kept. The store is read-only: it never creates, mutates, or deletes
// guides on behalf of callers.
type GuideStore interface {
	// ListNames returns all guide names present in the category, in
	// lexicographic order. A missing or unreadable category directory
	// yields an empty slice, not an error; the underlying failure is
	// logged as a warning.
	ListNames(ctx context.Context, category domain.Category) ([]string, error)

	// Load returns the full text of the named guide.
	// Returns domain.ErrNotFound if the guide does not exist.
	Load(ctx context.Context, category domain.Category, name string) (string, error)
}
