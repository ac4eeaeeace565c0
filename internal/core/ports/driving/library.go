package driving

import (
	"context"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
)

// LibraryService is the guide library's driving port. It resolves,
// aggregates, and matches guides; callers render its results as text.
type LibraryService interface {
	// ListGuides returns the guide names in a category, in discovery order.
	ListGuides(ctx context.Context, category domain.Category) ([]string, error)

	// GetGuide returns the named guide with content loaded.
	// Returns domain.ErrNotFound if the name is absent from the category.
	GetGuide(ctx context.Context, category domain.Category, name string) (*domain.Guide, error)

	// Aggregate concatenates every guide of every category, in order,
	// separated by section headings naming the source category and guide.
	// Categories with no guides are skipped. Returns domain.ErrNoContent
	// when no category contributes anything.
	Aggregate(ctx context.Context, categories []domain.Category) (string, error)

	// ResolveContext matches a free-text description of developer intent
	// against the how-to guide pool.
	ResolveContext(ctx context.Context, query string) (domain.MatchResult, error)

	// BuildGuide aggregates the fixed category set for the given kind.
	BuildGuide(ctx context.Context, kind domain.GuideKind) (string, error)
}
