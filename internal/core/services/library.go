package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
	"github.com/chainguide-labs/chainguide-cli/internal/core/ports/driven"
	"github.com/chainguide-labs/chainguide-cli/internal/core/ports/driving"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService resolves and aggregates guides from the guide store.
// It holds no mutable state of its own; every call re-discovers guides
// through the store so on-disk edits are visible immediately.
type LibraryService struct {
	store   driven.GuideStore
	matcher *ContextMatcher
}

// NewLibraryService creates a new library service.
func NewLibraryService(store driven.GuideStore) *LibraryService {
	return &LibraryService{
		store:   store,
		matcher: NewContextMatcher(),
	}
}

// ListGuides returns the guide names in a category, in discovery order.
func (s *LibraryService) ListGuides(ctx context.Context, category domain.Category) ([]string, error) {
	if s.store == nil {
		return nil, domain.ErrInvalidInput
	}
	return s.store.ListNames(ctx, category)
}

// GetGuide returns the named guide with content loaded.
func (s *LibraryService) GetGuide(ctx context.Context, category domain.Category, name string) (*domain.Guide, error) {
	if s.store == nil {
		return nil, domain.ErrInvalidInput
	}

	content, err := s.store.Load(ctx, category, name)
	if err != nil {
		return nil, err
	}

	return &domain.Guide{
		Category: category,
		Name:     name,
		Content:  content,
	}, nil
}

// Aggregate concatenates every guide of every category, in order.
// Each guide is preceded by a heading naming its category and name so a
// reader can attribute sections to their source. Categories that yield
// nothing are skipped silently; if no category contributes anything,
// domain.ErrNoContent is returned instead of an empty string.
func (s *LibraryService) Aggregate(ctx context.Context, categories []domain.Category) (string, error) {
	if s.store == nil {
		return "", domain.ErrInvalidInput
	}

	var builder strings.Builder
	found := false

	for _, category := range categories {
		names, err := s.store.ListNames(ctx, category)
		if err != nil {
			return "", fmt.Errorf("listing %s guides: %w", category, err)
		}

		for _, name := range names {
			content, err := s.store.Load(ctx, category, name)
			if err != nil {
				return "", fmt.Errorf("loading %s/%s: %w", category, name, err)
			}

			if found {
				builder.WriteString("\n\n")
			}
			fmt.Fprintf(&builder, "# %s — %s\n\n", category.DisplayName(), name)
			builder.WriteString(content)
			found = true
		}
	}

	if !found {
		return "", domain.ErrNoContent
	}

	return builder.String(), nil
}

// ResolveContext matches a free-text description of developer intent
// against the how-to guide pool.
func (s *LibraryService) ResolveContext(ctx context.Context, query string) (domain.MatchResult, error) {
	names, err := s.store.ListNames(ctx, domain.CategoryHowTo)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("listing how-to guides: %w", err)
	}

	return s.matcher.Match(query, names), nil
}

// BuildGuide aggregates the fixed category set for the given kind.
func (s *LibraryService) BuildGuide(ctx context.Context, kind domain.GuideKind) (string, error) {
	categories, err := kind.Categories()
	if err != nil {
		return "", err
	}
	return s.Aggregate(ctx, categories)
}
