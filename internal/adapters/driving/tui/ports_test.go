package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
	"github.com/chainguide-labs/chainguide-cli/internal/core/ports/driving"
)

// MockLibraryService implements driving.LibraryService for testing.
type MockLibraryService struct {
	ListGuidesFunc     func(ctx context.Context, category domain.Category) ([]string, error)
	GetGuideFunc       func(ctx context.Context, category domain.Category, name string) (*domain.Guide, error)
	AggregateFunc      func(ctx context.Context, categories []domain.Category) (string, error)
	ResolveContextFunc func(ctx context.Context, query string) (domain.MatchResult, error)
	BuildGuideFunc     func(ctx context.Context, kind domain.GuideKind) (string, error)
}

func (m *MockLibraryService) ListGuides(
	ctx context.Context, category domain.Category,
) ([]string, error) {
	if m.ListGuidesFunc != nil {
		return m.ListGuidesFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockLibraryService) GetGuide(
	ctx context.Context, category domain.Category, name string,
) (*domain.Guide, error) {
	if m.GetGuideFunc != nil {
		return m.GetGuideFunc(ctx, category, name)
	}
	return nil, domain.ErrNotFound
}

func (m *MockLibraryService) Aggregate(
	ctx context.Context, categories []domain.Category,
) (string, error) {
	if m.AggregateFunc != nil {
		return m.AggregateFunc(ctx, categories)
	}
	return "", nil
}

func (m *MockLibraryService) ResolveContext(
	ctx context.Context, query string,
) (domain.MatchResult, error) {
	if m.ResolveContextFunc != nil {
		return m.ResolveContextFunc(ctx, query)
	}
	return domain.MatchResult{}, nil
}

func (m *MockLibraryService) BuildGuide(
	ctx context.Context, kind domain.GuideKind,
) (string, error) {
	if m.BuildGuideFunc != nil {
		return m.BuildGuideFunc(ctx, kind)
	}
	return "", nil
}

var _ driving.LibraryService = (*MockLibraryService)(nil)

func TestPorts_Validate(t *testing.T) {
	t.Run("valid ports", func(t *testing.T) {
		ports := &Ports{Library: &MockLibraryService{}}
		require.NoError(t, ports.Validate())
	})

	t.Run("missing library service", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingLibraryService)
	})
}
