package mcp

import (
	"context"
	"strings"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
	"github.com/chainguide-labs/chainguide-cli/internal/core/services"
)

// mockLibraryService is a mock implementation of driving.LibraryService.
// Guides are keyed by "category/name"; listing order follows names.
type mockLibraryService struct {
	names    map[domain.Category][]string
	contents map[string]string
	err      error
}

func newMockLibrary() *mockLibraryService {
	return &mockLibraryService{
		names:    make(map[domain.Category][]string),
		contents: make(map[string]string),
	}
}

func (m *mockLibraryService) add(category domain.Category, name, content string) {
	m.names[category] = append(m.names[category], name)
	m.contents[string(category)+"/"+name] = content
}

func (m *mockLibraryService) ListGuides(_ context.Context, category domain.Category) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.names[category], nil
}

func (m *mockLibraryService) GetGuide(_ context.Context, category domain.Category, name string) (*domain.Guide, error) {
	if m.err != nil {
		return nil, m.err
	}
	content, ok := m.contents[string(category)+"/"+name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Guide{Category: category, Name: name, Content: content}, nil
}

func (m *mockLibraryService) Aggregate(_ context.Context, categories []domain.Category) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	var parts []string
	for _, category := range categories {
		for _, name := range m.names[category] {
			parts = append(parts, m.contents[string(category)+"/"+name])
		}
	}
	if len(parts) == 0 {
		return "", domain.ErrNoContent
	}
	return strings.Join(parts, "\n\n"), nil
}

func (m *mockLibraryService) ResolveContext(_ context.Context, query string) (domain.MatchResult, error) {
	if m.err != nil {
		return domain.MatchResult{}, m.err
	}
	return services.NewContextMatcher().Match(query, m.names[domain.CategoryHowTo]), nil
}

func (m *mockLibraryService) BuildGuide(ctx context.Context, kind domain.GuideKind) (string, error) {
	categories, err := kind.Categories()
	if err != nil {
		return "", err
	}
	return m.Aggregate(ctx, categories)
}
