package services

import (
	"context"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
)

// mockGuideStore is a mock implementation of driven.GuideStore.
// Guides are keyed by "category/name"; names preserves listing order.
type mockGuideStore struct {
	names    map[domain.Category][]string
	contents map[string]string
	listErr  error
	loadErr  error
}

func newMockGuideStore() *mockGuideStore {
	return &mockGuideStore{
		names:    make(map[domain.Category][]string),
		contents: make(map[string]string),
	}
}

func (m *mockGuideStore) add(category domain.Category, name, content string) {
	m.names[category] = append(m.names[category], name)
	m.contents[string(category)+"/"+name] = content
}

func (m *mockGuideStore) ListNames(_ context.Context, category domain.Category) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.names[category], nil
}

func (m *mockGuideStore) Load(_ context.Context, category domain.Category, name string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	content, ok := m.contents[string(category)+"/"+name]
	if !ok {
		return "", domain.ErrNotFound
	}
	return content, nil
}
