package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
	"github.com/chainguide-labs/chainguide-cli/internal/core/ports/driven"
	"github.com/chainguide-labs/chainguide-cli/internal/logger"
)

// guideExt is the only recognised document extension.
const guideExt = ".md"

// Ensure Store implements the interface.
var _ driven.GuideStore = (*Store)(nil)

// Store loads guides from a directory tree rooted at root.
type Store struct {
	root string
}

// NewStore creates a filesystem guide store rooted at root.
// If root is empty, defaults to ~/.chainguide/guides.
func NewStore(root string) (*Store, error) {
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		root = filepath.Join(home, ".chainguide", "guides")
	}

	return &Store{root: root}, nil
}

// Root returns the guide root directory path.
func (s *Store) Root() string {
	return s.root
}

// ListNames returns the guide names in the category, sorted
// lexicographically. A missing or unreadable category directory is
// treated as zero guides and logged as a warning, never surfaced as an
// error to callers.
func (s *Store) ListNames(_ context.Context, category domain.Category) ([]string, error) {
	dir := filepath.Join(s.root, category.DirName())

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("guide category %q unavailable: %v", category, err)
		return nil, nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), guideExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), guideExt))
	}

	sort.Strings(names)
	return names, nil
}

// Load returns the full text of the named guide.
// Returns domain.ErrNotFound if the guide file does not exist; names
// containing path separators are rejected the same way so a caller can
// never escape the category directory.
func (s *Store) Load(_ context.Context, category domain.Category, name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %s/%s", domain.ErrNotFound, category, name)
	}

	path := filepath.Join(s.root, category.DirName(), name+guideExt)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s/%s", domain.ErrNotFound, category, name)
	}
	if err != nil {
		return "", fmt.Errorf("read guide %s/%s: %w", category, name, err)
	}

	return string(data), nil
}
