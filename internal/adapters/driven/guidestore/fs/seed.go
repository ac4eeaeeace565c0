package fs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chainguide-labs/chainguide-cli/internal/logger"
)

// starterFS contains the starter guide set embedded at compile time.
// One subdirectory per category, mirroring the on-disk layout.
//
//go:embed starter
var starterFS embed.FS

// Seed writes the embedded starter guides under the store root.
// Existing files are never overwritten - user edits always win. Seeding
// is idempotent and safe to run on every startup.
func (s *Store) Seed() error {
	return fs.WalkDir(starterFS, "starter", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel("starter", path)
		if err != nil {
			return fmt.Errorf("resolve starter path %q: %w", path, err)
		}
		target := filepath.Join(s.root, rel)

		if _, err := os.Stat(target); err == nil {
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(target), 0700); err != nil {
			return fmt.Errorf("create guide directory: %w", err)
		}

		data, err := starterFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read embedded guide %q: %w", path, err)
		}

		if err := os.WriteFile(target, data, 0600); err != nil {
			return fmt.Errorf("write starter guide %q: %w", target, err)
		}

		logger.Debug("seeded starter guide %s", rel)
		return nil
	})
}

// SeedIfEmpty seeds the starter guides only when the root directory is
// missing. Used on server startup so a fresh install serves something
// useful without a separate init step.
func (s *Store) SeedIfEmpty() error {
	if _, err := os.Stat(s.root); err == nil {
		return nil
	}
	return s.Seed()
}
