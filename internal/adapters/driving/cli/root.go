// Package cli implements the cobra command tree for Chainguide.
// Commands wire the core services to their driving adapters; business
// logic stays in internal/core.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/chainguide-labs/chainguide-cli/internal/adapters/driven/config/file"
	guidefs "github.com/chainguide-labs/chainguide-cli/internal/adapters/driven/guidestore/fs"
	"github.com/chainguide-labs/chainguide-cli/internal/core/ports/driven"
	"github.com/chainguide-labs/chainguide-cli/internal/core/ports/driving"
	"github.com/chainguide-labs/chainguide-cli/internal/core/services"
	"github.com/chainguide-labs/chainguide-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Wired services, populated by initServices before any command runs.
var (
	guideStore     *guidefs.Store
	configStore    driven.ConfigStore
	libraryService driving.LibraryService
)

var (
	flagVerbose   bool
	flagGuidesDir string
)

var rootCmd = &cobra.Command{
	Use:   "chainguide",
	Short: "Curated blockchain development guides for AI assistants",
	Long: `Chainguide serves curated blockchain development guides to AI coding
assistants over the Model Context Protocol, and lets you browse and
maintain the same guide library locally.

Guides are plain markdown files under the guide root (default
~/.chainguide/guides), one subdirectory per category. Edits on disk are
picked up immediately - nothing is cached.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagGuidesDir, "guides-dir", "", "guide root directory (default ~/.chainguide/guides)")
}

// initServices builds the driven adapters and core services once per
// invocation. Precedence for the guide root: flag, then config file,
// then the built-in default.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = store

	root := flagGuidesDir
	if root == "" {
		root = configStore.GetString(configfile.KeyGuidesRoot)
	}

	guideStore, err = guidefs.NewStore(root)
	if err != nil {
		return fmt.Errorf("opening guide store: %w", err)
	}
	logger.Debug("guide root: %s", guideStore.Root())

	libraryService = services.NewLibraryService(guideStore)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
