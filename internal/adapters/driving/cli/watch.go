package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
	"github.com/chainguide-labs/chainguide-cli/internal/logger"
)

var guidesWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the guide root and report changes",
	Long: `Watch every category directory and print guide changes as they happen.

Useful while authoring guides: the MCP server re-reads guides on every
call, so a change reported here is already live for connected assistants.`,
	RunE: runGuidesWatch,
}

func init() {
	guidesCmd.AddCommand(guidesWatchCmd)
}

func runGuidesWatch(cmd *cobra.Command, _ []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	watched := 0
	for _, category := range domain.AllCategories() {
		dir := filepath.Join(guideStore.Root(), category.DirName())
		if _, err := os.Stat(dir); err != nil {
			logger.Warn("not watching %s: %v", category, err)
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no category directories exist under %s; run `chainguide guides init` first", guideStore.Root())
	}

	cmd.Printf("Watching %d categories under %s (ctrl-c to stop)\n", watched, guideStore.Root())

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".md" {
				continue
			}
			cmd.Printf("%s %s\n", event.Op, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
