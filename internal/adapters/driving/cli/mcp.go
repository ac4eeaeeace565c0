package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/chainguide-labs/chainguide-cli/internal/adapters/driven/config/file"
	"github.com/chainguide-labs/chainguide-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  chainguide mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  chainguide mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "chainguide": {
        "command": "/path/to/chainguide",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	// A fresh install serves the starter guides rather than nothing.
	if err := guideStore.SeedIfEmpty(); err != nil {
		return fmt.Errorf("seeding starter guides: %w", err)
	}

	opts := mcp.Options{
		Version:       version,
		HTTPRateLimit: float64(configStore.GetInt(configfile.KeyHTTPRateLimit)),
		HTTPBurst:     configStore.GetInt(configfile.KeyHTTPBurst),
	}

	server, err := mcp.NewServer(&mcp.Ports{Library: libraryService}, opts)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
