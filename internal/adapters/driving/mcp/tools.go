package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
	"github.com/chainguide-labs/chainguide-cli/internal/logger"
)

// ListGuidesInput is the (empty) input schema for the list_guides tool.
type ListGuidesInput struct{}

// GetGuideInput is the input schema for the get_guide tool.
type GetGuideInput struct {
	Name string `json:"name" jsonschema:"exact name of the guide to retrieve"`
}

// ContextInput is the input schema for the get_guides_by_context tool.
type ContextInput struct {
	Context string `json:"context,omitempty" jsonschema:"free-text description of what you are building or debugging"`
	Name    string `json:"name,omitempty" jsonschema:"exact guide name, if already known"`
}

// BuildInput is the (empty) input schema for the build_* tools.
type BuildInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_guides",
		Description: "List all available how-to guides by name",
	}, s.handleListGuides)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_guide",
		Description: "Retrieve the full content of a specific how-to guide",
	}, s.handleGetGuide)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_guides_by_context",
		Description: "Find the how-to guides most relevant to a described task",
	}, s.handleGetGuidesByContext)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_dapp",
		Description: "Aggregate every guide needed to build a full dapp (contracts, frontend, deployment)",
	}, s.buildHandler(domain.GuideKindDapp))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_smart_contract",
		Description: "Aggregate the contract development and deployment guides",
	}, s.buildHandler(domain.GuideKindContract))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_frontend",
		Description: "Aggregate the frontend integration guides",
	}, s.buildHandler(domain.GuideKindFrontend))
}

// handleListGuides handles the list_guides tool invocation.
func (s *Server) handleListGuides(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListGuidesInput,
) (*mcp.CallToolResult, any, error) {
	logCall("list_guides", "")

	names, err := s.ports.Library.ListGuides(ctx, domain.CategoryHowTo)
	if err != nil {
		return nil, nil, fmt.Errorf("listing guides: %w", err)
	}

	base := formatListing(names)
	return textResult(s.composer.Compose(base, domain.OperationList)), nil, nil
}

// handleGetGuide handles the get_guide tool invocation.
func (s *Server) handleGetGuide(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetGuideInput,
) (*mcp.CallToolResult, any, error) {
	logCall("get_guide", input.Name)

	base, err := s.lookupGuide(ctx, input.Name)
	if err != nil {
		return nil, nil, err
	}

	return textResult(s.composer.Compose(base, domain.OperationGet)), nil, nil
}

// handleGetGuidesByContext handles the get_guides_by_context tool invocation.
// An exact name wins over context matching; with neither, the full
// listing is returned as an overview.
func (s *Server) handleGetGuidesByContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContextInput,
) (*mcp.CallToolResult, any, error) {
	logCall("get_guides_by_context", input.Context)

	if input.Name != "" {
		base, err := s.lookupGuide(ctx, input.Name)
		if err != nil {
			return nil, nil, err
		}
		return textResult(s.composer.Compose(base, domain.OperationContext)), nil, nil
	}

	result, err := s.ports.Library.ResolveContext(ctx, input.Context)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving context: %w", err)
	}

	var base string
	switch {
	case result.IsSingle():
		guide, err := s.ports.Library.GetGuide(ctx, domain.CategoryHowTo, result.Names[0])
		if err != nil {
			return nil, nil, fmt.Errorf("loading matched guide: %w", err)
		}
		base = guide.Content

	case result.IsMultiple():
		// Ambiguous intent: hand back names only, never several full
		// documents at once.
		base = "Several guides match that context:\n\n" +
			bulletList(result.Names) +
			"\nCall get_guide with the one that fits."

	default:
		names, err := s.ports.Library.ListGuides(ctx, domain.CategoryHowTo)
		if err != nil {
			return nil, nil, fmt.Errorf("listing guides: %w", err)
		}
		base = "No guide matched that context. " + formatListing(names)
	}

	return textResult(s.composer.Compose(base, domain.OperationContext)), nil, nil
}

// buildHandler returns the handler for one build_* tool variant.
// The category set per kind is fixed at compile time.
func (s *Server) buildHandler(kind domain.GuideKind) func(
	context.Context, *mcp.CallToolRequest, BuildInput,
) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ BuildInput) (*mcp.CallToolResult, any, error) {
		logCall("build_"+string(kind), "")

		content, err := s.ports.Library.BuildGuide(ctx, kind)
		if errors.Is(err, domain.ErrNoContent) {
			base := "No guide content is installed yet. Run `chainguide guides init` " +
				"on this machine to install the starter guides, then call this tool again."
			return textResult(base), nil, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("building %s guide: %w", kind, err)
		}

		return textResult(s.composer.Compose(content, domain.OperationBuild)), nil, nil
	}
}

// lookupGuide loads a how-to guide by exact name, converting a miss into
// caller-facing text that lists valid alternatives.
func (s *Server) lookupGuide(ctx context.Context, name string) (string, error) {
	if name == "" {
		names, err := s.ports.Library.ListGuides(ctx, domain.CategoryHowTo)
		if err != nil {
			return "", fmt.Errorf("listing guides: %w", err)
		}
		return "No guide name was given. " + formatListing(names), nil
	}

	guide, err := s.ports.Library.GetGuide(ctx, domain.CategoryHowTo, name)
	if errors.Is(err, domain.ErrNotFound) {
		names, listErr := s.ports.Library.ListGuides(ctx, domain.CategoryHowTo)
		if listErr != nil {
			return "", fmt.Errorf("listing alternatives: %w", listErr)
		}
		return fmt.Sprintf("No guide named %q exists. %s", name, formatListing(names)), nil
	}
	if err != nil {
		return "", fmt.Errorf("loading guide %q: %w", name, err)
	}

	return guide.Content, nil
}

// formatListing renders guide names as a readable overview.
func formatListing(names []string) string {
	if len(names) == 0 {
		return "No guides are installed. Run `chainguide guides init` to install the starter set."
	}
	return "Available guides:\n\n" + bulletList(names) +
		"\nRetry with a different phrase or pass an exact guide name."
}

// bulletList renders names one per line.
func bulletList(names []string) string {
	var b strings.Builder
	for _, name := range names {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String()
}

// textResult wraps plain text in a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// logCall records a tool invocation under a short request ID when
// verbose logging is on.
func logCall(tool, arg string) {
	if !logger.IsVerbose() {
		return
	}
	logger.Debug("call %s tool=%s arg=%q", uuid.NewString()[:8], tool, arg)
}
