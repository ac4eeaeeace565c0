package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for Chainguide resources.
const uriScheme = "chainguide://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing categories and their guides.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "categories",
		Name:        "categories",
		Description: "All guide categories with the guide names each contains",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)

	// Template for guide content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "guides/{category}/{name}",
		Name:        "guide-content",
		Description: "Content of a specific guide",
		MIMEType:    "text/markdown",
	}, s.handleGuideContentResource)
}

// handleCategoriesResource returns every category with its guide names.
func (s *Server) handleCategoriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type categoryInfo struct {
		Category string   `json:"category"`
		Display  string   `json:"display"`
		Guides   []string `json:"guides"`
	}

	infos := make([]categoryInfo, 0, len(domain.AllCategories()))
	for _, category := range domain.AllCategories() {
		names, err := s.ports.Library.ListGuides(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("listing %s guides: %w", category, err)
		}
		infos = append(infos, categoryInfo{
			Category: string(category),
			Display:  category.DisplayName(),
			Guides:   names,
		})
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling categories: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleGuideContentResource returns the content of a specific guide.
func (s *Server) handleGuideContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	category, name, ok := extractGuideRef(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	guide, err := s.ports.Library.GetGuide(ctx, category, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting guide content: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     guide.Content,
		}},
	}, nil
}

// extractGuideRef parses a URI like chainguide://guides/{category}/{name}.
func extractGuideRef(uri string) (domain.Category, string, bool) {
	const prefix = uriScheme + "guides/"

	if !strings.HasPrefix(uri, prefix) {
		return "", "", false
	}

	rest := strings.TrimPrefix(uri, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", false
	}

	category, err := domain.ParseCategory(parts[0])
	if err != nil {
		return "", "", false
	}

	return category, parts[1], true
}
