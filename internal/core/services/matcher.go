package services

import (
	"strings"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
)

// keywordGroup pairs query trigger substrings with the substring used to
// filter guide names when the group fires.
type keywordGroup struct {
	// triggers are substrings looked for in the lowercased query.
	triggers []string
	// filter is the substring a guide name must contain to match.
	filter string
}

// keywordGroups is evaluated in order; the first group whose trigger
// appears in the query selects the filter. Declaration order is the only
// tie-break for queries that mention several groups at once (e.g.
// "wallet gas fee issue" resolves to the wallet group).
var keywordGroups = []keywordGroup{
	{triggers: []string{"wallet"}, filter: "wallet"},
	{triggers: []string{"gas"}, filter: "gas"},
	{triggers: []string{"indexer"}, filter: "indexer"},
	{triggers: []string{"api", "rate"}, filter: "api"},
	{triggers: []string{"transaction", "sign"}, filter: "transaction"},
	{triggers: []string{"fungible", "asset"}, filter: "fungible"},
}

// ContextMatcher maps a free-text query to the guide names most likely
// to cover it. Matching is heuristic: an ordered keyword-group table,
// falling back to a plain substring test of the full query against each
// name. The matcher is stateless and safe for concurrent use.
type ContextMatcher struct {
	groups []keywordGroup
}

// NewContextMatcher creates a matcher with the standard keyword groups.
func NewContextMatcher() *ContextMatcher {
	return &ContextMatcher{groups: keywordGroups}
}

// Match resolves query against names, preserving the order of names.
//
// An empty query falls through to the substring fallback and matches
// every name: a no-context request is treated as a request for an
// overview, which callers render as the full listing.
func (m *ContextMatcher) Match(query string, names []string) domain.MatchResult {
	q := strings.ToLower(strings.TrimSpace(query))

	filter := m.selectFilter(q)

	var matched []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), filter) {
			matched = append(matched, name)
		}
	}

	return domain.MatchResult{Names: matched}
}

// selectFilter returns the name filter for the first keyword group
// triggered by the query, or the query itself when no group fires.
func (m *ContextMatcher) selectFilter(query string) string {
	for _, g := range m.groups {
		for _, trigger := range g.triggers {
			if strings.Contains(query, trigger) {
				return g.filter
			}
		}
	}
	return query
}
