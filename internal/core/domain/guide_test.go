package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatchResult_NoMatch tests the empty result
func TestMatchResult_NoMatch(t *testing.T) {
	r := MatchResult{}

	assert.True(t, r.IsNoMatch())
	assert.False(t, r.IsSingle())
	assert.False(t, r.IsMultiple())
}

// TestMatchResult_Single tests a single-name result
func TestMatchResult_Single(t *testing.T) {
	r := MatchResult{Names: []string{"how_to_add_wallet_connection"}}

	assert.False(t, r.IsNoMatch())
	assert.True(t, r.IsSingle())
	assert.False(t, r.IsMultiple())
}

// TestMatchResult_Multiple tests an ambiguous result
func TestMatchResult_Multiple(t *testing.T) {
	r := MatchResult{Names: []string{"a", "b", "c"}}

	assert.False(t, r.IsNoMatch())
	assert.False(t, r.IsSingle())
	assert.True(t, r.IsMultiple())
}

// TestGuide_Fields tests Guide structure fields
func TestGuide_Fields(t *testing.T) {
	g := Guide{
		Category: CategoryHowTo,
		Name:     "how_to_add_wallet_connection",
		Content:  "# Wallet Connection\n...",
	}

	assert.Equal(t, CategoryHowTo, g.Category)
	assert.Equal(t, "how_to_add_wallet_connection", g.Name)
	assert.NotEmpty(t, g.Content)
}
