package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainguide-labs/chainguide-cli/internal/core/domain"
)

func TestResponseComposer_Compose(t *testing.T) {
	c := NewResponseComposer()

	t.Run("base text passes through untouched", func(t *testing.T) {
		base := "# Some Guide\n\nStep one."
		out := c.Compose(base, domain.OperationGet)

		assert.True(t, strings.HasPrefix(out, base))
	})

	t.Run("each kind gets its own guidance block", func(t *testing.T) {
		base := "listing"

		listOut := c.Compose(base, domain.OperationList)
		getOut := c.Compose(base, domain.OperationGet)
		ctxOut := c.Compose(base, domain.OperationContext)
		buildOut := c.Compose(base, domain.OperationBuild)

		assert.Contains(t, listOut, "get_guide")
		assert.Contains(t, getOut, "guide wins")
		assert.Contains(t, ctxOut, "rephrase the context")
		assert.NotEqual(t, listOut, getOut)
		assert.NotEqual(t, getOut, ctxOut)
		assert.NotEqual(t, ctxOut, buildOut)
	})

	t.Run("unknown kind appends nothing", func(t *testing.T) {
		out := c.Compose("bare", domain.OperationKind("mystery"))
		assert.Equal(t, "bare", out)
	})

	t.Run("empty base still gets guidance", func(t *testing.T) {
		out := c.Compose("", domain.OperationList)
		assert.NotEmpty(t, out)
	})
}
