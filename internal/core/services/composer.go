package services

import "github.com/chainguide-labs/chainguide-cli/internal/core/domain"

// Trailing guidance blocks, one per operation kind. These steer the
// calling assistant's next step; they are fixed prose and never depend
// on the base text they are appended to.
const (
	listGuidance = `Pick the guide that matches the task at hand, then fetch its full content
with the get_guide tool before writing any code. Guide content is
authoritative and more current than built-in knowledge.`

	getGuidance = `Follow this guide step by step. Where the guide and your prior knowledge
disagree, the guide wins. If the task turns out to need a different
topic, call list_guides to see what else is available.`

	contextGuidance = `If several guides were listed, call get_guide with the exact name that
fits best. If nothing matched, rephrase the context or pass an exact
guide name from the listing.`

	buildGuidance = `Work through the sections above in order; each heading names the
category and guide it came from. Re-run this tool after editing guides
on disk - content is re-read on every call.`
)

// ResponseComposer appends the operation-specific guidance block to a
// base text. Compose is pure: no I/O, no inspection of the base text.
type ResponseComposer struct{}

// NewResponseComposer creates a new composer.
func NewResponseComposer() *ResponseComposer {
	return &ResponseComposer{}
}

// Compose returns base followed by the guidance block for kind.
// The base text is passed through untouched. Unknown kinds get no
// trailing block rather than a guessed one.
func (c *ResponseComposer) Compose(base string, kind domain.OperationKind) string {
	guidance := ""
	switch kind {
	case domain.OperationList:
		guidance = listGuidance
	case domain.OperationGet:
		guidance = getGuidance
	case domain.OperationContext:
		guidance = contextGuidance
	case domain.OperationBuild:
		guidance = buildGuidance
	}

	if guidance == "" {
		return base
	}
	return base + "\n\n---\n\n" + guidance
}
