package domain

// OperationKind identifies which caller-facing operation produced a
// response. The response composer selects its trailing guidance block
// by kind; the kind never influences the base text itself.
type OperationKind string

const (
	// OperationList is the guide listing operation.
	OperationList OperationKind = "list"
	// OperationGet is the specific-guide retrieval operation.
	OperationGet OperationKind = "get"
	// OperationContext is the context-resolution operation.
	OperationContext OperationKind = "context"
	// OperationBuild is the multi-category build-guide operation.
	OperationBuild OperationKind = "build"
)
