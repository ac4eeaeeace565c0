package domain

import "fmt"

// Category identifies a fixed topic grouping of guides.
// The set of categories is closed for the lifetime of the process;
// each category maps to one subdirectory of the guide root.
type Category string

const (
	// CategoryContractLogic covers on-chain contract development guides.
	CategoryContractLogic Category = "contract-logic"
	// CategoryFrontendIntegration covers dapp frontend and SDK guides.
	CategoryFrontendIntegration Category = "frontend-integration"
	// CategoryDeploymentManagement covers deployment and upgrade guides.
	CategoryDeploymentManagement Category = "deployment-management"
	// CategoryHowTo covers task-oriented how-to guides. This is the pool
	// searched by context resolution.
	CategoryHowTo Category = "how-to"
)

// AllCategories returns every category in canonical order.
// Aggregations and listings that span "all" categories use this order.
func AllCategories() []Category {
	return []Category{
		CategoryContractLogic,
		CategoryFrontendIntegration,
		CategoryDeploymentManagement,
		CategoryHowTo,
	}
}

// ParseCategory converts a string to a Category.
// Returns ErrUnknownCategory for anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryContractLogic, CategoryFrontendIntegration,
		CategoryDeploymentManagement, CategoryHowTo:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// DirName is the subdirectory name for this category under the guide root.
func (c Category) DirName() string {
	return string(c)
}

// DisplayName is the human-readable name used in section headings.
func (c Category) DisplayName() string {
	switch c {
	case CategoryContractLogic:
		return "Contract Logic"
	case CategoryFrontendIntegration:
		return "Frontend Integration"
	case CategoryDeploymentManagement:
		return "Deployment Management"
	case CategoryHowTo:
		return "How-To Guides"
	default:
		return string(c)
	}
}

// GuideKind names a fixed set of categories that are aggregated into a
// single build guide. The kind-to-categories mapping is a closed
// tagged-variant mapping: adding a kind is a compile-visible change,
// never a silent runtime no-op.
type GuideKind string

const (
	// GuideKindDapp aggregates everything needed for a full dapp.
	GuideKindDapp GuideKind = "dapp"
	// GuideKindContract aggregates contract development and deployment.
	GuideKindContract GuideKind = "contract"
	// GuideKindFrontend aggregates frontend integration material.
	GuideKindFrontend GuideKind = "frontend"
)

// Categories returns the ordered category set aggregated for this kind.
// Returns ErrUnknownGuideKind for kinds outside the closed set.
func (k GuideKind) Categories() ([]Category, error) {
	switch k {
	case GuideKindDapp:
		return []Category{
			CategoryContractLogic,
			CategoryFrontendIntegration,
			CategoryDeploymentManagement,
		}, nil
	case GuideKindContract:
		return []Category{
			CategoryContractLogic,
			CategoryDeploymentManagement,
		}, nil
	case GuideKindFrontend:
		return []Category{CategoryFrontendIntegration}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGuideKind, string(k))
	}
}
