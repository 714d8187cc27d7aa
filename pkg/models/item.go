package models

import "fmt"

// Classification is the result of scanning one request.
// The core never persists it; the CLI may record a copy in run history.
type Classification struct {
	// Categories are the detected categories in declaration order.
	Categories []Category `json:"categories" yaml:"categories"`
	// Complexity is the single level detected for the whole request.
	Complexity Complexity `json:"complexity" yaml:"complexity"`
	// Requirements are free-text constraints extracted from the request.
	Requirements []string `json:"requirements" yaml:"requirements"`
	// Approach is a natural-language execution recommendation.
	Approach string `json:"approach" yaml:"approach"`
}

// ContextRequirements lists the context a handler needs to carry out an item.
type ContextRequirements struct {
	RequiredFiles      []string `json:"required_files" yaml:"required_files"`
	APIEndpoints       []string `json:"api_endpoints" yaml:"api_endpoints"`
	DocumentationLinks []string `json:"documentation_links" yaml:"documentation_links"`
	ExistingCode       []string `json:"existing_code" yaml:"existing_code"`
	Constraints        []string `json:"constraints" yaml:"constraints"`
}

// EmptyContext returns a ContextRequirements with every list empty and non-nil.
func EmptyContext() ContextRequirements {
	return ContextRequirements{
		RequiredFiles:      []string{},
		APIEndpoints:       []string{},
		DocumentationLinks: []string{},
		ExistingCode:       []string{},
		Constraints:        []string{},
	}
}

// TaskItem is one decomposed unit of work. Items are immutable once built.
type TaskItem struct {
	// ID is the call-scoped identifier ("task_1", "task_2", ...).
	ID string `json:"id" yaml:"id"`
	// Description is a short summary of the work.
	Description string `json:"description" yaml:"description"`
	// Category is the domain of the work.
	Category Category `json:"category" yaml:"category"`
	// Complexity is copied from the request's classification.
	Complexity Complexity `json:"complexity" yaml:"complexity"`
	// DependsOn lists IDs of items that must complete first.
	DependsOn []string `json:"depends_on" yaml:"depends_on"`
	// Capabilities are the skills a handler needs.
	Capabilities []string `json:"required_capabilities" yaml:"required_capabilities"`
	// EstimatedTokens is a heuristic cost estimate.
	EstimatedTokens int `json:"estimated_tokens" yaml:"estimated_tokens"`
	// Handlers is the ranked list of candidate handlers, most preferred first.
	Handlers []string `json:"preferred_handlers" yaml:"preferred_handlers"`
	// Context describes inputs the handler will need.
	Context ContextRequirements `json:"context_needed" yaml:"context_needed"`
	// SuccessCriteria describe how to validate completion.
	SuccessCriteria []string `json:"success_criteria" yaml:"success_criteria"`
}

// ItemID formats the identifier for the item at the given 1-based position.
func ItemID(position int) string {
	return fmt.Sprintf("task_%d", position)
}
