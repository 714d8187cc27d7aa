package decompose

import (
	"slices"

	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// Handler identifiers used in the ranking tables.
const (
	HandlerGPT4        = "gpt-4"
	HandlerClaudeOpus  = "claude-opus"
	HandlerGeminiPro   = "gemini-pro"
	HandlerGeminiFlash = "gemini-flash"
	HandlerCodeLlama   = "codellama:34b"
	HandlerQwenCoder   = "qwen2.5-coder:32b"
	HandlerGrok3       = "grok-3"
)

// handlerRankings lists candidate handlers per category, most preferred first.
var handlerRankings = map[models.Category][]string{
	models.CategoryAPIDevelopment:      {HandlerGPT4, HandlerClaudeOpus, HandlerCodeLlama},
	models.CategoryWebDevelopment:      {HandlerGPT4, HandlerClaudeOpus, HandlerGeminiPro},
	models.CategoryDataAnalysis:        {HandlerGPT4, HandlerGeminiPro, HandlerClaudeOpus},
	models.CategoryAutomationScript:    {HandlerGPT4, HandlerCodeLlama, HandlerQwenCoder},
	models.CategoryCloudInfrastructure: {HandlerGPT4, HandlerClaudeOpus, HandlerGeminiPro},
	models.CategoryDatabaseDesign:      {HandlerGPT4, HandlerClaudeOpus, HandlerGeminiPro},
	models.CategoryTesting:             {HandlerGPT4, HandlerClaudeOpus, HandlerCodeLlama},
	models.CategoryDocumentation:       {HandlerGPT4, HandlerClaudeOpus, HandlerGeminiFlash},
	models.CategoryCodeReview:          {HandlerGPT4, HandlerClaudeOpus, HandlerGeminiPro},
	models.CategoryDebugging:           {HandlerGPT4, HandlerClaudeOpus, HandlerGrok3},
	models.CategoryOptimization:        {HandlerGPT4, HandlerClaudeOpus, HandlerGeminiPro},
	models.CategorySecurityAudit:       {HandlerGPT4, HandlerClaudeOpus, HandlerGrok3},
}

var defaultHandlers = []string{HandlerGPT4, HandlerClaudeOpus}

// SelectHandlers returns the ranked candidate handlers for a category.
// Heavy complexity promotes the most capable handlers via PromoteHandlers.
func SelectHandlers(category models.Category, complexity models.Complexity) []string {
	ranked, ok := handlerRankings[category]
	if !ok {
		ranked = defaultHandlers
	}
	handlers := clone(ranked)

	if complexity.IsHeavy() {
		handlers = PromoteHandlers(handlers)
	}
	return handlers
}

// PromoteHandlers moves claude-opus to the front when present, then moves
// gpt-4 to the front when present but not already in the top two.
// Reapplying it to a promoted ranking from the tables leaves it unchanged.
// Arbitrary input with both names outside the top two is not a fixed point:
// [a b gpt-4 claude-opus] promotes to [gpt-4 claude-opus a b], and a second
// pass yields [claude-opus gpt-4 a b].
func PromoteHandlers(handlers []string) []string {
	out := clone(handlers)
	out = moveToFront(out, HandlerClaudeOpus)
	if i := slices.Index(out, HandlerGPT4); i >= 2 {
		out = moveToFront(out, HandlerGPT4)
	}
	return out
}

func moveToFront(handlers []string, name string) []string {
	i := slices.Index(handlers, name)
	if i <= 0 {
		return handlers
	}
	copy(handlers[1:i+1], handlers[:i])
	handlers[0] = name
	return handlers
}
