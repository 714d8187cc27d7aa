package classify

import (
	"strings"

	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// Classify scans a request and returns its categories, complexity,
// requirements and suggested approach. It never fails; an empty request
// yields no categories and the default complexity.
func Classify(text string) models.Classification {
	lower := strings.ToLower(text)

	categories := detectCategories(lower)
	complexity, _ := detectComplexity(lower)

	return models.Classification{
		Categories:   categories,
		Complexity:   complexity,
		Requirements: extractRequirements(lower),
		Approach:     SuggestApproach(len(categories), complexity),
	}
}

// Match records which phrase triggered a detection.
type Match struct {
	Category models.Category `json:"category" yaml:"category"`
	Phrase   string          `json:"phrase" yaml:"phrase"`
}

// Explanation describes why a request was classified the way it was.
type Explanation struct {
	// Matches holds the first matching phrase for every detected category.
	Matches []Match `json:"matches" yaml:"matches"`
	// Complexity is the selected level.
	Complexity models.Complexity `json:"complexity" yaml:"complexity"`
	// ComplexityPhrase is the indicator that selected the level, empty when defaulted.
	ComplexityPhrase string `json:"complexity_phrase,omitempty" yaml:"complexity_phrase,omitempty"`
}

// Explain reports the phrases behind a classification.
func Explain(text string) Explanation {
	lower := strings.ToLower(text)

	var matches []Match
	for _, category := range models.Categories() {
		if phrase, ok := firstMatch(lower, CategoryPhrases[category]); ok {
			matches = append(matches, Match{Category: category, Phrase: phrase})
		}
	}

	complexity, phrase := detectComplexity(lower)
	return Explanation{
		Matches:          matches,
		Complexity:       complexity,
		ComplexityPhrase: phrase,
	}
}

// SuggestApproach picks an execution approach. Heavy complexity takes
// priority over the number of categories.
func SuggestApproach(categoryCount int, complexity models.Complexity) string {
	switch {
	case complexity.IsHeavy():
		return ApproachParallel
	case categoryCount > sequentialThreshold:
		return ApproachSequential
	default:
		return ApproachSingle
	}
}

func detectCategories(lower string) []models.Category {
	detected := []models.Category{}
	for _, category := range models.Categories() {
		if _, ok := firstMatch(lower, CategoryPhrases[category]); ok {
			detected = append(detected, category)
		}
	}
	return detected
}

// detectComplexity returns the first level in table order with a matching
// indicator, along with the phrase that matched.
func detectComplexity(lower string) (models.Complexity, string) {
	for _, indicator := range ComplexityIndicators {
		if phrase, ok := firstMatch(lower, indicator.Phrases); ok {
			return indicator.Level, phrase
		}
	}
	return DefaultComplexity, ""
}

func extractRequirements(lower string) []string {
	requirements := []string{}
	for _, tech := range TechKeywords {
		if strings.Contains(lower, tech) {
			requirements = append(requirements, "Uses "+tech)
		}
	}
	for _, rule := range constraintRules {
		if _, ok := firstMatch(lower, rule.Phrases); ok {
			requirements = append(requirements, rule.Requirement)
		}
	}
	return requirements
}

func firstMatch(lower string, phrases []string) (string, bool) {
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}
	return "", false
}
