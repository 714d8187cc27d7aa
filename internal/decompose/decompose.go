// Package decompose turns a free-text request into ordered task items.
//
// Decomposition is a pure function of the request text: it reads only the
// compiled-in tables, performs no I/O and is safe for concurrent use.
package decompose

import (
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/classify"
	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// Decomposer breaks requests into task items.
// The zero value is not usable; use New.
type Decomposer struct {
	logger *zap.Logger
}

// New creates a Decomposer. A nil logger disables tracing.
func New(logger *zap.Logger) *Decomposer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decomposer{logger: logger}
}

var defaultDecomposer = New(nil)

// Decompose classifies text and returns one item per detected category.
func Decompose(text string) []models.TaskItem {
	return defaultDecomposer.Decompose(text)
}

// Analyze returns the classification together with the items built from it.
func Analyze(text string) (models.Classification, []models.TaskItem) {
	return defaultDecomposer.Analyze(text)
}

// Decompose classifies text and returns one item per detected category,
// in category declaration order. No categories yields an empty slice.
func (d *Decomposer) Decompose(text string) []models.TaskItem {
	_, items := d.Analyze(text)
	return items
}

// Analyze returns the classification together with the items built from it.
func (d *Decomposer) Analyze(text string) (models.Classification, []models.TaskItem) {
	classification := classify.Classify(text)
	items := Build(classification)

	d.logger.Debug("decomposed request",
		zap.Int("chars", len(text)),
		zap.Stringer("complexity", classification.Complexity),
		zap.Int("items", len(items)),
	)
	return classification, items
}

// Build creates the items for an existing classification.
func Build(c models.Classification) []models.TaskItem {
	items := make([]models.TaskItem, 0, len(c.Categories))
	for i, category := range c.Categories {
		items = append(items, models.TaskItem{
			ID:              models.ItemID(i + 1),
			Description:     Describe(category),
			Category:        category,
			Complexity:      c.Complexity,
			DependsOn:       Dependencies(i, c.Categories),
			Capabilities:    Capabilities(category),
			EstimatedTokens: EstimateTokens(category, c.Complexity),
			Handlers:        SelectHandlers(category, c.Complexity),
			Context:         models.EmptyContext(),
			SuccessCriteria: SuccessCriteria(category),
		})
	}
	return items
}
