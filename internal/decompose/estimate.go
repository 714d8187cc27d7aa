package decompose

import (
	"math"

	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// EstimateTokens returns round(base × multiplier) for a category and level.
// Unknown categories use a base of 2000; unknown levels use a multiplier of 1.
func EstimateTokens(category models.Category, complexity models.Complexity) int {
	base, ok := baseTokens[category]
	if !ok {
		base = defaultBaseTokens
	}
	multiplier, ok := complexityMultipliers[complexity]
	if !ok {
		multiplier = 1.0
	}
	return int(math.Round(float64(base) * multiplier))
}
