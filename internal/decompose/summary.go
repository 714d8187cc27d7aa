package decompose

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/graph"
	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// largePlanThreshold is the item count above which heavy plans get a warning.
const largePlanThreshold = 3

// Summary describes the execution plan for a decomposition.
type Summary struct {
	// TotalItems is the number of task items.
	TotalItems int `json:"total_items" yaml:"total_items"`
	// TotalTokens is the sum of all item estimates.
	TotalTokens int `json:"total_tokens" yaml:"total_tokens"`
	// Waves groups item IDs into stages that can run in parallel.
	Waves [][]string `json:"waves" yaml:"waves"`
	// Parallelism is the size of the widest wave.
	Parallelism int `json:"parallelism" yaml:"parallelism"`
	// CriticalPath is the most expensive dependency chain.
	CriticalPath []string `json:"critical_path" yaml:"critical_path"`
	// CriticalPathTokens is the token estimate along CriticalPath.
	CriticalPathTokens int `json:"critical_path_tokens" yaml:"critical_path_tokens"`
	// Unblocks maps an item ID to the items waiting on it. Items nothing
	// waits for are omitted.
	Unblocks map[string][]string `json:"unblocks,omitempty" yaml:"unblocks,omitempty"`
	// Approach is the recommended execution approach.
	Approach string `json:"approach" yaml:"approach"`
	// Warnings are human-readable notes about the plan.
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Summarize builds the execution plan for a decomposition.
func Summarize(c models.Classification, items []models.TaskItem) (Summary, error) {
	return defaultDecomposer.Summarize(c, items)
}

// Summarize builds the execution plan for a decomposition.
func (d *Decomposer) Summarize(c models.Classification, items []models.TaskItem) (Summary, error) {
	g := graph.New()
	g.SetLogger(d.logger)
	if err := g.Build(items); err != nil {
		return Summary{}, fmt.Errorf("build dependency graph: %w", err)
	}

	waves, err := g.Waves()
	if err != nil {
		return Summary{}, fmt.Errorf("compute waves: %w", err)
	}
	path, pathTokens, err := g.CriticalPath()
	if err != nil {
		return Summary{}, fmt.Errorf("compute critical path: %w", err)
	}

	s := Summary{
		TotalItems:         g.Size(),
		Waves:              waves,
		CriticalPath:       path,
		CriticalPathTokens: pathTokens,
		Approach:           c.Approach,
		Warnings:           generateWarnings(c, items),
	}
	for _, item := range items {
		s.TotalTokens += item.EstimatedTokens
		if dependents := g.GetDependents(item.ID); dependents != nil {
			if s.Unblocks == nil {
				s.Unblocks = make(map[string][]string)
			}
			s.Unblocks[item.ID] = dependents
		}
	}
	for _, wave := range waves {
		if len(wave) > s.Parallelism {
			s.Parallelism = len(wave)
		}
	}

	d.logger.Debug("summarized plan",
		zap.Int("items", s.TotalItems),
		zap.Int("waves", len(s.Waves)),
		zap.Int("total_tokens", s.TotalTokens),
	)
	return s, nil
}

func generateWarnings(c models.Classification, items []models.TaskItem) []string {
	warnings := []string{}

	if len(items) == 0 {
		warnings = append(warnings, "No task categories detected; try describing the work in more detail")
	}
	if c.Complexity.IsHeavy() && len(items) > largePlanThreshold {
		warnings = append(warnings,
			fmt.Sprintf("%s request spans %d categories; consider splitting it", c.Complexity, len(items)))
	}
	return warnings
}
