// Package graph provides the dependency graph behind an execution plan.
package graph

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/pkg/models"
)

// ErrCycleDetected indicates a circular dependency was found among the items.
var ErrCycleDetected = errors.New("circular dependency detected")

// ErrUnknownDependency indicates an item depends on an ID not in the graph.
var ErrUnknownDependency = errors.New("unknown dependency")

// DependencyGraph is a directed acyclic graph of task items.
// Edges point from an item to the items it waits for.
type DependencyGraph struct {
	mu sync.RWMutex
	// order keeps item IDs in insertion order so traversals are deterministic.
	order []string
	// nodes maps item ID to the item itself.
	nodes map[string]models.TaskItem
	// edges maps item ID to IDs of items it depends on.
	edges  map[string][]string
	logger *zap.Logger
}

// New creates a new empty dependency graph.
func New() *DependencyGraph {
	return &DependencyGraph{
		nodes:  make(map[string]models.TaskItem),
		edges:  make(map[string][]string),
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger used for debug tracing.
func (g *DependencyGraph) SetLogger(logger *zap.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Build constructs the graph from items.
// Returns an error if a cycle is detected or a dependency references an unknown item.
func (g *DependencyGraph) Build(items []models.TaskItem) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.logger.Debug("building graph", zap.Int("items", len(items)))

	// First pass: register all items as nodes.
	for _, item := range items {
		if _, exists := g.nodes[item.ID]; !exists {
			g.order = append(g.order, item.ID)
		}
		g.nodes[item.ID] = item
		g.edges[item.ID] = nil
	}

	// Second pass: build edges from DependsOn fields.
	for _, item := range items {
		for _, depID := range item.DependsOn {
			if _, exists := g.nodes[depID]; !exists {
				return fmt.Errorf("item %s depends on %s: %w", item.ID, depID, ErrUnknownDependency)
			}
			g.edges[item.ID] = append(g.edges[item.ID], depID)
		}
	}

	if g.hasCycleLocked() {
		return ErrCycleDetected
	}

	g.logger.Debug("graph built", zap.Int("nodes", len(g.nodes)))
	return nil
}

// hasCycleLocked reports a circular dependency using a colouring DFS.
// The caller must hold the lock.
func (g *DependencyGraph) hasCycleLocked() bool {
	// 0 = unvisited, 1 = in progress, 2 = done.
	colors := make(map[string]int, len(g.nodes))

	var visit func(id string) bool
	visit = func(id string) bool {
		colors[id] = 1
		for _, depID := range g.edges[id] {
			switch colors[depID] {
			case 1:
				return true
			case 0:
				if visit(depID) {
					return true
				}
			}
		}
		colors[id] = 2
		return false
	}

	for _, id := range g.order {
		if colors[id] == 0 && visit(id) {
			return true
		}
	}
	return false
}

// TopologicalSort returns item IDs so that every dependency precedes its dependents.
// Ties keep insertion order.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.hasCycleLocked() {
		return nil, ErrCycleDetected
	}

	visited := make(map[string]bool, len(g.nodes))
	result := make([]string, 0, len(g.nodes))

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, depID := range g.edges[id] {
			visit(depID)
		}
		result = append(result, id)
	}

	for _, id := range g.order {
		visit(id)
	}
	return result, nil
}

// Waves groups item IDs into stages. Every item's dependencies lie in earlier
// waves, so the items of one wave can run in parallel.
func (g *DependencyGraph) Waves() ([][]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.hasCycleLocked() {
		return nil, ErrCycleDetected
	}

	waves := [][]string{}
	done := make(map[string]bool, len(g.nodes))
	remaining := append([]string(nil), g.order...)

	for len(remaining) > 0 {
		var wave, next []string
		for _, id := range remaining {
			ready := true
			for _, depID := range g.edges[id] {
				if !done[depID] {
					ready = false
					break
				}
			}
			if ready {
				wave = append(wave, id)
			} else {
				next = append(next, id)
			}
		}
		// Mark after the scan so an item never shares a wave with its dependency.
		for _, id := range wave {
			done[id] = true
		}
		waves = append(waves, wave)
		remaining = next
	}

	g.logger.Debug("computed waves", zap.Int("waves", len(waves)))
	return waves, nil
}

// CriticalPath returns the dependency chain with the largest total token
// estimate, ordered from first to last, along with that total.
func (g *DependencyGraph) CriticalPath() ([]string, int, error) {
	sorted, err := g.TopologicalSort()
	if err != nil {
		return nil, 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	cost := make(map[string]int, len(sorted))
	prev := make(map[string]string, len(sorted))
	bestID, bestCost := "", 0

	for _, id := range sorted {
		cost[id] = g.nodes[id].EstimatedTokens
		for _, depID := range g.edges[id] {
			if c := cost[depID] + g.nodes[id].EstimatedTokens; c > cost[id] {
				cost[id] = c
				prev[id] = depID
			}
		}
		if bestID == "" || cost[id] > bestCost {
			bestID, bestCost = id, cost[id]
		}
	}

	if bestID == "" {
		return []string{}, 0, nil
	}

	var path []string
	for id := bestID; id != ""; id = prev[id] {
		path = append([]string{id}, path...)
	}
	return path, bestCost, nil
}

// Size returns the number of items in the graph.
func (g *DependencyGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// GetDependents returns the IDs of items that depend on id, in insertion order.
// It returns nil when nothing waits for id.
func (g *DependencyGraph) GetDependents(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var dependents []string
	for _, candidate := range g.order {
		for _, depID := range g.edges[candidate] {
			if depID == id {
				dependents = append(dependents, candidate)
				break
			}
		}
	}
	return dependents
}
