package graph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ShayCichocki/tasksplit/pkg/models"
)

func item(id string, tokens int, deps ...string) models.TaskItem {
	return models.TaskItem{ID: id, EstimatedTokens: tokens, DependsOn: deps}
}

func buildGraph(t *testing.T, items ...models.TaskItem) *DependencyGraph {
	t.Helper()
	g := New()
	if err := g.Build(items); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestNew(t *testing.T) {
	g := New()
	if g == nil {
		t.Fatal("expected non-nil graph")
	}
	if g.Size() != 0 {
		t.Errorf("expected empty graph, got size %d", g.Size())
	}
}

func TestBuildWithDependencies(t *testing.T) {
	g := buildGraph(t,
		item("task_1", 100),
		item("task_2", 100, "task_1"),
		item("task_3", 100, "task_1", "task_2"),
	)

	if g.Size() != 3 {
		t.Errorf("expected size 3, got %d", g.Size())
	}
	if dependents := g.GetDependents("task_1"); !reflect.DeepEqual(dependents, []string{"task_2", "task_3"}) {
		t.Errorf("GetDependents(task_1) = %v", dependents)
	}
	if dependents := g.GetDependents("task_3"); dependents != nil {
		t.Errorf("GetDependents(task_3) = %v, want nil", dependents)
	}
	if dependents := g.GetDependents("task_9"); dependents != nil {
		t.Errorf("GetDependents(task_9) = %v, want nil", dependents)
	}
}

func TestBuildUnknownDependency(t *testing.T) {
	g := New()
	err := g.Build([]models.TaskItem{item("task_1", 1, "task_7")})
	if !errors.Is(err, ErrUnknownDependency) {
		t.Errorf("expected ErrUnknownDependency, got %v", err)
	}
}

func TestBuildCycle(t *testing.T) {
	tests := []struct {
		name  string
		items []models.TaskItem
	}{
		{"self", []models.TaskItem{item("a", 1, "a")}},
		{"direct", []models.TaskItem{item("a", 1, "b"), item("b", 1, "a")}},
		{"indirect", []models.TaskItem{item("a", 1, "c"), item("b", 1, "a"), item("c", 1, "b")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			if err := g.Build(tt.items); !errors.Is(err, ErrCycleDetected) {
				t.Errorf("expected ErrCycleDetected, got %v", err)
			}
			if _, err := g.TopologicalSort(); !errors.Is(err, ErrCycleDetected) {
				t.Errorf("TopologicalSort() error = %v, want ErrCycleDetected", err)
			}
			if _, err := g.Waves(); !errors.Is(err, ErrCycleDetected) {
				t.Errorf("Waves() error = %v, want ErrCycleDetected", err)
			}
		})
	}
}

func TestTopologicalSort(t *testing.T) {
	g := buildGraph(t,
		item("task_1", 1),
		item("task_2", 1),
		item("task_3", 1, "task_2"),
		item("task_4", 1, "task_3", "task_1"),
	)

	got, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("TopologicalSort failed: %v", err)
	}
	want := []string{"task_1", "task_2", "task_3", "task_4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopologicalSort() = %v, want %v", got, want)
	}
}

func TestWaves(t *testing.T) {
	tests := []struct {
		name  string
		items []models.TaskItem
		want  [][]string
	}{
		{"empty", nil, [][]string{}},
		{"independent", []models.TaskItem{item("task_1", 1), item("task_2", 1)}, [][]string{{"task_1", "task_2"}}},
		{
			"chain",
			[]models.TaskItem{item("task_1", 1), item("task_2", 1, "task_1"), item("task_3", 1, "task_2")},
			[][]string{{"task_1"}, {"task_2"}, {"task_3"}},
		},
		{
			"diamond",
			[]models.TaskItem{
				item("task_1", 1),
				item("task_2", 1, "task_1"),
				item("task_3", 1, "task_1"),
				item("task_4", 1, "task_2", "task_3"),
			},
			[][]string{{"task_1"}, {"task_2", "task_3"}, {"task_4"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.items...)
			got, err := g.Waves()
			if err != nil {
				t.Fatalf("Waves failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Waves() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCriticalPath(t *testing.T) {
	g := buildGraph(t,
		item("task_1", 2500),
		item("task_2", 3000, "task_1"),
		item("task_3", 500),
		item("task_4", 2000, "task_3"),
	)

	path, total, err := g.CriticalPath()
	if err != nil {
		t.Fatalf("CriticalPath failed: %v", err)
	}
	if want := []string{"task_1", "task_2"}; !reflect.DeepEqual(path, want) {
		t.Errorf("CriticalPath() path = %v, want %v", path, want)
	}
	if total != 5500 {
		t.Errorf("CriticalPath() total = %d, want 5500", total)
	}
}

func TestCriticalPath_Empty(t *testing.T) {
	path, total, err := New().CriticalPath()
	if err != nil {
		t.Fatalf("CriticalPath failed: %v", err)
	}
	if len(path) != 0 || total != 0 {
		t.Errorf("CriticalPath() = %v, %d; want empty, 0", path, total)
	}
}
