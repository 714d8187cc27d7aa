package decompose

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ShayCichocki/tasksplit/internal/classify"
	"github.com/ShayCichocki/tasksplit/internal/graph"
	"github.com/ShayCichocki/tasksplit/pkg/models"
)

func TestSummarize(t *testing.T) {
	c, items := Analyze("Build a scalable backend, react website, analytics metrics, and docs")

	s, err := Summarize(c, items)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if s.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", s.TotalItems)
	}
	if s.TotalTokens != 25500 {
		t.Errorf("TotalTokens = %d, want 25500", s.TotalTokens)
	}
	wantWaves := [][]string{{"task_1", "task_3"}, {"task_2", "task_4"}}
	if !reflect.DeepEqual(s.Waves, wantWaves) {
		t.Errorf("Waves = %v, want %v", s.Waves, wantWaves)
	}
	if s.Parallelism != 2 {
		t.Errorf("Parallelism = %d, want 2", s.Parallelism)
	}
	if !reflect.DeepEqual(s.CriticalPath, []string{"task_1", "task_2"}) || s.CriticalPathTokens != 16500 {
		t.Errorf("CriticalPath = %v (%d), want [task_1 task_2] (16500)", s.CriticalPath, s.CriticalPathTokens)
	}
	wantUnblocks := map[string][]string{"task_1": {"task_2"}, "task_3": {"task_4"}}
	if !reflect.DeepEqual(s.Unblocks, wantUnblocks) {
		t.Errorf("Unblocks = %v, want %v", s.Unblocks, wantUnblocks)
	}
	if s.Approach != classify.ApproachParallel {
		t.Errorf("Approach = %q, want %q", s.Approach, classify.ApproachParallel)
	}
	if len(s.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one large-plan warning", s.Warnings)
	}
}

func TestSummarize_Empty(t *testing.T) {
	c, items := Analyze("")

	s, err := Summarize(c, items)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.TotalItems != 0 || s.TotalTokens != 0 || s.Parallelism != 0 {
		t.Errorf("unexpected summary for empty request: %+v", s)
	}
	if s.Unblocks != nil {
		t.Errorf("Unblocks = %v, want nil", s.Unblocks)
	}
	if len(s.Warnings) != 1 {
		t.Errorf("Warnings = %v, want no-categories warning", s.Warnings)
	}
}

func TestSummarize_InvalidItems(t *testing.T) {
	items := []models.TaskItem{
		{ID: "task_1", DependsOn: []string{"task_2"}},
		{ID: "task_2", DependsOn: []string{"task_1"}},
	}

	_, err := Summarize(models.Classification{}, items)
	if !errors.Is(err, graph.ErrCycleDetected) {
		t.Errorf("expected ErrCycleDetected, got %v", err)
	}
}
