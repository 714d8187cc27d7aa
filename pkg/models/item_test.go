package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestItemID(t *testing.T) {
	tests := []struct {
		position int
		want     string
	}{
		{1, "task_1"},
		{2, "task_2"},
		{12, "task_12"},
	}

	for _, tt := range tests {
		if got := ItemID(tt.position); got != tt.want {
			t.Errorf("ItemID(%d) = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestEmptyContext(t *testing.T) {
	ctx := EmptyContext()

	lists := map[string][]string{
		"RequiredFiles":      ctx.RequiredFiles,
		"APIEndpoints":       ctx.APIEndpoints,
		"DocumentationLinks": ctx.DocumentationLinks,
		"ExistingCode":       ctx.ExistingCode,
		"Constraints":        ctx.Constraints,
	}
	for name, list := range lists {
		if list == nil {
			t.Errorf("%s should be non-nil", name)
		}
		if len(list) != 0 {
			t.Errorf("%s should be empty, got %v", name, list)
		}
	}
}

func TestTaskItem_JSONFieldNames(t *testing.T) {
	item := TaskItem{
		ID:        "task_1",
		Category:  CategoryTesting,
		DependsOn: []string{},
		Context:   EmptyContext(),
	}

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	for _, key := range []string{
		`"id":"task_1"`,
		`"category":"testing"`,
		`"depends_on":[]`,
		`"required_capabilities"`,
		`"estimated_tokens"`,
		`"preferred_handlers"`,
		`"context_needed"`,
		`"api_endpoints":[]`,
		`"success_criteria"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON %s missing %s", data, key)
		}
	}
}
