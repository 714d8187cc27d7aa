package decompose

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/pkg/models"
)

func TestNew(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New returned nil")
	}
	if New(zap.NewNop()) == nil {
		t.Fatal("New returned nil")
	}
}

func TestDecompose_Example(t *testing.T) {
	items := Decompose("Build a secure REST API with tests")

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	api, testing_ := items[0], items[1]
	if api.ID != "task_1" || api.Category != models.CategoryAPIDevelopment {
		t.Errorf("item 0 = %s/%s, want task_1/api_development", api.ID, api.Category)
	}
	if testing_.ID != "task_2" || testing_.Category != models.CategoryTesting {
		t.Errorf("item 1 = %s/%s, want task_2/testing", testing_.ID, testing_.Category)
	}
	if len(api.DependsOn) != 0 {
		t.Errorf("api item should have no dependencies, got %v", api.DependsOn)
	}
	if !reflect.DeepEqual(testing_.DependsOn, []string{"task_1"}) {
		t.Errorf("testing item DependsOn = %v, want [task_1]", testing_.DependsOn)
	}
	for _, item := range items {
		if item.Complexity != models.ComplexityModerate {
			t.Errorf("item %s complexity = %v, want moderate", item.ID, item.Complexity)
		}
	}
	if api.EstimatedTokens != 2500 || testing_.EstimatedTokens != 2000 {
		t.Errorf("tokens = %d, %d; want 2500, 2000", api.EstimatedTokens, testing_.EstimatedTokens)
	}
}

func TestAnalyze_ReturnsMatchingClassification(t *testing.T) {
	c, items := Analyze("Build a secure REST API with tests")

	want := []string{"Security focused", "Include tests"}
	if !reflect.DeepEqual(c.Requirements, want) {
		t.Errorf("Requirements = %v, want %v", c.Requirements, want)
	}
	if len(items) != len(c.Categories) {
		t.Fatalf("got %d items for %d categories", len(items), len(c.Categories))
	}
	for i, item := range items {
		if item.Category != c.Categories[i] {
			t.Errorf("item %d category = %v, want %v", i, item.Category, c.Categories[i])
		}
	}
}

func TestDecompose_SingleCategory(t *testing.T) {
	tests := []struct {
		text string
		want models.Category
	}{
		{"Add a graphql endpoint", models.CategoryAPIDevelopment},
		{"Build a landing page with html", models.CategoryWebDevelopment},
		{"Design the table schema", models.CategoryDatabaseDesign},
		{"Measure e2e coverage", models.CategoryTesting},
		{"Write a tutorial", models.CategoryDocumentation},
		{"Run a penetration audit", models.CategorySecurityAudit},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			items := Decompose(tt.text)
			if len(items) != 1 {
				t.Fatalf("Decompose(%q) returned %d items, want 1", tt.text, len(items))
			}
			item := items[0]
			if item.Category != tt.want {
				t.Errorf("Category = %v, want %v", item.Category, tt.want)
			}
			if item.Complexity != models.ComplexityModerate {
				t.Errorf("Complexity = %v, want moderate", item.Complexity)
			}
			if len(item.DependsOn) != 0 {
				t.Errorf("DependsOn = %v, want none", item.DependsOn)
			}
			if item.Description != Describe(tt.want) {
				t.Errorf("Description = %q, want %q", item.Description, Describe(tt.want))
			}
		})
	}
}

func TestDecompose_WebDependsOnAPI(t *testing.T) {
	items := Decompose("Create a REST api and a react frontend")

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Category != models.CategoryAPIDevelopment || items[1].Category != models.CategoryWebDevelopment {
		t.Fatalf("categories = %v, %v", items[0].Category, items[1].Category)
	}
	if !reflect.DeepEqual(items[1].DependsOn, []string{items[0].ID}) {
		t.Errorf("web item DependsOn = %v, want [%s]", items[1].DependsOn, items[0].ID)
	}
}

func TestDecompose_DependenciesOnlyPointBackwards(t *testing.T) {
	requests := []string{
		"Document the endpoint then write a vue page and an endpoint",
		"Write docs and tests for the api, then a website and a cron job",
		"Review, debug and audit the backend",
		"Build a scalable backend, react website, analytics metrics, and docs",
	}

	for _, text := range requests {
		items := Decompose(text)
		for i, item := range items {
			if item.ID != models.ItemID(i+1) {
				t.Errorf("%q: item %d id = %s", text, i, item.ID)
			}
			for _, dep := range item.DependsOn {
				if !isEarlier(dep, items[:i]) {
					t.Errorf("%q: %s depends on %s which is not earlier", text, item.ID, dep)
				}
			}
		}
		if err := Validate(items); err != nil {
			t.Errorf("%q: Validate failed: %v", text, err)
		}
	}
}

func isEarlier(id string, earlier []models.TaskItem) bool {
	for _, e := range earlier {
		if e.ID == id {
			return true
		}
	}
	return false
}

func TestDecompose_MixedDependencies(t *testing.T) {
	items := Decompose("Document the endpoint then write a vue page and an endpoint")

	want := map[string][]string{
		"task_1": {},
		"task_2": {"task_1"},
		"task_3": {"task_2"},
	}
	for _, item := range items {
		if !reflect.DeepEqual(item.DependsOn, want[item.ID]) {
			t.Errorf("%s DependsOn = %v, want %v", item.ID, item.DependsOn, want[item.ID])
		}
	}
}

func TestDecompose_HeavyComplexityPromotesHandlers(t *testing.T) {
	items := Decompose("Build a large system with a react frontend")

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.Complexity != models.ComplexityComplex {
		t.Errorf("Complexity = %v, want complex", item.Complexity)
	}
	want := []string{HandlerClaudeOpus, HandlerGPT4, HandlerGeminiPro}
	if !reflect.DeepEqual(item.Handlers, want) {
		t.Errorf("Handlers = %v, want %v", item.Handlers, want)
	}
	if item.EstimatedTokens != 6000 {
		t.Errorf("EstimatedTokens = %d, want 6000", item.EstimatedTokens)
	}
}

func TestDecompose_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "hello there"} {
		items := Decompose(text)
		if items == nil {
			t.Errorf("Decompose(%q) returned nil, want empty slice", text)
		}
		if len(items) != 0 {
			t.Errorf("Decompose(%q) returned %d items, want 0", text, len(items))
		}
	}
}

func TestDecompose_ContextIsEmptyPlaceholder(t *testing.T) {
	items := Decompose("Add a graphql endpoint")
	if diff := cmp.Diff(models.EmptyContext(), items[0].Context); diff != "" {
		t.Errorf("Context mismatch (-want +got):\n%s", diff)
	}
}

func TestDecompose_Deterministic(t *testing.T) {
	text := "Build a scalable backend, react website, analytics metrics, and docs"
	first := Decompose(text)
	second := Decompose(text)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Decompose is not deterministic (-first +second):\n%s", diff)
	}
}

func TestDecompose_ResultsDoNotShareTables(t *testing.T) {
	items := Decompose("Add a graphql endpoint")
	items[0].Handlers[0] = "mutated"
	items[0].Capabilities[0] = "mutated"
	items[0].SuccessCriteria[0] = "mutated"

	fresh := Decompose("Add a graphql endpoint")
	if fresh[0].Handlers[0] == "mutated" || fresh[0].Capabilities[0] == "mutated" || fresh[0].SuccessCriteria[0] == "mutated" {
		t.Error("mutating a result leaked into the static tables")
	}
}

func TestDecompose_Concurrent(t *testing.T) {
	text := "Write docs and tests for the api, then a website and a cron job"
	want := Decompose(text)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if diff := cmp.Diff(want, Decompose(text)); diff != "" {
				errs <- diff
			}
		}()
	}
	wg.Wait()
	close(errs)

	for diff := range errs {
		t.Errorf("concurrent result differs:\n%s", diff)
	}
}

func TestBuild_UnknownCategoryFallsBack(t *testing.T) {
	items := Build(models.Classification{
		Categories: []models.Category{"quantum_computing"},
		Complexity: models.ComplexityModerate,
	})

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	item := items[0]
	if item.Description != defaultDescription {
		t.Errorf("Description = %q, want %q", item.Description, defaultDescription)
	}
	if !reflect.DeepEqual(item.Capabilities, []string{defaultCapability}) {
		t.Errorf("Capabilities = %v", item.Capabilities)
	}
	if !reflect.DeepEqual(item.SuccessCriteria, []string{defaultCriterion}) {
		t.Errorf("SuccessCriteria = %v", item.SuccessCriteria)
	}
	if item.EstimatedTokens != defaultBaseTokens {
		t.Errorf("EstimatedTokens = %d, want %d", item.EstimatedTokens, defaultBaseTokens)
	}
	if !reflect.DeepEqual(item.Handlers, []string{HandlerGPT4, HandlerClaudeOpus}) {
		t.Errorf("Handlers = %v", item.Handlers)
	}
}

func TestTables_CoverEveryCategory(t *testing.T) {
	for _, category := range models.Categories() {
		if _, ok := descriptions[category]; !ok {
			t.Errorf("descriptions missing %s", category)
		}
		if _, ok := capabilities[category]; !ok {
			t.Errorf("capabilities missing %s", category)
		}
		if _, ok := baseTokens[category]; !ok {
			t.Errorf("baseTokens missing %s", category)
		}
		if _, ok := handlerRankings[category]; !ok {
			t.Errorf("handlerRankings missing %s", category)
		}
		if _, ok := successCriteria[category]; !ok {
			t.Errorf("successCriteria missing %s", category)
		}
		if strings.TrimSpace(Describe(category)) == "" {
			t.Errorf("empty description for %s", category)
		}
	}
	for _, level := range models.Complexities() {
		if _, ok := complexityMultipliers[level]; !ok {
			t.Errorf("complexityMultipliers missing %s", level)
		}
	}
}
