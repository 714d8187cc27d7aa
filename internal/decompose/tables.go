package decompose

import "github.com/ShayCichocki/tasksplit/pkg/models"

// Fallbacks for categories missing from a table.
const (
	defaultDescription = "Execute task"
	defaultCapability  = "general_coding"
	defaultCriterion   = "Task completed successfully"
	defaultBaseTokens  = 2000
)

var descriptions = map[models.Category]string{
	models.CategoryAPIDevelopment:      "Build backend API endpoints",
	models.CategoryWebDevelopment:      "Develop frontend components and UI",
	models.CategoryDataAnalysis:        "Analyze data and generate insights",
	models.CategoryAutomationScript:    "Create automation scripts",
	models.CategoryCloudInfrastructure: "Configure cloud infrastructure",
	models.CategoryDatabaseDesign:      "Design and implement database schema",
	models.CategoryTesting:             "Write and execute tests",
	models.CategoryDocumentation:       "Generate documentation",
	models.CategoryCodeReview:          "Review and improve code quality",
	models.CategoryDebugging:           "Debug and fix issues",
	models.CategoryOptimization:        "Optimize performance",
	models.CategorySecurityAudit:       "Perform security audit",
}

var capabilities = map[models.Category][]string{
	models.CategoryAPIDevelopment:      {"code_generation", "api_design", "database_interaction"},
	models.CategoryWebDevelopment:      {"code_generation", "ui_design", "responsive_layout"},
	models.CategoryDataAnalysis:        {"data_processing", "statistics", "visualization"},
	models.CategoryAutomationScript:    {"scripting", "system_interaction", "scheduling"},
	models.CategoryCloudInfrastructure: {"infrastructure_as_code", "cloud_services", "networking"},
	models.CategoryDatabaseDesign:      {"schema_design", "query_optimization", "migrations"},
	models.CategoryTesting:             {"test_generation", "assertion_writing", "coverage_analysis"},
	models.CategoryDocumentation:       {"technical_writing", "api_documentation", "examples"},
	models.CategoryCodeReview:          {"code_analysis", "best_practices", "refactoring"},
	models.CategoryDebugging:           {"error_analysis", "debugging_strategies", "root_cause_analysis"},
	models.CategoryOptimization:        {"performance_analysis", "profiling", "optimization_techniques"},
	models.CategorySecurityAudit:       {"vulnerability_scanning", "security_best_practices", "threat_modeling"},
}

var baseTokens = map[models.Category]int{
	models.CategoryAPIDevelopment:      2500,
	models.CategoryWebDevelopment:      3000,
	models.CategoryDataAnalysis:        2000,
	models.CategoryAutomationScript:    1500,
	models.CategoryCloudInfrastructure: 2000,
	models.CategoryDatabaseDesign:      1500,
	models.CategoryTesting:             2000,
	models.CategoryDocumentation:       1000,
	models.CategoryCodeReview:          1500,
	models.CategoryDebugging:           2000,
	models.CategoryOptimization:        2500,
	models.CategorySecurityAudit:       3000,
}

var complexityMultipliers = map[models.Complexity]float64{
	models.ComplexitySimple:   0.5,
	models.ComplexityModerate: 1.0,
	models.ComplexityComplex:  2.0,
	models.ComplexityExpert:   3.0,
}

var successCriteria = map[models.Category][]string{
	models.CategoryAPIDevelopment: {
		"All endpoints respond correctly",
		"Proper error handling",
		"Input validation implemented",
	},
	models.CategoryWebDevelopment: {
		"Components render without errors",
		"Responsive on mobile and desktop",
		"Passes accessibility checks",
	},
	models.CategoryDataAnalysis: {
		"Data correctly processed",
		"Insights clearly presented",
		"Visualizations generated",
	},
	models.CategoryAutomationScript: {
		"Script executes without errors",
		"Handles edge cases",
		"Proper logging implemented",
	},
	models.CategoryCloudInfrastructure: {
		"Infrastructure deploys successfully",
		"Security best practices followed",
		"Cost optimized",
	},
	models.CategoryDatabaseDesign: {
		"Schema properly normalized",
		"Indexes optimized",
		"Migrations work correctly",
	},
	models.CategoryTesting: {
		"Tests pass",
		"Good coverage achieved",
		"Edge cases covered",
	},
	models.CategoryDocumentation: {
		"Clear and complete",
		"Examples provided",
		"API documented",
	},
	models.CategoryCodeReview: {
		"Issues identified",
		"Improvements suggested",
		"Best practices verified",
	},
	models.CategoryDebugging: {
		"Issue identified",
		"Fix implemented",
		"Tests added",
	},
	models.CategoryOptimization: {
		"Performance improved",
		"Metrics documented",
		"No functionality broken",
	},
	models.CategorySecurityAudit: {
		"Vulnerabilities identified",
		"Fixes recommended",
		"Security best practices verified",
	},
}

// Describe returns the description template for a category.
func Describe(category models.Category) string {
	if d, ok := descriptions[category]; ok {
		return d
	}
	return defaultDescription
}

// Capabilities returns the capabilities a handler needs for a category.
func Capabilities(category models.Category) []string {
	if caps, ok := capabilities[category]; ok {
		return clone(caps)
	}
	return []string{defaultCapability}
}

// SuccessCriteria returns the completion criteria for a category.
func SuccessCriteria(category models.Category) []string {
	if criteria, ok := successCriteria[category]; ok {
		return clone(criteria)
	}
	return []string{defaultCriterion}
}

// clone copies a table slice so callers never share backing arrays with the tables.
func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
