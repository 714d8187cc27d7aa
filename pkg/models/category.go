package models

// Category is the domain of work a task item belongs to.
type Category string

const (
	// CategoryAPIDevelopment covers backend services and endpoints.
	CategoryAPIDevelopment Category = "api_development"
	// CategoryWebDevelopment covers frontend and UI work.
	CategoryWebDevelopment Category = "web_development"
	// CategoryDataAnalysis covers data processing, statistics and reporting.
	CategoryDataAnalysis Category = "data_analysis"
	// CategoryAutomationScript covers scripts, pipelines and scheduled jobs.
	CategoryAutomationScript Category = "automation_script"
	// CategoryCloudInfrastructure covers cloud resources and deployment.
	CategoryCloudInfrastructure Category = "cloud_infrastructure"
	// CategoryDatabaseDesign covers schemas, queries and migrations.
	CategoryDatabaseDesign Category = "database_design"
	// CategoryTesting covers writing and running tests.
	CategoryTesting Category = "testing"
	// CategoryDocumentation covers guides, READMEs and API docs.
	CategoryDocumentation Category = "documentation"
	// CategoryCodeReview covers review and refactoring.
	CategoryCodeReview Category = "code_review"
	// CategoryDebugging covers diagnosing and fixing defects.
	CategoryDebugging Category = "debugging"
	// CategoryOptimization covers performance work.
	CategoryOptimization Category = "optimization"
	// CategorySecurityAudit covers vulnerability review and hardening.
	CategorySecurityAudit Category = "security_audit"
)

// categoryOrder is the declaration order used for detection and ID assignment.
// API development precedes web development so a frontend item can depend on
// the API item produced in the same call.
var categoryOrder = []Category{
	CategoryAPIDevelopment,
	CategoryWebDevelopment,
	CategoryDataAnalysis,
	CategoryAutomationScript,
	CategoryCloudInfrastructure,
	CategoryDatabaseDesign,
	CategoryTesting,
	CategoryDocumentation,
	CategoryCodeReview,
	CategoryDebugging,
	CategoryOptimization,
	CategorySecurityAudit,
}

// Categories returns every category in declaration order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	switch c {
	case CategoryAPIDevelopment, CategoryWebDevelopment, CategoryDataAnalysis,
		CategoryAutomationScript, CategoryCloudInfrastructure, CategoryDatabaseDesign,
		CategoryTesting, CategoryDocumentation, CategoryCodeReview, CategoryDebugging,
		CategoryOptimization, CategorySecurityAudit:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
