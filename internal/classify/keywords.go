// Package classify maps free-text requests to categories and a complexity level.
package classify

import "github.com/ShayCichocki/tasksplit/pkg/models"

// CategoryPhrases maps each category to the phrases that detect it.
// A category is detected when any phrase occurs in the lower-cased request.
var CategoryPhrases = map[models.Category][]string{
	models.CategoryAPIDevelopment: {
		"api", "rest", "graphql", "endpoint", "backend", "server",
		"microservice", "webhook", "integration",
	},
	models.CategoryWebDevelopment: {
		"website", "web app", "frontend", "react", "vue", "angular",
		"html", "css", "javascript", "user interface", "ui component", "responsive",
	},
	models.CategoryDataAnalysis: {
		"analyze", "data", "statistics", "visualization", "report",
		"pandas", "numpy", "matplotlib", "insights", "metrics",
	},
	models.CategoryAutomationScript: {
		"automate", "script", "batch", "workflow", "pipeline",
		"cron", "scheduled", "task automation",
	},
	models.CategoryCloudInfrastructure: {
		"aws", "azure", "gcp", "cloud", "infrastructure", "terraform",
		"kubernetes", "docker", "deployment", "ci/cd",
	},
	models.CategoryDatabaseDesign: {
		"database", "sql", "mongodb", "schema", "migration",
		"query", "index", "optimization",
	},
	models.CategoryTesting: {
		"test", "unit test", "integration test", "e2e", "coverage",
		"pytest", "jest", "testing", "qa",
	},
	models.CategoryDocumentation: {
		"document", "readme", "docs", "api documentation",
		"comments", "docstring", "guide", "tutorial",
	},
	models.CategoryCodeReview: {
		"review", "refactor", "improve", "clean", "optimize code",
		"best practices", "code quality",
	},
	models.CategoryDebugging: {
		"debug", "fix", "error", "bug", "issue", "problem",
		"troubleshoot", "diagnose",
	},
	models.CategoryOptimization: {
		"optimize", "performance", "speed up", "efficient",
		"reduce", "improve performance", "bottleneck",
	},
	models.CategorySecurityAudit: {
		"security", "vulnerability", "audit", "penetration",
		"encryption", "authentication", "authorization",
	},
}

// ComplexityIndicator pairs a complexity level with the phrases that select it.
type ComplexityIndicator struct {
	Level   models.Complexity
	Phrases []string
}

// ComplexityIndicators are checked in order; the first level with a matching
// phrase wins even if a later level also matches.
var ComplexityIndicators = []ComplexityIndicator{
	{models.ComplexitySimple, []string{"simple", "basic", "single", "small", "quick", "minor"}},
	{models.ComplexityModerate, []string{"moderate", "standard", "typical", "regular", "common"}},
	{models.ComplexityComplex, []string{
		"complex", "advanced", "large", "system", "architecture",
		"integrate", "full-stack", "enterprise",
	}},
	{models.ComplexityExpert, []string{
		"expert", "critical", "high-performance", "scalable",
		"production", "mission-critical",
	}},
}

// DefaultComplexity is used when no indicator matches.
const DefaultComplexity = models.ComplexityModerate

// TechKeywords each add a "Uses <tech>" requirement when present.
var TechKeywords = []string{
	"python", "javascript", "react", "django", "fastapi",
	"postgresql", "mongodb", "aws", "docker", "kubernetes",
}

// constraintRule adds Requirement when any of Phrases is present.
type constraintRule struct {
	Phrases     []string
	Requirement string
}

var constraintRules = []constraintRule{
	{[]string{"fast", "performance"}, "Performance optimized"},
	{[]string{"secure"}, "Security focused"},
	{[]string{"test"}, "Include tests"},
}

// Approach recommendations.
const (
	ApproachParallel   = "Multi-agent parallel execution with specialized models"
	ApproachSequential = "Sequential pipeline with task-specific agents"
	ApproachSingle     = "Single agent with capability switching"
)

// sequentialThreshold is the category count above which a pipeline is suggested.
const sequentialThreshold = 3
