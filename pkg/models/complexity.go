package models

// Complexity is the difficulty tier shared by every item of one decomposition.
// Levels are totally ordered: simple < moderate < complex < expert.
type Complexity string

const (
	// ComplexitySimple is single-file, straightforward work.
	ComplexitySimple Complexity = "simple"
	// ComplexityModerate is multi-file work with some integration.
	ComplexityModerate Complexity = "moderate"
	// ComplexityComplex is system-wide work involving architectural decisions.
	ComplexityComplex Complexity = "complex"
	// ComplexityExpert is work on critical systems requiring deep expertise.
	ComplexityExpert Complexity = "expert"
)

// Complexities returns every level in ascending order.
func Complexities() []Complexity {
	return []Complexity{ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityExpert}
}

// Valid returns true if the complexity is a known value.
func (c Complexity) Valid() bool {
	return c.Rank() >= 0
}

// Rank returns the position of the level in ascending order, or -1 if unknown.
func (c Complexity) Rank() int {
	switch c {
	case ComplexitySimple:
		return 0
	case ComplexityModerate:
		return 1
	case ComplexityComplex:
		return 2
	case ComplexityExpert:
		return 3
	default:
		return -1
	}
}

// Less reports whether c is a lower level than other.
func (c Complexity) Less(other Complexity) bool {
	return c.Rank() < other.Rank()
}

// IsHeavy reports whether the level calls for the most capable handlers.
func (c Complexity) IsHeavy() bool {
	return c == ComplexityComplex || c == ComplexityExpert
}

// String implements fmt.Stringer.
func (c Complexity) String() string {
	return string(c)
}
