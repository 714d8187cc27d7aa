package models

import "testing"

func TestComplexity_Valid(t *testing.T) {
	tests := []struct {
		name       string
		complexity Complexity
		want       bool
	}{
		{"simple is valid", ComplexitySimple, true},
		{"moderate is valid", ComplexityModerate, true},
		{"complex is valid", ComplexityComplex, true},
		{"expert is valid", ComplexityExpert, true},
		{"empty string is invalid", Complexity(""), false},
		{"mixed case is invalid", Complexity("Expert"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.complexity.Valid(); got != tt.want {
				t.Errorf("Complexity(%q).Valid() = %v, want %v", tt.complexity, got, tt.want)
			}
		})
	}
}

func TestComplexity_Ordering(t *testing.T) {
	levels := Complexities()
	for i := 1; i < len(levels); i++ {
		if !levels[i-1].Less(levels[i]) {
			t.Errorf("%s should be less than %s", levels[i-1], levels[i])
		}
		if levels[i].Less(levels[i-1]) {
			t.Errorf("%s should not be less than %s", levels[i], levels[i-1])
		}
	}
	if ComplexityModerate.Less(ComplexityModerate) {
		t.Error("a level should not be less than itself")
	}
}

func TestComplexity_IsHeavy(t *testing.T) {
	tests := []struct {
		complexity Complexity
		want       bool
	}{
		{ComplexitySimple, false},
		{ComplexityModerate, false},
		{ComplexityComplex, true},
		{ComplexityExpert, true},
		{Complexity("unknown"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.complexity), func(t *testing.T) {
			if got := tt.complexity.IsHeavy(); got != tt.want {
				t.Errorf("Complexity(%q).IsHeavy() = %v, want %v", tt.complexity, got, tt.want)
			}
		})
	}
}
