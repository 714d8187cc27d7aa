package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewInputField(t *testing.T) {
	field := NewInputField()

	if field == nil {
		t.Fatal("NewInputField returned nil")
	}
	if field.width != 80 {
		t.Errorf("Default width = %d, want 80", field.width)
	}
}

func TestInputField_SetWidth(t *testing.T) {
	field := NewInputField()

	field.SetWidth(120)

	if field.width != 120 {
		t.Errorf("Width after SetWidth(120) = %d, want 120", field.width)
	}
	if field.input.Width != 116 {
		t.Errorf("Input width = %d, want 116", field.input.Width)
	}
}

func TestInputField_Update_Enter(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   string
		submit bool
	}{
		{name: "empty", value: "", submit: false},
		{name: "whitespace only", value: "   ", submit: false},
		{name: "request", value: "fix typo in README", want: "fix typo in README", submit: true},
		{name: "trimmed", value: "  write docs  ", want: "write docs", submit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := NewInputField()
			field.input.SetValue(tt.value)

			_, cmd := field.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if !tt.submit {
				if cmd != nil {
					if _, ok := cmd().(RequestSubmittedMsg); ok {
						t.Error("should not submit blank input")
					}
				}
				return
			}

			if cmd == nil {
				t.Fatal("expected command from enter with text")
			}
			submitted, ok := cmd().(RequestSubmittedMsg)
			if !ok {
				t.Fatalf("expected RequestSubmittedMsg, got %T", cmd())
			}
			if submitted.Request != tt.want {
				t.Errorf("Request = %q, want %q", submitted.Request, tt.want)
			}
		})
	}
}

func TestInputField_Update_EnterClearsInput(t *testing.T) {
	field := NewInputField()
	field.input.SetValue("write docs")

	updated, _ := field.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if updated.Value() != "" {
		t.Errorf("Input should be cleared after enter, got %q", updated.Value())
	}
}

func TestInputField_Update_Typing(t *testing.T) {
	field := NewInputField()

	for _, char := range "hello" {
		field, _ = field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}})
	}

	if field.Value() != "hello" {
		t.Errorf("Input value = %q, want %q", field.Value(), "hello")
	}
}

func TestInputField_View(t *testing.T) {
	field := NewInputField()
	field.SetWidth(80)

	if field.View() == "" {
		t.Error("View should not be empty")
	}
}
