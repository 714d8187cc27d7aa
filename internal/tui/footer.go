package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Footer renders the status bar and keyboard hints.
type Footer struct {
	message string
	success bool
	plans   int
	width   int

	successStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	hintStyle      lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewFooter creates a new Footer instance.
func NewFooter() *Footer {
	return &Footer{
		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")).
			Bold(true),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		separatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
	}
}

// SetMessage sets the status message.
func (f *Footer) SetMessage(message string, success bool) {
	f.message = message
	f.success = success
}

// SetPlanCount sets the number of plans produced this session.
func (f *Footer) SetPlanCount(n int) {
	f.plans = n
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// View renders the footer.
func (f *Footer) View() string {
	sep := f.separatorStyle.Render(" │ ")

	status := f.hintStyle.Render(fmt.Sprintf("plans: %d", f.plans))
	if f.message != "" {
		style := f.successStyle
		if !f.success {
			style = f.errorStyle
		}
		status = style.Render(f.message) + sep + status
	}

	hints := f.hintStyle.Render("enter: decompose  ↑/↓ pgup/pgdn: scroll  esc: quit")
	return lipgloss.NewStyle().Width(f.width).Render(status + sep + hints)
}

// Height returns the footer height in lines.
func (f *Footer) Height() int {
	return 1
}
