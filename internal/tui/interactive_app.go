package tui

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/config"
	"github.com/ShayCichocki/tasksplit/internal/decompose"
	"github.com/ShayCichocki/tasksplit/internal/render"
)

// PlanReadyMsg carries a finished decomposition back to the app.
type PlanReadyMsg struct {
	Plan render.Plan
	Err  error
}

// Recorder stores a plan and returns its run ID.
type Recorder func(render.Plan) (string, error)

// InteractiveApp is the main model for interactive mode.
type InteractiveApp struct {
	header     *Header
	footer     *Footer
	inputField *InputField
	viewport   viewport.Model
	decomposer *decompose.Decomposer
	recorder   Recorder
	logger     *zap.Logger

	width    int
	height   int
	plans    int
	quitting bool
}

// NewInteractiveApp creates a new InteractiveApp.
func NewInteractiveApp(logger *zap.Logger) *InteractiveApp {
	if logger == nil {
		logger = zap.NewNop()
	}

	vp := viewport.New(80, 10)
	vp.SetContent(lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Render("No plan yet. Type a request below."))

	return &InteractiveApp{
		header:     NewHeader(),
		footer:     NewFooter(),
		inputField: NewInputField(),
		viewport:   vp,
		decomposer: decompose.New(logger),
		logger:     logger,
	}
}

// SetRecorder sets the callback that stores each plan.
func (a *InteractiveApp) SetRecorder(r Recorder) {
	a.recorder = r
}

// Init implements tea.Model.
func (a *InteractiveApp) Init() tea.Cmd {
	return a.inputField.Focus()
}

// Update implements tea.Model.
func (a *InteractiveApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			a.quitting = true
			return a, tea.Quit

		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			return a, cmd

		default:
			var cmd tea.Cmd
			a.inputField, cmd = a.inputField.Update(msg)
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()
		return a, nil

	case RequestSubmittedMsg:
		a.footer.SetMessage("decomposing...", true)
		return a, a.decompose(msg.Request)

	case PlanReadyMsg:
		if msg.Err != nil {
			a.footer.SetMessage(msg.Err.Error(), false)
			return a, nil
		}
		a.plans++
		a.footer.SetPlanCount(a.plans)
		a.footer.SetMessage(fmt.Sprintf("%d items, %d tokens",
			msg.Plan.Summary.TotalItems, msg.Plan.Summary.TotalTokens), true)
		a.viewport.SetContent(planText(msg.Plan))
		a.viewport.GotoTop()
		return a, nil
	}

	var cmd tea.Cmd
	a.inputField, cmd = a.inputField.Update(msg)
	return a, cmd
}

// decompose builds the plan for a request off the update loop.
func (a *InteractiveApp) decompose(request string) tea.Cmd {
	d := a.decomposer
	recorder := a.recorder
	logger := a.logger

	return func() tea.Msg {
		c, items := d.Analyze(request)
		summary, err := d.Summarize(c, items)
		if err != nil {
			return PlanReadyMsg{Err: err}
		}

		plan := render.Plan{Request: request, Classification: c, Items: items, Summary: summary}
		if recorder != nil {
			id, err := recorder(plan)
			if err != nil {
				// The plan is still shown when history is unavailable.
				logger.Warn("recording run failed", zap.Error(err))
			}
			plan.RunID = id
		}
		return PlanReadyMsg{Plan: plan}
	}
}

// updateSizes updates the sizes of child components based on terminal size.
func (a *InteractiveApp) updateSizes() {
	inputHeight := 3 // border + content
	bodyHeight := a.height - a.header.Height() - a.footer.Height() - inputHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	a.header.SetWidth(a.width)
	a.footer.SetWidth(a.width)
	a.inputField.SetWidth(a.width)
	a.viewport.Width = a.width
	a.viewport.Height = bodyHeight
}

// View implements tea.Model.
func (a *InteractiveApp) View() string {
	if a.quitting {
		return "Goodbye!\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.header.View(),
		a.viewport.View(),
		a.inputField.View(),
		a.footer.View(),
	)
}

// NewInteractiveProgram creates a new Bubbletea program for interactive mode.
func NewInteractiveProgram(logger *zap.Logger, recorder Recorder) (*tea.Program, *InteractiveApp) {
	app := NewInteractiveApp(logger)
	app.SetRecorder(recorder)
	p := tea.NewProgram(app, tea.WithAltScreen())
	return p, app
}

func planText(p render.Plan) string {
	var buf bytes.Buffer
	r, err := render.New(&buf, config.FormatText, false)
	if err != nil {
		return err.Error()
	}
	if err := r.Plan(p); err != nil {
		return err.Error()
	}
	return buf.String()
}
