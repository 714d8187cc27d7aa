// Package tui provides the interactive terminal interface for tasksplit.
//
// The user types a request into the input field and presses Enter. The
// request is decomposed and the resulting plan is shown in a scrollable
// viewport above the input. Each submitted plan replaces the previous one;
// the footer shows the session count and key hints.
//
// Usage:
//
//	app := tui.NewInteractiveApp(logger)
//	app.SetRecorder(func(p render.Plan) (string, error) {
//	    return store.SaveRun(p.Request, p.Classification, p.Items)
//	})
//	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
//
// Esc or Ctrl+C quits.
package tui
