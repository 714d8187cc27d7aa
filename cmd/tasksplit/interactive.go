package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/render"
	"github.com/ShayCichocki/tasksplit/internal/tui"
)

func newInteractiveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Type requests and inspect their plans in a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, e)
		},
	}
}

// runInteractive runs the TUI until the user quits.
func runInteractive(cmd *cobra.Command, e *env) error {
	var recorder tui.Recorder

	store, err := e.openHistory()
	if err != nil {
		e.logger.Warn("history unavailable", zap.Error(err))
	} else if store != nil {
		defer store.Close()
		recorder = func(p render.Plan) (string, error) {
			return store.SaveRun(p.Request, p.Classification, p.Items)
		}
	}

	program, _ := tui.NewInteractiveProgram(e.logger, recorder)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive mode: %w", err)
	}
	return nil
}
