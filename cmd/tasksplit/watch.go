package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/render"
	"github.com/ShayCichocki/tasksplit/internal/watch"
)

func newWatchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-plan a request file whenever it changes",
		Long: `Watch prints the plan for the request in a file, then prints a new plan each
time the file's contents change. Stop with Ctrl+C.

Watched plans are not recorded in history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := e.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			w, err := watch.New(args[0], e.logger)
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			for event := range w.Run(ctx) {
				if event.Err != nil {
					e.logger.Warn("watch error", zap.Error(event.Err))
					continue
				}
				if err := r.Plan(render.Plan{
					Request:        event.Request,
					Classification: event.Classification,
					Items:          event.Items,
					Summary:        event.Summary,
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
