package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/decompose"
	"github.com/ShayCichocki/tasksplit/internal/render"
)

func newPlanCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <request...>",
		Short: "Decompose a request into a task plan",
		Long: `Plan classifies a request and decomposes it into task items, one per detected
category, with dependencies, capabilities, token estimates and preferred
handlers. The plan summary groups items into waves that can run in parallel
and reports the critical path.

The run is recorded in history unless --no-history is set.
Use "-" to read the request from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readRequest(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			r, err := e.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			d := decompose.New(e.logger)
			c, items := d.Analyze(request)
			summary, err := d.Summarize(c, items)
			if err != nil {
				return err
			}
			plan := render.Plan{Request: request, Classification: c, Items: items, Summary: summary}

			store, err := e.openHistory()
			if err != nil {
				e.logger.Warn("history unavailable", zap.Error(err))
			} else if store != nil {
				defer store.Close()
				e.record(store, &plan)
			}

			return r.Plan(plan)
		},
	}
}
