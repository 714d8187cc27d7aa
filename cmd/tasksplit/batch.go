package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/batch"
	"github.com/ShayCichocki/tasksplit/internal/render"
)

func newBatchCmd(e *env) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Decompose every request in a file",
		Long: `Batch reads requests from a file and decomposes them concurrently.

Files ending in .yaml or .yml hold a list of requests, or a mapping with a
"requests" list. Any other file holds one request per line; blank lines and
lines starting with '#' are skipped. Plans are printed in file order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := batch.LoadFile(args[0])
			if err != nil {
				return err
			}

			r, err := e.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("concurrency") {
				concurrency = e.cfg.Batch.Concurrency
			}

			results, err := batch.Run(cmd.Context(), requests, concurrency, e.logger)
			if err != nil {
				return err
			}

			store, err := e.openHistory()
			if err != nil {
				e.logger.Warn("history unavailable", zap.Error(err))
			} else if store != nil {
				defer store.Close()
			}

			plans := make([]render.Plan, len(results))
			for i, res := range results {
				plans[i] = render.Plan{
					Request:        res.Request,
					Classification: res.Classification,
					Items:          res.Items,
					Summary:        res.Summary,
				}
				if store != nil {
					e.record(store, &plans[i])
				}
			}

			return r.Plans(plans)
		},
	}

	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "Requests decomposed at once (default from config)")
	return cmd
}
