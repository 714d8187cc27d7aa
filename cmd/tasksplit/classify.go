package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/classify"
)

func newClassifyCmd(e *env) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "classify <request...>",
		Short: "Classify a request without decomposing it",
		Long: `Classify detects the task categories, complexity level, requirements and
suggested approach for a request. Use "-" to read the request from stdin.

With --explain, shows the phrase that triggered each detection instead.`,
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

			if explain {
				return r.Explanation(classify.Explain(request))
			}

			c := classify.Classify(request)
			e.logger.Debug("classified",
				zap.Int("categories", len(c.Categories)),
				zap.Stringer("complexity", c.Complexity),
			)
			return r.Classification(c)
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Show which phrases matched")
	return cmd
}
