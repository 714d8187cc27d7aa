package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tasksplit/internal/decompose"
	"github.com/ShayCichocki/tasksplit/internal/render"
	"github.com/ShayCichocki/tasksplit/internal/state"
)

// errHistoryDisabled is returned by history subcommands when history is off.
var errHistoryDisabled = errors.New("history is disabled (set history.enabled to true)")

func newHistoryCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded runs",
		Long: `History lists, shows and deletes recorded decompositions.

Runs are stored in ~/.local/share/tasksplit/history.db by default; set
history.path to move the database.`,
	}

	cmd.AddCommand(newHistoryListCmd(e))
	cmd.AddCommand(newHistoryShowCmd(e))
	cmd.AddCommand(newHistoryDeleteCmd(e))
	cmd.AddCommand(newHistoryPurgeCmd(e))
	cmd.AddCommand(newHistoryStatsCmd(e))
	return cmd
}

// withHistory opens the store for the duration of fn.
func withHistory(e *env, fn func(store state.HistoryStore) error) error {
	db, err := e.openHistory()
	if err != nil {
		return err
	}
	if db == nil {
		return errHistoryDisabled
	}
	defer db.Close()
	return fn(db)
}

func newHistoryListCmd(e *env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := e.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return withHistory(e, func(store state.HistoryStore) error {
				runs, err := store.ListRuns(limit)
				if err != nil {
					return err
				}
				return r.Runs(runs)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 for all)")
	return cmd
}

func newHistoryShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the plan recorded for a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := e.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return withHistory(e, func(store state.HistoryStore) error {
				run, err := store.GetRun(args[0])
				if err != nil {
					return err
				}
				if err := decompose.Validate(run.Items); err != nil {
					return fmt.Errorf("run %s: %w", run.ID, err)
				}
				summary, err := decompose.Summarize(run.Classification, run.Items)
				if err != nil {
					return err
				}
				return r.Plan(render.Plan{
					RunID:          run.ID,
					Request:        run.Request,
					Classification: run.Classification,
					Items:          run.Items,
					Summary:        summary,
				})
			})
		},
	}
}

func newHistoryDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(e, func(store state.HistoryStore) error {
				if err := store.DeleteRun(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newHistoryPurgeCmd(e *env) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete runs older than a duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(e, func(store state.HistoryStore) error {
				n, err := store.PurgeRuns(olderThan)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Purged %d runs\n", n)
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Age threshold")
	return cmd
}

func newHistoryStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show recorded items per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := e.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return withHistory(e, func(store state.HistoryStore) error {
				stats, err := store.CategoryStats()
				if err != nil {
					return err
				}
				return r.CategoryStats(stats)
			})
		},
	}
}
