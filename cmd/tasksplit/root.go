package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ShayCichocki/tasksplit/internal/config"
	"github.com/ShayCichocki/tasksplit/internal/logging"
	"github.com/ShayCichocki/tasksplit/internal/render"
	"github.com/ShayCichocki/tasksplit/internal/state"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	format     string
	noColor    bool
	logLevel   string
	noHistory  bool
}

// env is the per-invocation runtime built from configuration and flags.
type env struct {
	flags   rootFlags
	cfg     *config.Config
	logger  *zap.Logger
	cleanup func()
}

func newRootCmd(e *env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tasksplit",
		Short: "Request triage and task decomposition",
		Long: `tasksplit classifies a free-text work request into task categories and a
complexity level, then decomposes it into a dependency-ordered plan of task
items with capabilities, token estimates and preferred handlers.

With no arguments, launches interactive mode where you can type requests and
inspect their plans.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, e)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&e.flags.configPath, "config", "", "Config file (default ~/.config/tasksplit/config.yaml)")
	flags.StringVarP(&e.flags.format, "output", "o", "", "Output format: text, json or yaml")
	flags.BoolVar(&e.flags.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&e.flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&e.flags.noHistory, "no-history", false, "Do not record runs in history")

	rootCmd.AddCommand(newClassifyCmd(e))
	rootCmd.AddCommand(newPlanCmd(e))
	rootCmd.AddCommand(newBatchCmd(e))
	rootCmd.AddCommand(newHistoryCmd(e))
	rootCmd.AddCommand(newWatchCmd(e))
	rootCmd.AddCommand(newInteractiveCmd(e))
	rootCmd.AddCommand(newConfigCmd(e))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (e *env) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if e.flags.configPath != "" {
		cfg, err = config.LoadFromPath(e.flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if e.flags.format != "" {
		cfg.Output.Format = e.flags.format
	}
	if e.flags.noColor {
		cfg.Output.Color = false
	}
	if e.flags.logLevel != "" {
		cfg.Log.Level = e.flags.logLevel
	}
	if e.flags.noHistory {
		cfg.History.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, cleanup, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	e.cfg = cfg
	e.logger = logger.With(zap.String("command", cmd.Name()))
	e.cleanup = cleanup
	return nil
}

func (e *env) close() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// renderer creates a renderer for the configured output format.
func (e *env) renderer(w io.Writer) (*render.Renderer, error) {
	return render.New(w, e.cfg.Output.Format, e.cfg.Output.Color)
}

// openHistory opens the history store, or returns nil when history is disabled.
func (e *env) openHistory() (*state.DB, error) {
	if !e.cfg.History.Enabled {
		return nil, nil
	}
	db, err := state.OpenAndMigrate(e.cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return db, nil
}

// record stores a plan in history and sets its run ID. A nil store is a no-op.
func (e *env) record(store state.RunStore, p *render.Plan) {
	if store == nil {
		return
	}
	id, err := store.SaveRun(p.Request, p.Classification, p.Items)
	if err != nil {
		e.logger.Warn("recording run failed", zap.Error(err))
		return
	}
	p.RunID = id
	e.logger.Debug("run recorded", zap.String("run_id", id))
}
