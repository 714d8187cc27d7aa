package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tasksplit/internal/config"
)

func newConfigCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Manage configuration",
		Long: `View or modify tasksplit configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/tasksplit/config.yaml
Project-specific overrides can be placed in .tasksplit.yaml`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg := e.cfg

			switch len(args) {
			case 0:
				for _, key := range config.Keys() {
					value, err := cfg.Get(key)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s: %s\n", key, value)
				}
				return nil
			case 1:
				value, err := cfg.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, value)
				return nil
			default:
				// Only the stored file is rewritten; flag, env and project overrides stay out.
				stored, err := loadStoredConfig(e)
				if err != nil {
					return err
				}
				if err := stored.Set(args[0], args[1]); err != nil {
					return err
				}
				if err := saveStoredConfig(e, stored); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Fprintf(out, "Set %s = %s\n", args[0], args[1])
				return nil
			}
		},
	}
}

// storedConfigPath is the file `config <key> <value>` rewrites.
func storedConfigPath(e *env) string {
	if e.flags.configPath != "" {
		return e.flags.configPath
	}
	return config.GetUserConfigPath()
}

func loadStoredConfig(e *env) (*config.Config, error) {
	return config.LoadStored(storedConfigPath(e))
}

func saveStoredConfig(e *env, cfg *config.Config) error {
	if e.flags.configPath != "" {
		return config.SaveToPath(cfg, e.flags.configPath)
	}
	return config.Save(cfg)
}
