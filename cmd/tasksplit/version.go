package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/tasksplit/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tasksplit version %s\n", version.Get())
		},
	}
}
