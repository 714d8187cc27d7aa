// Command tasksplit classifies free-text work requests and decomposes them
// into dependency-ordered task plans.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	e := &env{}
	if err := execute(newRootCmd(e), e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command tree and closes the logger whether or not the
// command failed.
func execute(cmd *cobra.Command, e *env) error {
	defer e.close()
	return cmd.Execute()
}
