package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess       = 0
	ExitConfigError   = 1
	ExitInputError    = 2
	ExitPipelineError = 3
)

var rootCmd = &cobra.Command{
	Use:   "revu",
	Short: "AI PR review generator",
	Long:  "Revu turns a unified diff into an AI-generated Markdown code review, chunking large diffs at hunk boundaries and retrying transient endpoint failures.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitConfigError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print revu version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "revu version %s\n", version)
	},
}
