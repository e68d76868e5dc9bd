package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/revu/internal/config"
	"github.com/dshills/revu/internal/llm"
	"github.com/dshills/revu/internal/logger"
	"github.com/dshills/revu/internal/output"
	"github.com/dshills/revu/internal/redact"
	"github.com/dshills/revu/internal/review"
	"github.com/spf13/cobra"
)

var (
	flagDiff       string
	flagOut        string
	flagAgentsPath string
	flagNoRedact   bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Generate an AI review for a unified diff",
	Long:  "Reads a unified diff, reviews it through the configured completion endpoint, and writes a Markdown review document.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitConfigError
			return nil
		}
		logger.Init(cfg.LogLevel)

		diffText, err := readDiff(flagDiff)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitInputError
			return nil
		}
		if strings.TrimSpace(diffText) == "" {
			fmt.Fprintln(os.Stderr, "Error: no changes detected")
			exitCode = ExitInputError
			return nil
		}

		if flagNoRedact || cfg.NoRedact {
			fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
		} else {
			diffText = redact.Secrets(diffText)
		}

		systemText := review.ResolveInstructions(flagAgentsPath)

		client := llm.New(llm.Options{
			BaseURL:     cfg.APIURL,
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.Timeout,
			Retry: llm.RetryPolicy{
				MaxAttempts: cfg.MaxAttempts,
				BaseBackoff: cfg.BaseBackoff,
				MaxBackoff:  cfg.MaxBackoff,
			},
		})

		sp := startProgress(cfg.Model)
		body, err := review.Run(context.Background(), client, diffText, systemText, review.Options{
			MaxChars:  cfg.MaxChunkChars,
			MaxChunks: cfg.MaxChunks,
		})
		stopProgress(sp)

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitPipelineError
			return nil
		}

		if err := output.Write(flagOut, body); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitPipelineError
			return nil
		}

		fmt.Fprintln(os.Stdout, flagOut)
		return nil
	},
}

// readDiff loads the diff from path, or from stdin when path is "-".
func readDiff(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading diff from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading diff: %w", err)
	}
	return string(data), nil
}

func init() {
	reviewCmd.Flags().StringVar(&flagDiff, "diff", "", "Path to a unified diff file (\"-\" for stdin)")
	reviewCmd.Flags().StringVar(&flagOut, "out", output.DefaultPath, "Where to write the Markdown review")
	reviewCmd.Flags().StringVar(&flagAgentsPath, "agents-path", "", "Path to review instructions (default: .github/AGENTS.md, then AGENTS.md)")
	reviewCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	_ = reviewCmd.MarkFlagRequired("diff")
}
