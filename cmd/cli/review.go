package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/ps-reviewer/internal/wire"
)

var (
	verbose       bool
	reviewWorkers int
	reviewOutput  string
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [file...]",
	Short: "Review one or more PowerShell files",
	Long: `Review one or more PowerShell files with the configured model.

Each file goes through the same checks as a web upload: only .ps1, .psm1
and .psd1 files that decode as UTF-8 are reviewed.

Examples:
  ps-reviewer-cli review deploy.ps1
  ps-reviewer-cli review --workers 4 --output json scripts/*.ps1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with timing information")
	reviewCmd.Flags().IntVarP(&reviewWorkers, "workers", "w", 2, "Number of files reviewed concurrently")
	reviewCmd.Flags().StringVarP(&reviewOutput, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	start := time.Now()

	subs, err := readSubmissions(args)
	if err != nil {
		return err
	}

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w\n\nTip: Check your .env file and environment variables", err)
	}
	defer cleanup()

	if verbose {
		dimColor.Fprintf(os.Stderr, "Reviewing %d file(s) with %d worker(s)\n", len(subs), reviewWorkers)
	}

	results := appInstance.Batch(reviewWorkers).Run(ctx, subs)
	reports := buildReports(args, results)

	if err := writeReports(os.Stdout, reviewOutput, reports); err != nil {
		return err
	}

	if verbose {
		dimColor.Fprintf(os.Stderr, "\n⏱️  Total time: %s\n", time.Since(start).Round(time.Millisecond))
	}

	if n := countProblems(reports); n > 0 {
		return fmt.Errorf("%d of %d file(s) were not reviewed successfully", n, len(reports))
	}
	return nil
}
