package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/util"
	"github.com/sevigo/ps-reviewer/internal/wire"
)

var (
	scanOutDir  string
	scanWorkers int
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Review every PowerShell file under a directory.",
	Long: `Walks the directory, reviews each .ps1, .psm1 and .psd1 file and writes
one markdown review per file into the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		ctx := cmd.Context()

		paths, err := collectScripts(root)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", root, err)
		}
		if len(paths) == 0 {
			warnColor.Fprintf(os.Stderr, "No PowerShell files found under %s\n", root)
			return nil
		}

		subs, err := readSubmissions(paths)
		if err != nil {
			return err
		}

		appInstance, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer cleanup()

		if err := os.MkdirAll(scanOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		reports := buildReports(paths, appInstance.Batch(scanWorkers).Run(ctx, subs))
		for _, r := range reports {
			if r.Status == statusRejected {
				errorColor.Fprintf(os.Stderr, "✗ %s: %s\n", r.Path, r.Error)
				continue
			}
			out, err := writeReviewFile(root, scanOutDir, r)
			if err != nil {
				return err
			}
			slog.Debug("review written", "source", r.Path, "output", out)
			successColor.Fprintf(os.Stderr, "✓ %s -> %s\n", r.Path, out)
		}

		if n := countProblems(reports); n > 0 {
			return fmt.Errorf("%d of %d file(s) were not reviewed successfully", n, len(reports))
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	scanCmd.Flags().StringVar(&scanOutDir, "out", "reviews", "Directory the markdown reviews are written to")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 2, "Number of files reviewed concurrently")
	rootCmd.AddCommand(scanCmd)
}

// collectScripts returns the reviewable files under root in walk order.
// Hidden directories are skipped.
func collectScripts(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if core.IsAllowedFile(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

// writeReviewFile stores the review under a name derived from the path
// relative to root, so equal base names in different folders do not clash.
func writeReviewFile(root, outDir string, r fileReport) (string, error) {
	rel, err := filepath.Rel(root, r.Path)
	if err != nil {
		rel = r.Path
	}
	out := filepath.Join(outDir, util.SanitizeFilename(rel)+".review.md")
	if err := os.WriteFile(out, []byte(r.Review), 0o600); err != nil {
		return "", fmt.Errorf("failed to write review for %s: %w", r.Path, err)
	}
	return out, nil
}
