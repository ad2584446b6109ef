package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/review"
)

const (
	statusOK       = "ok"
	statusFailed   = "failed"
	statusRejected = "rejected"
)

// fileReport is the machine-readable form of one reviewed file.
type fileReport struct {
	Path     string           `json:"path" yaml:"path"`
	Filename string           `json:"filename,omitempty" yaml:"filename,omitempty"`
	Status   string           `json:"status" yaml:"status"`
	Failure  core.FailureKind `json:"failure,omitempty" yaml:"failure,omitempty"`
	Review   string           `json:"review,omitempty" yaml:"review,omitempty"`
	Error    string           `json:"error,omitempty" yaml:"error,omitempty"`
}

func buildReports(paths []string, results []review.BatchResult) []fileReport {
	reports := make([]fileReport, 0, len(results))
	for i, res := range results {
		rep := fileReport{Path: paths[i]}
		switch {
		case res.Err != nil:
			rep.Status = statusRejected
			rep.Error = res.Err.Error()
		case res.Outcome.Result.IsError():
			rep.Status = statusFailed
			rep.Filename = res.Outcome.Filename
			rep.Failure = res.Outcome.Result.Failure.Kind
			rep.Review = res.Outcome.Result.Text
		default:
			rep.Status = statusOK
			rep.Filename = res.Outcome.Filename
			rep.Review = res.Outcome.Result.Text
		}
		reports = append(reports, rep)
	}
	return reports
}

// countProblems returns how many files did not get a successful review.
func countProblems(reports []fileReport) int {
	n := 0
	for _, r := range reports {
		if r.Status != statusOK {
			n++
		}
	}
	return n
}

func writeReports(w io.Writer, format string, reports []fileReport) error {
	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(reports)
	case "text", "":
		for _, r := range reports {
			printReport(w, r)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use text, json or yaml)", format)
	}
}

func printReport(w io.Writer, r fileReport) {
	separator := strings.Repeat("═", 60)

	fmt.Fprintln(w)
	titleColor.Fprintln(w, separator)
	titleColor.Fprintf(w, "📋 %s\n", r.Path)
	titleColor.Fprintln(w, separator)

	switch r.Status {
	case statusRejected:
		errorColor.Fprintf(w, "✗ %s\n", r.Error)
		return
	case statusFailed:
		warnColor.Fprintf(w, "⚠ review failed (%s)\n", r.Failure)
	default:
		successColor.Fprintf(w, "✓ reviewed as %s\n", r.Filename)
	}
	fmt.Fprintln(w, renderMarkdown(r.Review))
}

// renderMarkdown styles the review for a terminal. Plain text is returned
// when colors are off or rendering fails.
func renderMarkdown(text string) string {
	if color.NoColor {
		return text
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}

// readSubmissions loads each path from disk. The full path is kept as the
// filename; the workflow reduces it to a safe base name.
func readSubmissions(paths []string) ([]*core.Submission, error) {
	subs := make([]*core.Submission, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		subs = append(subs, &core.Submission{Filename: p, Data: data})
	}
	return subs, nil
}
