package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/ps-reviewer/internal/core"
	"github.com/sevigo/ps-reviewer/internal/review"
)

func sampleResults() ([]string, []review.BatchResult) {
	paths := []string{"a.ps1", "b.txt", "c.psm1"}
	results := []review.BatchResult{
		{Outcome: &core.ReviewOutcome{Filename: "a.ps1", Result: core.ReviewResult{Text: "## Fine"}}},
		{Err: errors.New("Invalid file type")},
		{Outcome: &core.ReviewOutcome{Filename: "c.psm1", Result: core.ReviewResult{
			Text:    "# Error Processing Review",
			Failure: &core.ReviewFailure{Kind: core.FailureUpstream, Message: "boom"},
		}}},
	}
	return paths, results
}

func TestBuildReports(t *testing.T) {
	reports := buildReports(sampleResults())

	require.Len(t, reports, 3)
	assert.Equal(t, fileReport{Path: "a.ps1", Filename: "a.ps1", Status: statusOK, Review: "## Fine"}, reports[0])
	assert.Equal(t, fileReport{Path: "b.txt", Status: statusRejected, Error: "Invalid file type"}, reports[1])
	assert.Equal(t, statusFailed, reports[2].Status)
	assert.Equal(t, core.FailureUpstream, reports[2].Failure)
	assert.Equal(t, 2, countProblems(reports))
}

func TestWriteReports(t *testing.T) {
	color.NoColor = true
	reports := buildReports(sampleResults())

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReports(&buf, "json", reports))
		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "ok", decoded[0]["status"])
		assert.Equal(t, "upstream", decoded[2]["failure"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReports(&buf, "YAML", reports))
		var decoded []fileReport
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, reports, decoded)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReports(&buf, "text", reports))
		out := buf.String()
		assert.Contains(t, out, "reviewed as a.ps1")
		assert.Contains(t, out, "Invalid file type")
		assert.Contains(t, out, "review failed (upstream)")
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, writeReports(&bytes.Buffer{}, "xml", reports))
	})
}

func TestCollectScripts(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.ps1", "notes.md", "sub/b.PSM1", ".git/hook.ps1", "sub/deeper/c.psd1"} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}

	paths, err := collectScripts(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.ps1"),
		filepath.Join(root, "sub", "b.PSM1"),
		filepath.Join(root, "sub", "deeper", "c.psd1"),
	}, paths)
}

func TestWriteReviewFile(t *testing.T) {
	out := t.TempDir()
	path, err := writeReviewFile("/repo", out, fileReport{Path: "/repo/sub/deploy.ps1", Review: "## ok"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "sub_deploy.ps1.review.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "## ok", string(data))
}

func TestReadSubmissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ps1")
	require.NoError(t, os.WriteFile(path, []byte("Get-Date"), 0o600))

	subs, err := readSubmissions([]string{path})
	require.NoError(t, err)
	assert.Equal(t, path, subs[0].Filename)
	assert.Equal(t, []byte("Get-Date"), subs[0].Data)

	_, err = readSubmissions([]string{filepath.Join(dir, "missing.ps1")})
	assert.Error(t, err)
}
