package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/ps-reviewer/internal/config"
	"github.com/sevigo/ps-reviewer/internal/server/handler"
)

var statusOutput string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows which integrations are configured",
	Long: `Prints the same report as GET /health. Nothing is contacted: the report
only reflects configuration.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		report := handler.Health(cfg)

		switch strings.ToLower(statusOutput) {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		case "yaml":
			return yaml.NewEncoder(os.Stdout).Encode(report)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CHECK\tVALUE")
		fmt.Fprintf(w, "status\t%s\n", report.Status)
		fmt.Fprintf(w, "openai configured\t%s\n", yesNo(report.HasOpenAIConfig))
		fmt.Fprintf(w, "storage configured\t%s\n", yesNo(report.HasStorageConfig))
		fmt.Fprintf(w, "monitoring\t%s\n", yesNo(report.HasMonitoring))
		fmt.Fprintf(w, "enhanced analysis\t%s\n", yesNo(report.EnhancedAnalysisEnabled))
		fmt.Fprintf(w, "llm provider\t%s\n", cfg.AI.LLMProvider)
		fmt.Fprintf(w, "storage provider\t%s\n", cfg.Storage.Provider)
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "table", "Output format (table, json, yaml)")
	rootCmd.AddCommand(statusCmd)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
