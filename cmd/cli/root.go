package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	logLevel string
	enhanced bool
)

var rootCmd = &cobra.Command{
	Use:   "ps-reviewer-cli",
	Short: "ps-reviewer-cli reviews PowerShell scripts from the command line.",
	Long: `A CLI for the PowerShell code reviewer. It runs the same review workflow
as the web service against local files and reports the configuration status.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyOverrides()
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&enhanced, "enhanced", false, "Use the enhanced review prompt")

	for key, flag := range map[string]string{"LOG_LEVEL": "log-level", "ENHANCED": "enhanced"} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("PSR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// applyOverrides hands CLI settings to the service configuration, which is
// read from the environment. Logs go to stderr unless LOG_OUTPUT says
// otherwise so that stdout only carries reviews.
func applyOverrides() error {
	if _, ok := os.LookupEnv("LOG_OUTPUT"); !ok {
		if err := os.Setenv("LOG_OUTPUT", "stderr"); err != nil {
			return err
		}
	}
	if level := viper.GetString("LOG_LEVEL"); level != "" {
		if err := os.Setenv("LOG_LEVEL", level); err != nil {
			return err
		}
	}
	if viper.GetBool("ENHANCED") {
		if err := os.Setenv("FEATURE_ENHANCED_ANALYSIS", "true"); err != nil {
			return err
		}
	}
	return nil
}
