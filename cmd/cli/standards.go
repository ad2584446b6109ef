package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/ps-reviewer/internal/wire"
)

var standardsRaw bool

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Print the coding standards the reviews are checked against",
	Long: `Fetches the standards document from the configured store. The built-in
standards are printed when the store is not configured or unreachable.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		appInstance, cleanup, err := wire.InitializeApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		defer cleanup()

		text := appInstance.Standards.Fetch(cmd.Context())
		if !standardsRaw {
			text = renderMarkdown(text)
		}
		_, err = fmt.Fprintln(os.Stdout, text)
		return err
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	standardsCmd.Flags().BoolVar(&standardsRaw, "raw", false, "Print the document without terminal styling")
	rootCmd.AddCommand(standardsCmd)
}
