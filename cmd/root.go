// Package cmd implements the screensift command-line interface.
package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "screensift",
	Short: "Classify screenshots into recipes, workouts and quotes",
	Long: `screensift classifies screenshot OCR output into one of four
categories (recipe, workout, quote, none) using weighted rule scoring, and
measures classifier quality against a human-labelled corpus.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	_ = godotenv.Load()
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "screensift version %s\n", version)
		},
	})

	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newEvaluateCommand())
	rootCmd.AddCommand(newSweepCommand())
	rootCmd.AddCommand(newSamplesCommand())
	rootCmd.AddCommand(newServeCommand())
}
