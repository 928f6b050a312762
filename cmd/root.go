package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wikiquiz",
	Short: "Generate multiple-choice quizzes from Wikipedia articles",
	Long: `Wikiquiz scrapes a Wikipedia page, generates a multiple-choice quiz
from its content with an LLM (or a deterministic offline fallback),
stores the result, and serves a small web frontend for generating
quizzes and browsing past ones.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".wikiquiz.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
