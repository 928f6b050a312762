package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/wikiquiz/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
