package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize docweave configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes a docweave.yml file with a starter nav outline seeded from your markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
