package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docweave",
	Short: "Documentation website builder with outline navigation",
	Long: `Docweave builds a static documentation website from a directory of
markdown pages, driven by an authored navigation outline. The outline
defines the sidebar, the reading order, and the "next steps"
suggestions shown on every page.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "docweave.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
