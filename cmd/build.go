package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static documentation site",
	Long:  `Renders every page in the nav outline (plus any markdown outside it) into a self-contained static HTML site with sidebar navigation, search, and next-step suggestions.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}

	result, err := newGenerator(cfg).Generate()
	if err != nil {
		return err
	}

	fmt.Printf("Built %d pages into %s (build %s)\n", result.PageCount, cfg.OutputDir, result.BuildID)
	return nil
}
