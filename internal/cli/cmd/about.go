package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gridbrowser/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info and repository URL.`,
	RunE:  runAbout,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		renderer := styles.NewAboutRenderer(styles.NewTheme(nil))
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderVersion(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(versionCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo))
	return nil
}
