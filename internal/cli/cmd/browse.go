package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/gridbrowser/internal/application/usecase"
	"github.com/bnema/gridbrowser/internal/cli"
	"github.com/bnema/gridbrowser/internal/infrastructure/webkit"
	"github.com/bnema/gridbrowser/internal/logging"
	"github.com/bnema/gridbrowser/internal/ui"
	"github.com/bnema/gridbrowser/internal/ui/theme"
)

const paneIDPrefix = "pane"

// gridFlags maps command line flags to the config keys they override.
var gridFlags = []struct {
	flag string
	key  string
}{
	{flag: "rows", key: "grid.initial_rows"},
	{flag: "columns", key: "grid.initial_columns"},
	{flag: "url", key: "grid.default_url"},
}

func init() {
	addGridFlags(rootCmd)
}

func addGridFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntP("rows", "r", 0, "number of pane rows at startup (overrides grid.initial_rows)")
	flags.IntP("columns", "c", 0, "number of pane columns at startup (overrides grid.initial_columns)")
	flags.StringP("url", "u", "", "URL loaded by new panes (overrides grid.default_url)")
}

func runBrowser(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := applyGridFlags(cmd, app); err != nil {
		return err
	}

	cfg := app.Config
	ctx := app.Context()
	logging.FromContext(ctx).Info().
		Int("rows", cfg.Grid.InitialRows).
		Int("columns", cfg.Grid.InitialColumns).
		Str("default_url", cfg.Grid.DefaultURL).
		Msg("launching browser")

	deps := &ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: app.ConfigManager,
		Theme:         theme.NewManager(ctx, cfg),
		WebViews:      webkit.NewWebViewFactory(webkit.DefaultSettings()),
		GridUC:        usecase.NewManageGridUseCase(usecase.NewSequentialIDGenerator(paneIDPrefix), cfg.Grid.DefaultURL),
		NavigateUC:    usecase.NewNavigateUseCase(cfg.Navigation.NormalizeInput),
	}

	if code := ui.RunWithArgs(ctx, deps); code != 0 {
		return fmt.Errorf("browser exited with status %d", code)
	}
	return nil
}

// applyGridFlags pins explicitly set grid flags over file and env values.
func applyGridFlags(cmd *cobra.Command, app *cli.App) error {
	flags := cmd.Flags()
	for _, f := range gridFlags {
		if !flags.Changed(f.flag) {
			continue
		}

		var (
			value any
			err   error
		)
		if f.flag == "url" {
			value, err = flags.GetString(f.flag)
		} else {
			value, err = flags.GetInt(f.flag)
		}
		if err != nil {
			return fmt.Errorf("read --%s: %w", f.flag, err)
		}

		if err := app.Override(f.key, value); err != nil {
			return fmt.Errorf("--%s: %w", f.flag, err)
		}
	}
	return nil
}
