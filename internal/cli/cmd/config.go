package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/gridbrowser/internal/application/port"
	"github.com/bnema/gridbrowser/internal/application/usecase"
	"github.com/bnema/gridbrowser/internal/cli/styles"
	"github.com/bnema/gridbrowser/internal/infrastructure/config"
)

const schemaFilePerm = 0o644

var schemaOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the configuration file lives and print its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema describing config.toml.

Point your editor's TOML language server at it for completion and validation.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to a file instead of stdout")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.ConfigManager.GetConfigFile()
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfigPath(path, app.ConfigManager.CreatedConfigFile() != ""))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	provider := config.NewSchemaProvider()

	if schemaOutput == "" {
		return writeSchema(app.Context(), cmd.OutOrStdout(), provider)
	}

	file, err := os.OpenFile(schemaOutput, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, schemaFilePerm)
	if err != nil {
		return fmt.Errorf("create schema file: %w", err)
	}
	defer file.Close()

	if err := writeSchema(app.Context(), file, provider); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(schemaOutput))
	return nil
}

func writeSchema(ctx context.Context, w io.Writer, provider port.ConfigSchemaProvider) error {
	out, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(ctx)
	if err != nil {
		return err
	}
	if _, err := w.Write(out.Schema); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}
