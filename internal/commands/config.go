package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/orgwriter/internal/config"
	"github.com/gerunddev/orgwriter/internal/styles"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := app.Config
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, styles.TitleStyle.Render("orgwriter configuration"))
			fmt.Fprintln(w, styles.KeyValue("config file", config.ConfigPath()))
			fmt.Fprintln(w, styles.KeyValue("inbox file", cfg.InboxFile))
			fmt.Fprintln(w, styles.KeyValue("log file", cfg.LogFile))
			fmt.Fprintln(w, styles.KeyValue("default level", cfg.DefaultLevel))
			fmt.Fprintln(w, styles.KeyValue("default todo", cfg.DefaultTodo))
			fmt.Fprintln(w, styles.KeyValue("assign ids", cfg.AssignIDs))
			fmt.Fprintln(w, styles.KeyValue("add created", cfg.AddCreated))
		},
	}

	cmd.AddCommand(newConfigInitCmd(app))

	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the active configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigPath()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			if err := app.Config.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := app.Config.Save(); err != nil {
				app.Log.FileError(path, err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render("✓ Wrote ")+styles.HighlightStyle.Render(path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
