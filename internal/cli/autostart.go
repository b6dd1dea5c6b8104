package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAutostartCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage the desktop session autostart entry",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Start the widget with the desktop session",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Autostart.Enable()
			if err != nil {
				return err
			}

			cfg := app.loadConfig()
			cfg.Autostart = true
			if err := app.Store.Save(cfg); err != nil {
				return err
			}

			fmt.Fprintf(app.Stdout, "%s autostart enabled (%s)\n", okMark(), dimStyle.Render(path))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Do not start the widget with the desktop session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Autostart.Disable(); err != nil {
				return err
			}

			cfg := app.loadConfig()
			cfg.Autostart = false
			if err := app.Store.Save(cfg); err != nil {
				return err
			}

			fmt.Fprintf(app.Stdout, "%s autostart disabled\n", okMark())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether the autostart entry exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := app.Autostart.Enabled()
			if err != nil {
				return err
			}
			if enabled {
				fmt.Fprintf(app.Stdout, "%s autostart is enabled\n", okMark())
			} else {
				fmt.Fprintf(app.Stdout, "%s autostart is disabled\n", dimStyle.Render("-"))
			}
			return nil
		},
	})

	return cmd
}
