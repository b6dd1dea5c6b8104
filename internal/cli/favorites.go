package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newFavoritesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage pinned folders",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pinned folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Favorites.List()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(app.Stdout, dimStyle.Render("no favorites yet"))
				return nil
			}
			for _, fav := range list {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(fav.Color)).Render("■")
				fmt.Fprintf(app.Stdout, "%s %s %s\n",
					swatch,
					titleStyle.Render(filepath.Base(fav.Path)),
					dimStyle.Render(fav.Path))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <dir>",
		Short: "Pin a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if err := app.Favorites.Add(path); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "%s pinned %s\n", okMark(), pathStyle.Render(path))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <dir>",
		Short: "Unpin a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if err := app.Favorites.Remove(path); err != nil {
				return err
			}
			fmt.Fprintf(app.Stdout, "%s unpinned %s\n", okMark(), pathStyle.Render(path))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "color <dir> <#rrggbb>",
		Short: "Set the display color of a pinned folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if err := app.Favorites.SetColor(path, args[1]); err != nil {
				return err
			}
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(args[1])).Render("■")
			fmt.Fprintf(app.Stdout, "%s %s now shows as %s\n", okMark(), pathStyle.Render(path), swatch)
			return nil
		},
	})

	return cmd
}
