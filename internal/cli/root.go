package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, overridden at build time.
var (
	Version = "dev"
	Commit  = "none"
)

// NewRootCommand builds the widget's command tree.
func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nautilus-vscode-widget",
		Short: "Open the folder shown in Nautilus in your editor",
		Long: `nautilus-vscode-widget detects the directory shown in the active
Nautilus window and opens it in VSCode (or any configured editor).

Detection runs a chain of strategies, from asking Nautilus over the
session bus down to searching the home tree for a folder matching the
window title. The first strategy producing a real directory wins.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(newResolveCommand(app))
	cmd.AddCommand(newOpenCommand(app))
	cmd.AddCommand(newFavoritesCommand(app))
	cmd.AddCommand(newAutostartCommand(app))
	cmd.AddCommand(newDoctorCommand(app))
	cmd.AddCommand(newVersionCommand(app))

	return cmd
}

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(app.Stdout, "nautilus-vscode-widget %s (commit %s)\n", Version, Commit)
		},
	}
}
