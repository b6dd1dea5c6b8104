package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/envinfo"
	"github.com/konstantinWDK/nautilus-vscode-widget/internal/logging"
)

func newDoctorCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the session environment and external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := envinfo.Detect(app.Env)

			fmt.Fprintln(app.Stdout, titleStyle.Render("Session"))
			fmt.Fprintf(app.Stdout, "  display server: %s\n", strings.ToUpper(info.DisplayServer))
			desktop := info.Desktop
			if desktop == "" {
				desktop = dimStyle.Render("unknown")
			}
			fmt.Fprintf(app.Stdout, "  desktop:        %s\n", desktop)

			fmt.Fprintln(app.Stdout, titleStyle.Render("Tools"))
			for _, tool := range info.Tools {
				printTool(app, tool)
			}

			fmt.Fprintln(app.Stdout, titleStyle.Render("Paths"))
			if path, err := app.Store.Path(); err == nil {
				fmt.Fprintf(app.Stdout, "  config: %s\n", path)
			}
			if path, err := logging.DefaultPath(); err == nil {
				fmt.Fprintf(app.Stdout, "  log:    %s\n", path)
			}

			warnings := info.Warnings()
			if len(warnings) == 0 {
				fmt.Fprintf(app.Stdout, "%s environment looks good\n", okMark())
				return nil
			}
			fmt.Fprintln(app.Stdout, titleStyle.Render("Warnings"))
			for _, warning := range warnings {
				fmt.Fprintf(app.Stdout, "  %s %s\n", warnMark(), warning)
			}
			return nil
		},
	}
}

func printTool(app *App, tool envinfo.Tool) {
	if tool.Found {
		fmt.Fprintf(app.Stdout, "  %s %-13s %s\n", okMark(), tool.Name, dimStyle.Render(tool.Path))
		return
	}
	mark := dimStyle.Render("-")
	if tool.Required {
		mark = failMark()
	}
	fmt.Fprintf(app.Stdout, "  %s %-13s %s\n", mark, tool.Name,
		dimStyle.Render("not found, "+tool.Description))
}
