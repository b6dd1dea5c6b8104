package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/resolve"
)

func newResolveCommand(app *App) *cobra.Command {
	var showAttempts bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Detect the directory shown in the active Nautilus window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.loadConfig()
			resolver := app.newResolver(cfg)

			resolved, attempts, err := resolver.ResolveWithAttempts(cmd.Context())
			if showAttempts {
				printAttempts(app, attempts)
			}
			if err != nil {
				if errors.Is(err, resolve.ErrNoDirectoryFound) {
					fallback := cfg.DefaultDirectory
					if fallback == "" {
						fmt.Fprintln(app.Stdout, failMark()+" no directory detected")
						return err
					}
					fmt.Fprintf(app.Stdout, "%s no directory detected, default is %s\n",
						warnMark(), pathStyle.Render(fallback))
					return nil
				}
				return err
			}

			fmt.Fprintf(app.Stdout, "%s %s %s\n",
				okMark(),
				pathStyle.Render(resolved.Path),
				dimStyle.Render("("+resolved.Strategy+")"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAttempts, "attempts", "a", false,
		"show the outcome of every detection strategy")
	return cmd
}

func printAttempts(app *App, attempts []resolve.Attempt) {
	for _, att := range attempts {
		switch {
		case att.OK:
			fmt.Fprintf(app.Stdout, "  %s %-8s %s\n", okMark(), att.Strategy, att.Path)
		case att.Err != nil:
			fmt.Fprintf(app.Stdout, "  %s %-8s %s\n", failMark(), att.Strategy,
				dimStyle.Render(att.Err.Error()))
		default:
			fmt.Fprintf(app.Stdout, "  %s %-8s\n", failMark(), att.Strategy)
		}
	}
}
