package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/gitroot"
	"github.com/konstantinWDK/nautilus-vscode-widget/internal/resolve"
)

func newOpenCommand(app *App) *cobra.Command {
	var (
		dirFlag   string
		noGitRoot bool
	)

	cmd := &cobra.Command{
		Use:   "open [favorite|path]",
		Short: "Detect the active Nautilus directory and open it in the editor",
		Long: `Detects the directory shown in the active Nautilus window and opens
it in the configured editor. When detection fails the configured default
directory (or the home directory) is opened instead.

With an argument, detection is skipped: the argument is matched against the
pinned favorites by folder name first, then treated as a path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.loadConfig()

			dir := dirFlag
			if dir == "" && len(args) == 1 {
				target, err := app.favoriteOrPath(args[0])
				if err != nil {
					return err
				}
				dir = target
			}
			if dir == "" {
				resolver := app.newResolver(cfg)
				resolved, _, err := resolver.ResolveWithAttempts(cmd.Context())
				switch {
				case err == nil:
					dir = resolved.Path
				case errors.Is(err, resolve.ErrNoDirectoryFound):
					dir = cfg.DefaultDirectory
					if dir == "" {
						home, homeErr := os.UserHomeDir()
						if homeErr != nil {
							return err
						}
						dir = home
					}
					app.Logger.Info("detection failed, opening fallback",
						zap.String("dir", dir))
				default:
					return err
				}
			}

			if cfg.OpenGitRoot && !noGitRoot {
				if promoted := gitroot.Promote(dir, true); promoted != dir {
					app.Logger.Info("promoted to git worktree root",
						zap.String("from", dir),
						zap.String("to", promoted))
					dir = promoted
				}
			}

			launcher := app.newLauncher(cfg)
			launched, err := launcher.Open(dir)
			if err != nil {
				return err
			}

			if launched.UsedFallback && launched.Command != cfg.EditorCommand {
				// Remember the editor that actually worked.
				cfg.EditorCommand = launched.Command
				if saveErr := app.Store.Save(cfg); saveErr != nil {
					app.Logger.Warn("could not persist working editor", zap.Error(saveErr))
				}
			}

			fmt.Fprintf(app.Stdout, "%s opened %s with %s\n",
				okMark(),
				pathStyle.Render(launched.Dir),
				launched.Command)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "open this directory instead of detecting one")
	cmd.Flags().BoolVar(&noGitRoot, "no-git-root", false, "do not promote the directory to its git worktree root")
	return cmd
}

// favoriteOrPath resolves an open argument: a pinned favorite matched by
// folder name wins over a literal path.
func (a *App) favoriteOrPath(arg string) (string, error) {
	list, err := a.Favorites.List()
	if err == nil {
		for _, fav := range list {
			if filepath.Base(fav.Path) == arg || fav.Path == arg {
				return fav.Path, nil
			}
		}
	}
	return filepath.Abs(arg)
}
