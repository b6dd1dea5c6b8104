// Command nautilus-vscode-widget detects the directory shown in the active
// Nautilus window and opens it in VSCode or another configured editor.
package main

import (
	"fmt"
	"os"

	"github.com/konstantinWDK/nautilus-vscode-widget/internal/cli"
	"github.com/konstantinWDK/nautilus-vscode-widget/internal/logging"
)

func main() {
	verbose := false
	for _, arg := range os.Args[1:] {
		if arg == "--verbose" || arg == "-v" {
			verbose = true
		}
	}

	logger, flush := logging.New(logging.Options{Verbose: verbose})
	defer flush()

	app := cli.NewApp(logger)
	root := cli.NewRootCommand(app)
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug detail")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
