package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"twinforge/internal/format"
	"twinforge/internal/geo"
	"twinforge/internal/store"
	"twinforge/internal/tui"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "twinforge",
		Short:        "Coach-twin onboarding TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive onboarding
  twinforge

  # Scriptable commands
  twinforge profiles list
  twinforge profiles show <profile-id> --format json --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// A missing .env is the normal case.
		_ = godotenv.Load()
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TWINFORGE_DIR", ""), "Path to the data directory (default: ~/.twinforge)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TWINFORGE_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newProfilesCmd(app))

	return cmd
}

func runTUI(app *App) error {
	st, err := openStore(app)
	if err != nil {
		return err
	}
	g := geo.NewClient()
	return tui.Run(tui.Options{
		Sink:          st,
		LookupCountry: g.Country,
	})
}

func openStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return store.Store{}, fmt.Errorf("resolve data dir: %w", err)
		}
		dir = filepath.Join(home, ".twinforge")
		app.Dir = dir
	}
	return store.Store{Dir: dir}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
