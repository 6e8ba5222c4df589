package cli

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"todo-cli/internal/config"
	"todo-cli/internal/format"
	"todo-cli/internal/logging"
	"todo-cli/internal/model"
	"todo-cli/internal/store"
	"todo-cli/internal/tui"

	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X todo-cli/internal/cli.version=...".
var version = "dev"

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string

	Date  string
	Count bool

	// now is overridden in tests.
	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "Terminal todo lists",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todo

  # Incomplete todos due on or before a date
  todo --date 2024-01-31

  # How many are due today or earlier
  todo --count

  # Todos of list 3 (shortcut for: todo show 3)
  todo 3
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return format.Validate(app.Format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("date") || app.Count {
				return runDue(cmd, app)
			}
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr(store.EnvDir, ""), "Path to store dir (default: ~/.todo)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODO_FORMAT", "text"), "Output format (text|json|edn)")

	cmd.Flags().StringVarP(&app.Date, "date", "d", "", "Print incomplete todos due on or before this date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&app.Count, "count", "c", false, "Print only the number of incomplete due todos (default date: today)")

	cmd.AddCommand(newListsCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runTUI(app *App) error {
	s, err := openStore(app)
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrCreate(s.Dir)
	if err != nil {
		return err
	}
	closer, err := logging.Init(s.Dir)
	if err != nil {
		return err
	}
	defer closer.Close()
	return tui.Run(s, cfg)
}

// openStore resolves the store directory and makes sure it exists.
// An unresolvable home directory exits with status 2.
func openStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			if errors.Is(err, store.ErrNoHome) {
				return store.Store{}, &exitError{code: 2, err: err}
			}
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	s := store.Store{Dir: dir, Now: app.now}
	if err := s.Ensure(); err != nil {
		return s, err
	}
	return s, nil
}

func (app *App) today() model.Date {
	now := time.Now
	if app.now != nil {
		now = app.now
	}
	return model.DateOf(now())
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

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
