package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"momentum-cli/internal/format"
	"momentum-cli/internal/model"
	"momentum-cli/internal/store"
	"momentum-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "momentum",
		Short:        "Momentum (local-first) productivity dashboard CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  momentum

  # Scriptable commands
  momentum goals list
  momentum tasks list --tab overdue
  momentum board stats
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("MOMENTUM_DIR", ""), "Path to store dir (default: nearest .momentum, else ./.momentum)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("MOMENTUM_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newGoalsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newSubtasksCmd(app))
	cmd.AddCommand(newNotesCmd(app))
	cmd.AddCommand(newBoardCmd(app))
	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newResetCmd(app))

	return cmd
}

func runTUI(app *App) error {
	doc, s, err := loadDoc(app)
	if err != nil {
		return err
	}
	return tui.Run(s, doc)
}

func loadDoc(app *App) (*model.Document, store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	s := store.Store{Dir: dir}
	doc, err := s.Load(context.Background())
	if err != nil {
		return nil, s, err
	}
	return doc, s, nil
}

// saveDoc is the write-through commit after a successful mutation.
func saveDoc(cmd *cobra.Command, s store.Store, doc *model.Document) error {
	return s.Save(cmd.Context(), doc)
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

func nowUTC() time.Time { return time.Now().UTC() }
