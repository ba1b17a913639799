package cli

import (
	"errors"
	"time"

	"momentum-cli/internal/store"

	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the stored document with the seed document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return writeErr(cmd, errors.New("reset discards all data; pass --force to confirm"))
			}
			if _, _, err := loadDoc(app); err != nil {
				return writeErr(cmd, err)
			}
			s := store.Store{Dir: app.Dir}
			doc := store.Seed(time.Now().UTC())
			if err := s.Save(cmd.Context(), doc); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"reset": true, "goals": len(doc.Goals)})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm discarding the current document")
	return cmd
}
