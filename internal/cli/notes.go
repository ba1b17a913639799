package cli

import (
	"fmt"

	"momentum-cli/internal/model"
	"momentum-cli/internal/mutate"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Notes board commands",
	}
	cmd.AddCommand(newNotesAddCmd(app))
	cmd.AddCommand(newNotesListCmd(app))
	cmd.AddCommand(newNotesShowCmd(app))
	cmd.AddCommand(newNotesSetCmd(app))
	cmd.AddCommand(newNotesDeleteCmd(app))
	return cmd
}

func newNotesAddCmd(app *App) *cobra.Command {
	var title, body string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note to the board (title, body, or both)",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := mutate.CreateNote(doc, title, body, nowUTC())
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title (default: \"Untitled note\" when body is given)")
	cmd.Flags().StringVar(&body, "body", "", "Note body")
	return cmd
}

func newNotesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes in board order (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]*model.Note, 0, len(doc.NoteOrder))
			for _, noteID := range doc.NoteOrder {
				if n, ok := doc.FindNote(noteID); ok {
					out = append(out, n)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	var rendered bool

	cmd := &cobra.Command{
		Use:   "show <note-id>",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, ok := doc.FindNote(args[0])
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "note", ID: args[0]})
			}
			if rendered {
				r, err := glamour.NewTermRenderer(
					glamour.WithAutoStyle(),
					glamour.WithWordWrap(80),
				)
				if err != nil {
					return writeErr(cmd, err)
				}
				out, err := r.Render("# " + n.Title + "\n\n" + n.Body)
				if err != nil {
					return writeErr(cmd, err)
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}

	cmd.Flags().BoolVar(&rendered, "rendered", false, "Render the note body as markdown")
	return cmd
}

func newNotesSetCmd(app *App) *cobra.Command {
	var title, body string

	cmd := &cobra.Command{
		Use:   "set <note-id>",
		Short: "Edit note fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			noteID := args[0]
			if cmd.Flags().Changed("title") {
				if err := mutate.SetNoteTitle(doc, noteID, title); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("body") {
				if err := mutate.SetNoteBody(doc, noteID, body); err != nil {
					return writeErr(cmd, err)
				}
			}
			n, ok := doc.FindNote(noteID)
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "note", ID: noteID})
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title (non-empty)")
	cmd.Flags().StringVar(&body, "body", "", "Note body")
	return cmd
}

func newNotesDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.DeleteNote(doc, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	}
	return cmd
}
