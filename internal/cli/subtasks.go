package cli

import (
	"momentum-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newSubtasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtasks",
		Short: "Subtask (checklist) commands",
	}
	cmd.AddCommand(newSubtasksAddCmd(app))
	cmd.AddCommand(newSubtasksToggleCmd(app))
	cmd.AddCommand(newSubtasksSetTitleCmd(app))
	cmd.AddCommand(newSubtasksDeleteCmd(app))
	return cmd
}

func newSubtasksAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <task-id> <title>",
		Short: "Add a subtask to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			sub, err := mutate.CreateSubtask(doc, args[0], args[1], nowUTC())
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": sub})
		},
	}
	return cmd
}

func newSubtasksToggleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <subtask-id>",
		Short: "Toggle a subtask's done flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.ToggleSubtaskDone(doc, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			sub, _ := doc.FindSubtask(args[0])
			return writeOut(cmd, app, map[string]any{"data": sub})
		},
	}
	return cmd
}

func newSubtasksSetTitleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-title <subtask-id> <title>",
		Short: "Rename a subtask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.SetSubtaskTitle(doc, args[0], args[1]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			sub, _ := doc.FindSubtask(args[0])
			return writeOut(cmd, app, map[string]any{"data": sub})
		},
	}
	return cmd
}

func newSubtasksDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <subtask-id>",
		Short: "Delete a subtask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.DeleteSubtask(doc, args[0]); err != nil {
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
