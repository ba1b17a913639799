package cli

import (
	"time"

	"momentum-cli/internal/derive"
	"momentum-cli/internal/model"
	"momentum-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newGoalsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Goal commands",
	}
	cmd.AddCommand(newGoalsCreateCmd(app))
	cmd.AddCommand(newGoalsListCmd(app))
	cmd.AddCommand(newGoalsShowCmd(app))
	cmd.AddCommand(newGoalsSetCmd(app))
	cmd.AddCommand(newGoalsArchiveCmd(app))
	cmd.AddCommand(newGoalsDeleteCmd(app))
	return cmd
}

func goalPayload(d *model.Document, g *model.Goal, now time.Time) map[string]any {
	return map[string]any{
		"goal":     g,
		"progress": derive.GoalProgress(d, g.ID),
		"overdue":  derive.CountOverdue(d, g.ID, now),
		"dueToday": derive.CountDueToday(d, g.ID, now),
	}
}

func newGoalsCreateCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a goal (prepended to the board, becomes selected)",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			g := mutate.CreateGoal(doc, nowUTC())
			if title != "" {
				if err := mutate.SetGoalTitle(doc, g.ID, title); err != nil {
					return writeErr(cmd, err)
				}
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": g})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title (default: \"New Goal\")")
	return cmd
}

func newGoalsListCmd(app *App) *cobra.Command {
	var archived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals in board order with derived progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			now := time.Now()
			out := make([]map[string]any, 0, len(doc.GoalOrder))
			for _, goalID := range doc.GoalOrder {
				g, ok := doc.FindGoal(goalID)
				if !ok {
					continue
				}
				if g.Archived && !archived {
					continue
				}
				out = append(out, goalPayload(doc, g, now))
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}

	cmd.Flags().BoolVar(&archived, "archived", false, "Include archived goals")
	return cmd
}

func newGoalsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <goal-id>",
		Short: "Show one goal with derived progress and counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			g, ok := doc.FindGoal(args[0])
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "goal", ID: args[0]})
			}
			return writeOut(cmd, app, map[string]any{"data": goalPayload(doc, g, time.Now())})
		},
	}
	return cmd
}

func newGoalsSetCmd(app *App) *cobra.Command {
	var title, description, targetDate string

	cmd := &cobra.Command{
		Use:   "set <goal-id>",
		Short: "Edit goal fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			goalID := args[0]
			if cmd.Flags().Changed("title") {
				if err := mutate.SetGoalTitle(doc, goalID, title); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("description") {
				if err := mutate.SetGoalDescription(doc, goalID, description); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("target-date") {
				if err := mutate.SetGoalTargetDate(doc, goalID, targetDate); err != nil {
					return writeErr(cmd, err)
				}
			}
			g, ok := doc.FindGoal(goalID)
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "goal", ID: goalID})
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": g})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title (non-empty)")
	cmd.Flags().StringVar(&description, "description", "", "Goal description")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "Target date (YYYY-MM-DD, empty clears)")
	return cmd
}

func newGoalsArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <goal-id>",
		Short: "Toggle a goal's archived flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.ToggleGoalArchived(doc, args[0]); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			g, _ := doc.FindGoal(args[0])
			return writeOut(cmd, app, map[string]any{"data": g})
		},
	}
	return cmd
}

func newGoalsDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete a goal and all of its tasks and subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.DeleteGoal(doc, args[0]); err != nil {
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
