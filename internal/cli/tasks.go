package cli

import (
	"strings"
	"time"

	"momentum-cli/internal/derive"
	"momentum-cli/internal/model"
	"momentum-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksSetCmd(app))
	cmd.AddCommand(newTasksDoneCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	cmd.AddCommand(newTasksReorderCmd(app))
	return cmd
}

// resolveGoalID prefers the --goal flag and falls back to the selected goal.
func resolveGoalID(doc *model.Document, flag string) (string, error) {
	goalID := strings.TrimSpace(flag)
	if goalID == "" {
		goalID = doc.UI.SelectedGoalID
	}
	if goalID == "" {
		return "", mutate.ValidationError{Field: "goal", Reason: "required: pass --goal or select a goal first"}
	}
	return goalID, nil
}

func newTasksAddCmd(app *App) *cobra.Command {
	var goalFlag, title string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a goal (appended to the goal's list)",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			goalID, err := resolveGoalID(doc, goalFlag)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := mutate.CreateTask(doc, goalID, nowUTC())
			if err != nil {
				return writeErr(cmd, err)
			}
			if title != "" {
				if err := mutate.SetTaskTitle(doc, t.ID, title); err != nil {
					return writeErr(cmd, err)
				}
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().StringVar(&goalFlag, "goal", "", "Goal id (default: selected goal)")
	cmd.Flags().StringVar(&title, "title", "", "Task title (default: \"New Task\")")
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var goalFlag, tab, search, sortMode, priority string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a goal's tasks through the active board filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			goalID, err := resolveGoalID(doc, goalFlag)
			if err != nil {
				return writeErr(cmd, err)
			}

			// Board state is the default; flags override per invocation.
			q := derive.QueryFromView(doc.UI)
			if cmd.Flags().Changed("tab") {
				if q.Tab, err = model.ParseTab(tab); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("search") {
				q.Search = search
			}
			if cmd.Flags().Changed("sort") {
				if q.Sort, err = model.ParseSortMode(sortMode); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("priority-filter") {
				if q.PriorityFilter, err = model.ParsePriorityFilter(priority); err != nil {
					return writeErr(cmd, err)
				}
			}

			tasks := derive.FilteredTasks(doc, goalID, q, time.Now())
			out := make([]map[string]any, 0, len(tasks))
			for _, t := range tasks {
				done, total := derive.SubtaskStats(doc, t.ID)
				out = append(out, map[string]any{
					"task":         t,
					"subtasksDone": done,
					"subtasks":     total,
				})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}

	cmd.Flags().StringVar(&goalFlag, "goal", "", "Goal id (default: selected goal)")
	cmd.Flags().StringVar(&tab, "tab", "", "Tab filter (all|today|upcoming|overdue|done)")
	cmd.Flags().StringVar(&search, "search", "", "Search term (title + notes)")
	cmd.Flags().StringVar(&sortMode, "sort", "", "Sort mode (deadline|priority|createdAt)")
	cmd.Flags().StringVar(&priority, "priority-filter", "", "Priority bucket (all|high|low)")
	return cmd
}

func newTasksShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task with its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, ok := doc.FindTask(args[0])
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "task", ID: args[0]})
			}
			subs := make([]*model.Subtask, 0, len(t.SubtaskIDs))
			for _, sid := range t.SubtaskIDs {
				if s, ok := doc.FindSubtask(sid); ok {
					subs = append(subs, s)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"task":       t,
				"subtasks":   subs,
				"completion": derive.TaskCompletion(doc, t),
			}})
		},
	}
	return cmd
}

func newTasksSetCmd(app *App) *cobra.Command {
	var title, notes, status, deadline string
	var priority, estimate int

	cmd := &cobra.Command{
		Use:   "set <task-id>",
		Short: "Edit task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			taskID := args[0]
			if cmd.Flags().Changed("title") {
				if err := mutate.SetTaskTitle(doc, taskID, title); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("notes") {
				if err := mutate.SetTaskNotes(doc, taskID, notes); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("status") {
				st, err := model.ParseStatus(status)
				if err != nil {
					return writeErr(cmd, err)
				}
				if err := mutate.SetTaskStatus(doc, taskID, st, nowUTC()); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("priority") {
				if err := mutate.SetTaskPriority(doc, taskID, priority); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("deadline") {
				if err := mutate.SetTaskDeadline(doc, taskID, deadline); err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("estimate") {
				if err := mutate.SetTaskEstimate(doc, taskID, estimate); err != nil {
					return writeErr(cmd, err)
				}
			}
			t, ok := doc.FindTask(taskID)
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "task", ID: taskID})
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title (non-empty)")
	cmd.Flags().StringVar(&notes, "notes", "", "Task notes")
	cmd.Flags().StringVar(&status, "status", "", "Status (todo|doing|done)")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority (1-5)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD, empty clears)")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimate in minutes (>= 0)")
	return cmd
}

func newTasksDoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task done (stamps completedAt)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.SetTaskStatus(doc, args[0], model.StatusDone, nowUTC()); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			t, _ := doc.FindTask(args[0])
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
	return cmd
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task and its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := mutate.DeleteTask(doc, args[0]); err != nil {
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

func newTasksReorderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder <dragged-task-id> <target-task-id>",
		Short: "Move a task to another visible task's position",
		Long: strings.TrimSpace(`
Move a task within its goal. The visible sequence is computed from the active
board filters (tab, search, priority, sort); tasks hidden by those filters
keep their relative order behind the visible ones. Reordering switches the
board to manual (createdAt) ordering.
`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, s, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			dragged, ok := doc.FindTask(args[0])
			if !ok {
				return writeErr(cmd, mutate.NotFoundError{Kind: "task", ID: args[0]})
			}
			visible := derive.VisibleTaskIDs(doc, dragged.GoalID, derive.QueryFromView(doc.UI), time.Now())
			if err := mutate.ReorderTasks(doc, args[0], args[1], visible); err != nil {
				return writeErr(cmd, err)
			}
			if err := saveDoc(cmd, s, doc); err != nil {
				return writeErr(cmd, err)
			}
			g, _ := doc.FindGoal(dragged.GoalID)
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"order": g.TaskIDs}})
		},
	}
	return cmd
}
