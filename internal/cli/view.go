package cli

import (
	"momentum-cli/internal/model"
	"momentum-cli/internal/mutate"

	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View-state commands (selection, page, filters)",
	}
	cmd.AddCommand(newViewShowCmd(app))
	cmd.AddCommand(newViewSelectCmd(app))
	cmd.AddCommand(newViewPageCmd(app))
	cmd.AddCommand(newViewTabCmd(app))
	cmd.AddCommand(newViewSearchCmd(app))
	cmd.AddCommand(newViewSortCmd(app))
	cmd.AddCommand(newViewPriorityCmd(app))
	cmd.AddCommand(newViewArchivedCmd(app))
	cmd.AddCommand(newViewExpandCmd(app))
	cmd.AddCommand(newViewWidgetCmd(app))
	return cmd
}

// viewRunE wraps the common load/apply/save/emit shape of view intents.
func viewRunE(app *App, apply func(doc *model.Document, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		doc, s, err := loadDoc(app)
		if err != nil {
			return writeErr(cmd, err)
		}
		if err := apply(doc, args); err != nil {
			return writeErr(cmd, err)
		}
		if err := saveDoc(cmd, s, doc); err != nil {
			return writeErr(cmd, err)
		}
		return writeOut(cmd, app, map[string]any{"data": doc.UI})
	}
}

func newViewShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current view state",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": doc.UI})
		},
	}
}

func newViewSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <goal-id>",
		Short: "Select a goal (switches to the goal page)",
		Args:  cobra.ExactArgs(1),
		RunE: viewRunE(app, func(doc *model.Document, args []string) error {
			return mutate.SelectGoal(doc, args[0])
		}),
	}
}

func newViewPageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "page <goals|goal|tasks>",
		Short: "Switch the active page",
		Args:  cobra.ExactArgs(1),
		RunE: viewRunE(app, func(doc *model.Document, args []string) error {
			p, err := model.ParsePage(args[0])
			if err != nil {
				return err
			}
			mutate.SetPage(doc, p)
			return nil
		}),
	}
}

func newViewTabCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tab <all|today|upcoming|overdue|done>",
		Short: "Switch the task board tab",
		Args:  cobra.ExactArgs(1),
		RunE: viewRunE(app, func(doc *model.Document, args []string) error {
			t, err := model.ParseTab(args[0])
			if err != nil {
				return err
			}
			mutate.SetTab(doc, t)
			return nil
		}),
	}
}

func newViewSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search [text]",
		Short: "Set (or clear) the task search text",
		Args:  cobra.MaximumNArgs(1),
		RunE: viewRunE(app, func(doc *model.Document, args []string) error {
			text := ""
			if len(args) == 1 {
				text = args[0]
			}
			mutate.SetSearch(doc, text)
			return nil
		}),
	}
}

func newViewSortCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <deadline|priority|createdAt>",
		Short: "Set the task sort mode",
		Args:  cobra.ExactArgs(1),
		RunE: viewRunE(app, func(doc *model.Document, args []string) error {
			m, err := model.ParseSortMode(args[0])
			if err != nil {
				return err
			}
			mutate.SetSort(doc, m)
			return nil
		}),
	}
}

func newViewPriorityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "priority <all|high|low>",
		Short: "Set the priority bucket filter",
		Args:  cobra.ExactArgs(1),
		RunE: viewRunE(app, func(doc *model.Document, args []string) error {
			f, err := model.ParsePriorityFilter(args[0])
			if err != nil {
				return err
			}
			mutate.SetPriorityFilter(doc, f)
			return nil
		}),
	}
}

func newViewArchivedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archived",
		Short: "Toggle archived-goal visibility",
		RunE: viewRunE(app, func(doc *model.Document, args []string) error {
			mutate.ToggleShowArchived(doc)
			return nil
		}),
	}
}

func newViewExpandCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <task-id>",
		Short: "Toggle a task's expanded state",
		Args:  cobra.ExactArgs(1),
		RunE: viewRunE(app, func(doc *model.Document, args []string) error {
			mutate.ToggleExpanded(doc, args[0])
			return nil
		}),
	}
}

func newViewWidgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "widget [notes|weekly|calendar|upcoming]",
		Short: "Open a dashboard widget (no argument closes it)",
		Args:  cobra.MaximumNArgs(1),
		RunE: viewRunE(app, func(doc *model.Document, args []string) error {
			key := mutate.WidgetNone
			if len(args) == 1 {
				key = args[0]
			}
			return mutate.SetActiveWidget(doc, key)
		}),
	}
}
