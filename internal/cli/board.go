package cli

import (
	"time"

	"momentum-cli/internal/derive"

	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Dashboard read-outs (stats, weekly chart, calendar, upcoming)",
	}
	cmd.AddCommand(newBoardStatsCmd(app))
	cmd.AddCommand(newBoardWeeklyCmd(app))
	cmd.AddCommand(newBoardCalendarCmd(app))
	cmd.AddCommand(newBoardUpcomingCmd(app))
	return cmd
}

func newBoardStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Global goal/task counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": derive.DashboardStats(doc, time.Now())})
		},
	}
	return cmd
}

func newBoardWeeklyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Tasks completed per day over the trailing week",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": derive.WeeklyProgress(doc, time.Now())})
		},
	}
	return cmd
}

func newBoardCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Current month grid (Sunday-first weeks)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := loadDoc(app); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": derive.Calendar(time.Now())})
		},
	}
	return cmd
}

func newBoardUpcomingCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Next deadlines across all goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := loadDoc(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": derive.UpcomingTasks(doc, limit, time.Now())})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 8, "Maximum number of tasks")
	return cmd
}
