package derive

import (
	"sort"
	"time"

	"momentum-cli/internal/model"
)

// Stats are the global dashboard counters across all goals.
type Stats struct {
	TotalGoals  int `json:"totalGoals"`
	ActiveGoals int `json:"activeGoals"`
	ActiveTasks int `json:"activeTasks"`
	DoneTasks   int `json:"doneTasks"`
	Overdue     int `json:"overdue"`
	DueToday    int `json:"dueToday"`
}

func DashboardStats(d *model.Document, now time.Time) Stats {
	var st Stats
	st.TotalGoals = len(d.Goals)
	for _, g := range d.Goals {
		if !g.Archived {
			st.ActiveGoals++
		}
	}
	for _, t := range d.Tasks {
		if t.Status == model.StatusDone {
			st.DoneTasks++
			continue
		}
		st.ActiveTasks++
		if isOverdue(t.Deadline, now) {
			st.Overdue++
		}
		if isToday(t.Deadline, now) {
			st.DueToday++
		}
	}
	return st
}

// UpcomingTasks returns non-done tasks that have a deadline, soonest first,
// truncated to limit.
func UpcomingTasks(d *model.Document, limit int, now time.Time) []*model.Task {
	var tasks []*model.Task
	for _, t := range d.Tasks {
		if t.Status != model.StatusDone && t.Deadline != "" {
			tasks = append(tasks, t)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := deadlineUnix(tasks[i]), deadlineUnix(tasks[j])
		if a != b {
			return a < b
		}
		return tasks[i].ID < tasks[j].ID
	})
	if limit > 0 && len(tasks) > limit {
		tasks = tasks[:limit]
	}
	return tasks
}

// DayCount is one bar of the weekly chart.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// WeeklyProgress counts tasks completed on each of the trailing seven
// calendar days, oldest first, ending today.
func WeeklyProgress(d *model.Document, now time.Time) []DayCount {
	days := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		key := DayKey(StripTime(now).AddDate(0, 0, -i))
		n := 0
		for _, t := range d.Tasks {
			if t.CompletedAt != nil && DayKey(t.CompletedAt.In(now.Location())) == key {
				n++
			}
		}
		days = append(days, DayCount{Date: key, Count: n})
	}
	return days
}
