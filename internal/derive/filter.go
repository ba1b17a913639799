package derive

import (
	"math"
	"sort"
	"strings"
	"time"

	"momentum-cli/internal/model"
)

// Query captures the active task board filters. It mirrors the view state but
// is passed explicitly so the derivation stays a pure function of its
// arguments.
type Query struct {
	Tab            model.Tab
	Search         string
	PriorityFilter model.PriorityFilter
	Sort           model.SortMode
}

func QueryFromView(ui model.UIState) Query {
	return Query{
		Tab:            ui.Tab,
		Search:         ui.Search,
		PriorityFilter: ui.PriorityFilter,
		Sort:           ui.Sort,
	}
}

// FilteredTasks returns the goal's tasks surviving the query, in display
// order. This is the visible sequence: the reorder operation and every task
// board rendering consume exactly this.
func FilteredTasks(d *model.Document, goalID string, q Query, now time.Time) []*model.Task {
	g, ok := d.FindGoal(goalID)
	if !ok {
		return nil
	}

	tasks := make([]*model.Task, 0, len(g.TaskIDs))
	for _, taskID := range g.TaskIDs {
		if t, ok := d.Tasks[taskID]; ok {
			tasks = append(tasks, t)
		}
	}

	tasks = filterTasks(tasks, func(t *model.Task) bool {
		switch q.Tab {
		case model.TabToday:
			return t.Status != model.StatusDone && isToday(t.Deadline, now)
		case model.TabUpcoming:
			return t.Status != model.StatusDone && isUpcoming(t.Deadline, now)
		case model.TabOverdue:
			return t.Status != model.StatusDone && isOverdue(t.Deadline, now)
		case model.TabDone:
			return t.Status == model.StatusDone
		default:
			return true
		}
	})

	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		tasks = filterTasks(tasks, func(t *model.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), term) ||
				strings.Contains(strings.ToLower(t.Notes), term)
		})
	}

	switch q.PriorityFilter {
	case model.PriorityHigh:
		tasks = filterTasks(tasks, func(t *model.Task) bool { return t.Priority >= 4 })
	case model.PriorityLow:
		tasks = filterTasks(tasks, func(t *model.Task) bool { return t.Priority <= 3 })
	}

	switch q.Sort {
	case model.SortDeadline:
		sort.SliceStable(tasks, func(i, j int) bool {
			return deadlineUnix(tasks[i]) < deadlineUnix(tasks[j])
		})
	case model.SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority > tasks[j].Priority
		})
	case model.SortManual:
		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].OrderIndex != tasks[j].OrderIndex {
				return tasks[i].OrderIndex < tasks[j].OrderIndex
			}
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	}

	return tasks
}

// VisibleTaskIDs is FilteredTasks reduced to ids, in display order.
func VisibleTaskIDs(d *model.Document, goalID string, q Query, now time.Time) []string {
	tasks := FilteredTasks(d, goalID, q, now)
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func filterTasks(tasks []*model.Task, keep func(*model.Task) bool) []*model.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// deadlineUnix orders deadlines ascending; a task with no deadline sorts
// after every task that has one.
func deadlineUnix(t *model.Task) int64 {
	day, ok := ParseDay(t.Deadline)
	if !ok {
		return math.MaxInt64
	}
	return day.Unix()
}
