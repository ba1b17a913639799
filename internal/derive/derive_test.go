package derive

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"momentum-cli/internal/model"
)

// noon in the local zone keeps day-boundary comparisons unambiguous.
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

func day(offset int) string {
	return testNow.AddDate(0, 0, offset).Format("2006-01-02")
}

type taskSpec struct {
	id       string
	title    string
	notes    string
	status   model.Status
	priority int
	deadline string
}

func buildDoc(specs ...taskSpec) *model.Document {
	d := &model.Document{
		Goals:    map[string]*model.Goal{},
		Tasks:    map[string]*model.Task{},
		Subtasks: map[string]*model.Subtask{},
		Notes:    map[string]*model.Note{},
	}
	g := &model.Goal{ID: "goal-g1", Title: "Goal", CreatedAt: testNow, ProgressMode: model.ProgressAuto}
	d.Goals[g.ID] = g
	d.GoalOrder = []string{g.ID}
	d.UI.SelectedGoalID = g.ID

	for i, s := range specs {
		t := &model.Task{
			ID:         s.id,
			GoalID:     g.ID,
			Title:      s.title,
			Notes:      s.notes,
			Status:     s.status,
			Priority:   s.priority,
			Deadline:   s.deadline,
			CreatedAt:  testNow.Add(time.Duration(i) * time.Minute),
			OrderIndex: i,
			SubtaskIDs: []string{},
		}
		if s.status == model.StatusDone {
			at := testNow
			t.CompletedAt = &at
		}
		d.Tasks[t.ID] = t
		g.TaskIDs = append(g.TaskIDs, t.ID)
	}
	return d
}

func addSubtask(d *model.Document, taskID string, done bool) {
	id := fmt.Sprintf("sub-%d", len(d.Subtasks)+1)
	d.Subtasks[id] = &model.Subtask{ID: id, TaskID: taskID, Title: "step", Done: done, CreatedAt: testNow}
	d.Tasks[taskID].SubtaskIDs = append(d.Tasks[taskID].SubtaskIDs, id)
}

func visibleIDs(tasks []*model.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestGoalProgressMixesStatusAndSubtasks(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-a", title: "a", status: model.StatusDone, priority: 3},
		taskSpec{id: "task-b", title: "b", status: model.StatusTodo, priority: 3},
		taskSpec{id: "task-c", title: "c", status: model.StatusDoing, priority: 3},
	)
	addSubtask(d, "task-c", true)
	addSubtask(d, "task-c", false)

	got := GoalProgress(d, "goal-g1")
	want := (1.0 + 0.0 + 0.5) / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("GoalProgress = %v, want %v", got, want)
	}
}

func TestGoalProgressEmptyGoal(t *testing.T) {
	d := buildDoc()
	if got := GoalProgress(d, "goal-g1"); got != 0 {
		t.Fatalf("GoalProgress = %v, want 0 for a goal with no tasks", got)
	}
	if got := GoalProgress(d, "goal-missing"); got != 0 {
		t.Fatalf("GoalProgress = %v, want 0 for an unknown goal", got)
	}
}

func TestTaskCompletionSubtasksWinOverStatus(t *testing.T) {
	d := buildDoc(taskSpec{id: "task-a", title: "a", status: model.StatusDone, priority: 3})
	addSubtask(d, "task-a", false)
	addSubtask(d, "task-a", false)

	// With subtasks present the ratio rules, even for a done task.
	if got := TaskCompletion(d, d.Tasks["task-a"]); got != 0 {
		t.Fatalf("TaskCompletion = %v, want 0", got)
	}
}

func TestFilteredTasksTabs(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-past", title: "past", status: model.StatusTodo, priority: 3, deadline: day(-2)},
		taskSpec{id: "task-today", title: "today", status: model.StatusDoing, priority: 3, deadline: day(0)},
		taskSpec{id: "task-soon", title: "soon", status: model.StatusTodo, priority: 3, deadline: day(3)},
		taskSpec{id: "task-done", title: "finished", status: model.StatusDone, priority: 3, deadline: day(-1)},
		taskSpec{id: "task-open", title: "open ended", status: model.StatusTodo, priority: 3},
	)

	cases := []struct {
		tab  model.Tab
		want []string
	}{
		{model.TabAll, []string{"task-past", "task-today", "task-soon", "task-done", "task-open"}},
		{model.TabToday, []string{"task-today"}},
		{model.TabUpcoming, []string{"task-soon"}},
		{model.TabOverdue, []string{"task-past"}},
		{model.TabDone, []string{"task-done"}},
	}
	for _, tc := range cases {
		got := visibleIDs(FilteredTasks(d, "goal-g1", Query{Tab: tc.tab, Sort: model.SortManual}, testNow))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("tab %q: got %v, want %v", tc.tab, got, tc.want)
		}
	}
}

func TestFilteredTasksSearchMatchesTitleAndNotes(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-a", title: "Deploy SITE", status: model.StatusTodo, priority: 3},
		taskSpec{id: "task-b", title: "Write copy", notes: "mention the site launch", status: model.StatusTodo, priority: 3},
		taskSpec{id: "task-c", title: "Unrelated", status: model.StatusTodo, priority: 3},
	)
	got := visibleIDs(FilteredTasks(d, "goal-g1", Query{Tab: model.TabAll, Search: "  SiTe ", Sort: model.SortManual}, testNow))
	if want := []string{"task-a", "task-b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("search: got %v, want %v", got, want)
	}
}

func TestFilteredTasksPriorityBuckets(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-low", title: "low", status: model.StatusTodo, priority: 2},
		taskSpec{id: "task-mid", title: "mid", status: model.StatusTodo, priority: 3},
		taskSpec{id: "task-high", title: "high", status: model.StatusTodo, priority: 4},
		taskSpec{id: "task-top", title: "top", status: model.StatusTodo, priority: 5},
	)

	got := visibleIDs(FilteredTasks(d, "goal-g1", Query{Tab: model.TabAll, PriorityFilter: model.PriorityHigh, Sort: model.SortManual}, testNow))
	if want := []string{"task-high", "task-top"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("high bucket: got %v, want %v", got, want)
	}
	got = visibleIDs(FilteredTasks(d, "goal-g1", Query{Tab: model.TabAll, PriorityFilter: model.PriorityLow, Sort: model.SortManual}, testNow))
	if want := []string{"task-low", "task-mid"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("low bucket: got %v, want %v", got, want)
	}
}

func TestFilteredTasksDeadlineSortPushesUndatedLast(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-none", title: "no deadline", status: model.StatusTodo, priority: 3},
		taskSpec{id: "task-late", title: "late", status: model.StatusTodo, priority: 3, deadline: day(9)},
		taskSpec{id: "task-soon", title: "soon", status: model.StatusTodo, priority: 3, deadline: day(1)},
	)
	got := visibleIDs(FilteredTasks(d, "goal-g1", Query{Tab: model.TabAll, Sort: model.SortDeadline}, testNow))
	if want := []string{"task-soon", "task-late", "task-none"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("deadline sort: got %v, want %v", got, want)
	}
}

func TestFilteredTasksPrioritySortIsStable(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-a", title: "a", status: model.StatusTodo, priority: 3},
		taskSpec{id: "task-b", title: "b", status: model.StatusTodo, priority: 5},
		taskSpec{id: "task-c", title: "c", status: model.StatusTodo, priority: 3},
	)
	got := visibleIDs(FilteredTasks(d, "goal-g1", Query{Tab: model.TabAll, Sort: model.SortPriority}, testNow))
	// Equal priorities keep their list order.
	if want := []string{"task-b", "task-a", "task-c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("priority sort: got %v, want %v", got, want)
	}
}

func TestDashboardStats(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-past", title: "past", status: model.StatusTodo, priority: 3, deadline: day(-2)},
		taskSpec{id: "task-today", title: "today", status: model.StatusDoing, priority: 3, deadline: day(0)},
		taskSpec{id: "task-done", title: "done", status: model.StatusDone, priority: 3, deadline: day(-1)},
	)
	d.Goals["goal-g2"] = &model.Goal{ID: "goal-g2", Title: "Archived", Archived: true, CreatedAt: testNow}
	d.GoalOrder = append(d.GoalOrder, "goal-g2")

	got := DashboardStats(d, testNow)
	want := Stats{TotalGoals: 2, ActiveGoals: 1, ActiveTasks: 2, DoneTasks: 1, Overdue: 1, DueToday: 1}
	if got != want {
		t.Fatalf("DashboardStats = %+v, want %+v", got, want)
	}
}

func TestUpcomingTasksSortedAndLimited(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-c", title: "c", status: model.StatusTodo, priority: 3, deadline: day(5)},
		taskSpec{id: "task-a", title: "a", status: model.StatusTodo, priority: 3, deadline: day(1)},
		taskSpec{id: "task-b", title: "b", status: model.StatusTodo, priority: 3, deadline: day(1)},
		taskSpec{id: "task-done", title: "done", status: model.StatusDone, priority: 3, deadline: day(2)},
		taskSpec{id: "task-none", title: "none", status: model.StatusTodo, priority: 3},
	)

	got := visibleIDs(UpcomingTasks(d, 0, testNow))
	if want := []string{"task-a", "task-b", "task-c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("UpcomingTasks = %v, want %v", got, want)
	}
	if got := UpcomingTasks(d, 2, testNow); len(got) != 2 {
		t.Fatalf("limit ignored: got %d tasks", len(got))
	}
}

func TestWeeklyProgress(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-a", title: "a", status: model.StatusDone, priority: 3},
		taskSpec{id: "task-b", title: "b", status: model.StatusDone, priority: 3},
		taskSpec{id: "task-c", title: "c", status: model.StatusDone, priority: 3},
	)
	twoDaysAgo := testNow.AddDate(0, 0, -2)
	d.Tasks["task-b"].CompletedAt = &twoDaysAgo
	longAgo := testNow.AddDate(0, 0, -10)
	d.Tasks["task-c"].CompletedAt = &longAgo

	days := WeeklyProgress(d, testNow)
	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}
	if days[0].Date != day(-6) || days[6].Date != day(0) {
		t.Fatalf("window = %s..%s, want %s..%s", days[0].Date, days[6].Date, day(-6), day(0))
	}
	total := 0
	for _, dc := range days {
		total += dc.Count
	}
	if total != 2 {
		t.Fatalf("total completions in window = %d, want 2", total)
	}
	if days[4].Count != 1 || days[6].Count != 1 {
		t.Fatalf("counts misplaced: %+v", days)
	}
}

func TestCalendarShape(t *testing.T) {
	// March 2026 starts on a Sunday and has 31 days: five full-width rows.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	grid := Calendar(now)

	if grid.MonthLabel != "March 2026" {
		t.Fatalf("MonthLabel = %q", grid.MonthLabel)
	}
	if grid.TodayKey != "2026-03-10" {
		t.Fatalf("TodayKey = %q", grid.TodayKey)
	}
	if len(grid.Weeks) != 5 {
		t.Fatalf("got %d weeks, want 5", len(grid.Weeks))
	}
	for i, week := range grid.Weeks {
		if len(week) != 7 {
			t.Fatalf("week %d has width %d", i, len(week))
		}
	}
	if c := grid.Weeks[0][0]; c == nil || c.Day != 1 || c.Key != "2026-03-01" {
		t.Fatalf("first cell = %+v", c)
	}
	if c := grid.Weeks[4][2]; c == nil || c.Day != 31 {
		t.Fatalf("last cell = %+v", c)
	}
	if c := grid.Weeks[4][3]; c != nil {
		t.Fatalf("trailing slot not nil: %+v", c)
	}
}

func TestCalendarLeadingPadding(t *testing.T) {
	// May 2026 starts on a Friday.
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.Local)
	grid := Calendar(now)

	for i := 0; i < 5; i++ {
		if grid.Weeks[0][i] != nil {
			t.Fatalf("leading slot %d not nil", i)
		}
	}
	if c := grid.Weeks[0][5]; c == nil || c.Day != 1 {
		t.Fatalf("first day cell = %+v", c)
	}
}

func TestCountOverdueAndDueToday(t *testing.T) {
	d := buildDoc(
		taskSpec{id: "task-past", title: "past", status: model.StatusTodo, priority: 3, deadline: day(-3)},
		taskSpec{id: "task-pastdone", title: "past done", status: model.StatusDone, priority: 3, deadline: day(-3)},
		taskSpec{id: "task-today", title: "today", status: model.StatusTodo, priority: 3, deadline: day(0)},
	)
	if got := CountOverdue(d, "goal-g1", testNow); got != 1 {
		t.Fatalf("CountOverdue = %d, want 1", got)
	}
	if got := CountDueToday(d, "goal-g1", testNow); got != 1 {
		t.Fatalf("CountDueToday = %d, want 1", got)
	}
}
