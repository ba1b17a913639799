package tui

import (
	"strings"
	"testing"
	"time"

	"momentum-cli/internal/model"
	"momentum-cli/internal/mutate"
	"momentum-cli/internal/store"

	xansi "github.com/charmbracelet/x/ansi"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testModel(t *testing.T) appModel {
	t.Helper()
	doc := store.Seed(testNow)
	m := newAppModel(store.Store{Dir: t.TempDir()}, doc)
	m.width, m.height = 110, 40
	m.now = func() time.Time { return testNow }
	return m
}

func plainView(m appModel) string {
	return xansi.Strip(m.View())
}

func TestViewRendersDashboard(t *testing.T) {
	m := testModel(t)
	out := plainView(m)

	for _, want := range []string{
		"Momentum",
		"Goals",
		"Launch Portfolio v2",
		"Fitness Reset",
		"Tasks",
		"Audit old projects",
		"Write new case study",
		"Deploy site",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	// The other goal's tasks stay off the board.
	if strings.Contains(out, "Plan weekly workouts") {
		t.Fatalf("view leaked tasks of an unselected goal:\n%s", out)
	}
}

func TestViewShowsSubtasksWhenExpanded(t *testing.T) {
	m := testModel(t)
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		t.Fatal("no visible tasks in seed")
	}
	var withSubs *model.Task
	for _, task := range tasks {
		if len(task.SubtaskIDs) > 0 {
			withSubs = task
			break
		}
	}
	if withSubs == nil {
		t.Fatal("no seeded task with subtasks on the board")
	}

	if out := plainView(m); strings.Contains(out, "Collect screenshots") {
		t.Fatalf("collapsed task shows subtasks:\n%s", out)
	}
	mutate.ToggleExpanded(m.doc, withSubs.ID)
	if out := plainView(m); !strings.Contains(out, "Collect screenshots") {
		t.Fatalf("expanded task hides subtasks:\n%s", out)
	}
}

func TestViewWidgets(t *testing.T) {
	m := testModel(t)

	cases := []struct {
		widget string
		want   string
	}{
		{mutate.WidgetNotes, "Weekly check-in"},
		{mutate.WidgetWeekly, "Completed this week"},
		{mutate.WidgetCalendar, "March 2026"},
		{mutate.WidgetUpcoming, "Upcoming deadlines"},
	}
	for _, tc := range cases {
		if err := mutate.SetActiveWidget(m.doc, tc.widget); err != nil {
			t.Fatalf("SetActiveWidget(%q): %v", tc.widget, err)
		}
		if out := plainView(m); !strings.Contains(out, tc.want) {
			t.Fatalf("widget %q: view missing %q:\n%s", tc.widget, tc.want, out)
		}
	}
}

func TestToggleTaskStampsStatus(t *testing.T) {
	m := testModel(t)
	m.focus = focusTasks
	m.taskCursor = 0

	first := m.visibleTasks()[0]
	if first.Status == model.StatusDone {
		t.Fatalf("seed's first visible task already done")
	}
	m.toggleTask()
	if first.Status != model.StatusDone || first.CompletedAt == nil {
		t.Fatalf("toggle did not complete the task: %+v", first)
	}
	m.toggleTask()
	if first.Status != model.StatusTodo || first.CompletedAt != nil {
		t.Fatalf("toggle did not reopen the task: %+v", first)
	}
}

func TestCycleHelpers(t *testing.T) {
	if got := nextTab(model.TabAll); got != model.TabToday {
		t.Fatalf("nextTab(all) = %q", got)
	}
	if got := nextTab(model.TabDone); got != model.TabAll {
		t.Fatalf("nextTab(done) = %q, want wrap to all", got)
	}
	if got := nextSort(model.SortManual); got != model.SortDeadline {
		t.Fatalf("nextSort(manual) = %q", got)
	}
	if got := nextWidget(mutate.WidgetUpcoming); got != mutate.WidgetNone {
		t.Fatalf("nextWidget(upcoming) = %q", got)
	}
	if got := nextWidget("bogus"); got != mutate.WidgetNone {
		t.Fatalf("nextWidget(bogus) = %q, want reset to none", got)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 2); got != 2 {
		t.Fatalf("clamp(5,0,2) = %d", got)
	}
	if got := clamp(-1, 0, 2); got != 0 {
		t.Fatalf("clamp(-1,0,2) = %d", got)
	}
	if got := clamp(3, 0, -1); got != 0 {
		t.Fatalf("clamp over empty range = %d", got)
	}
}
