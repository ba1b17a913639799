package mutate

import (
	"strings"
	"time"

	"momentum-cli/internal/model"
	"momentum-cli/internal/store"
)

// CreateGoal inserts a goal with defaults at the front of the goal order and
// selects it.
func CreateGoal(d *model.Document, now time.Time) *model.Goal {
	id := store.NewID(d, "goal")
	g := &model.Goal{
		ID:           id,
		Title:        "New Goal",
		CreatedAt:    now,
		TaskIDs:      []string{},
		ProgressMode: model.ProgressAuto,
	}
	d.Goals[id] = g
	d.GoalOrder = append([]string{id}, d.GoalOrder...)
	d.UI.SelectedGoalID = id
	d.UI.Page = model.PageGoal
	return g
}

// DeleteGoal removes the goal and cascades to all of its tasks (each of which
// cascades to its subtasks). If the deleted goal was selected, the first
// remaining goal becomes selected.
func DeleteGoal(d *model.Document, goalID string) error {
	goalID = strings.TrimSpace(goalID)
	g, ok := d.FindGoal(goalID)
	if !ok {
		return NotFoundError{Kind: "goal", ID: goalID}
	}
	for _, taskID := range append([]string(nil), g.TaskIDs...) {
		_ = DeleteTask(d, taskID)
	}
	delete(d.Goals, goalID)
	d.GoalOrder = removeID(d.GoalOrder, goalID)
	if d.UI.SelectedGoalID == goalID {
		if len(d.GoalOrder) > 0 {
			d.UI.SelectedGoalID = d.GoalOrder[0]
		} else {
			d.UI.SelectedGoalID = ""
		}
	}
	return nil
}

func SetGoalTitle(d *model.Document, goalID, title string) error {
	g, ok := d.FindGoal(goalID)
	if !ok {
		return NotFoundError{Kind: "goal", ID: goalID}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return errEmptyTitle("goal title")
	}
	g.Title = title
	return nil
}

func SetGoalDescription(d *model.Document, goalID, desc string) error {
	g, ok := d.FindGoal(goalID)
	if !ok {
		return NotFoundError{Kind: "goal", ID: goalID}
	}
	g.Description = strings.TrimSpace(desc)
	return nil
}

func SetGoalTargetDate(d *model.Document, goalID, date string) error {
	g, ok := d.FindGoal(goalID)
	if !ok {
		return NotFoundError{Kind: "goal", ID: goalID}
	}
	date = strings.TrimSpace(date)
	if !validDay(date) {
		return errBadDate("goal target date")
	}
	g.TargetDate = date
	return nil
}

func ToggleGoalArchived(d *model.Document, goalID string) error {
	g, ok := d.FindGoal(goalID)
	if !ok {
		return NotFoundError{Kind: "goal", ID: goalID}
	}
	g.Archived = !g.Archived
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

// validDay accepts an empty string (no date) or a YYYY-MM-DD calendar day.
func validDay(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
