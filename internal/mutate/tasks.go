package mutate

import (
	"strings"
	"time"

	"momentum-cli/internal/model"
	"momentum-cli/internal/store"
)

// CreateTask appends a task with defaults to the goal's list, expands it, and
// switches the view to the task board.
func CreateTask(d *model.Document, goalID string, now time.Time) (*model.Task, error) {
	goalID = strings.TrimSpace(goalID)
	g, ok := d.FindGoal(goalID)
	if !ok {
		return nil, NotFoundError{Kind: "goal", ID: goalID}
	}
	id := store.NewID(d, "task")
	t := &model.Task{
		ID:         id,
		GoalID:     goalID,
		Title:      "New Task",
		Priority:   3,
		Status:     model.StatusTodo,
		CreatedAt:  now,
		OrderIndex: len(g.TaskIDs),
		SubtaskIDs: []string{},
	}
	d.Tasks[id] = t
	g.TaskIDs = append(g.TaskIDs, id)
	if !d.IsExpanded(id) {
		d.UI.ExpandedTaskIDs = append(d.UI.ExpandedTaskIDs, id)
	}
	d.UI.Page = model.PageTasks
	return t, nil
}

// DeleteTask removes the task, cascades to its subtasks, and renumbers the
// owning goal's surviving tasks to a contiguous 0-based sequence.
func DeleteTask(d *model.Document, taskID string) error {
	taskID = strings.TrimSpace(taskID)
	t, ok := d.FindTask(taskID)
	if !ok {
		return NotFoundError{Kind: "task", ID: taskID}
	}
	for _, subID := range t.SubtaskIDs {
		delete(d.Subtasks, subID)
	}
	if g, ok := d.FindGoal(t.GoalID); ok {
		g.TaskIDs = removeID(g.TaskIDs, taskID)
		renumberTasks(d, g)
	}
	delete(d.Tasks, taskID)
	d.UI.ExpandedTaskIDs = removeID(d.UI.ExpandedTaskIDs, taskID)
	return nil
}

func SetTaskTitle(d *model.Document, taskID, title string) error {
	t, ok := d.FindTask(taskID)
	if !ok {
		return NotFoundError{Kind: "task", ID: taskID}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return errEmptyTitle("task title")
	}
	t.Title = title
	return nil
}

func SetTaskNotes(d *model.Document, taskID, notes string) error {
	t, ok := d.FindTask(taskID)
	if !ok {
		return NotFoundError{Kind: "task", ID: taskID}
	}
	t.Notes = strings.TrimSpace(notes)
	return nil
}

// SetTaskStatus keeps CompletedAt coupled to the status: moving to done
// stamps it with now, moving away clears it.
func SetTaskStatus(d *model.Document, taskID string, status model.Status, now time.Time) error {
	t, ok := d.FindTask(taskID)
	if !ok {
		return NotFoundError{Kind: "task", ID: taskID}
	}
	t.Status = status
	if status == model.StatusDone {
		at := now
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
	return nil
}

func SetTaskPriority(d *model.Document, taskID string, priority int) error {
	t, ok := d.FindTask(taskID)
	if !ok {
		return NotFoundError{Kind: "task", ID: taskID}
	}
	if priority < 1 || priority > 5 {
		return ValidationError{Field: "task priority", Reason: "must be between 1 and 5"}
	}
	t.Priority = priority
	return nil
}

func SetTaskDeadline(d *model.Document, taskID, deadline string) error {
	t, ok := d.FindTask(taskID)
	if !ok {
		return NotFoundError{Kind: "task", ID: taskID}
	}
	deadline = strings.TrimSpace(deadline)
	if !validDay(deadline) {
		return errBadDate("task deadline")
	}
	t.Deadline = deadline
	return nil
}

func SetTaskEstimate(d *model.Document, taskID string, minutes int) error {
	t, ok := d.FindTask(taskID)
	if !ok {
		return NotFoundError{Kind: "task", ID: taskID}
	}
	if minutes < 0 {
		return ValidationError{Field: "task estimate", Reason: "must be zero or more minutes"}
	}
	t.EstimateMinutes = minutes
	return nil
}

// renumberTasks reassigns OrderIndex 0..n-1 following the goal's task list.
func renumberTasks(d *model.Document, g *model.Goal) {
	for i, id := range g.TaskIDs {
		if t, ok := d.Tasks[id]; ok {
			t.OrderIndex = i
		}
	}
}
