package mutate

import (
	"strings"
	"time"

	"momentum-cli/internal/model"
	"momentum-cli/internal/store"
)

func CreateSubtask(d *model.Document, taskID, title string, now time.Time) (*model.Subtask, error) {
	taskID = strings.TrimSpace(taskID)
	t, ok := d.FindTask(taskID)
	if !ok {
		return nil, NotFoundError{Kind: "task", ID: taskID}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errEmptyTitle("subtask title")
	}
	id := store.NewID(d, "sub")
	s := &model.Subtask{
		ID:        id,
		TaskID:    taskID,
		Title:     title,
		CreatedAt: now,
	}
	d.Subtasks[id] = s
	t.SubtaskIDs = append(t.SubtaskIDs, id)
	return s, nil
}

func DeleteSubtask(d *model.Document, subtaskID string) error {
	subtaskID = strings.TrimSpace(subtaskID)
	s, ok := d.FindSubtask(subtaskID)
	if !ok {
		return NotFoundError{Kind: "subtask", ID: subtaskID}
	}
	if t, ok := d.FindTask(s.TaskID); ok {
		t.SubtaskIDs = removeID(t.SubtaskIDs, subtaskID)
	}
	delete(d.Subtasks, subtaskID)
	return nil
}

func ToggleSubtaskDone(d *model.Document, subtaskID string) error {
	s, ok := d.FindSubtask(subtaskID)
	if !ok {
		return NotFoundError{Kind: "subtask", ID: subtaskID}
	}
	s.Done = !s.Done
	return nil
}

func SetSubtaskTitle(d *model.Document, subtaskID, title string) error {
	s, ok := d.FindSubtask(subtaskID)
	if !ok {
		return NotFoundError{Kind: "subtask", ID: subtaskID}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return errEmptyTitle("subtask title")
	}
	s.Title = title
	return nil
}
