package derive

import (
	"time"

	"momentum-cli/internal/model"
)

// SubtaskStats counts done and total subtasks of a task.
func SubtaskStats(d *model.Document, taskID string) (done, total int) {
	t, ok := d.FindTask(taskID)
	if !ok {
		return 0, 0
	}
	for _, subID := range t.SubtaskIDs {
		s, ok := d.Subtasks[subID]
		if !ok {
			continue
		}
		total++
		if s.Done {
			done++
		}
	}
	return done, total
}

// TaskCompletion is a task's completion ratio in [0,1]: subtask ratio when it
// has subtasks, otherwise 1 for done and 0 for anything else.
func TaskCompletion(d *model.Document, t *model.Task) float64 {
	done, total := SubtaskStats(d, t.ID)
	if total > 0 {
		return float64(done) / float64(total)
	}
	if t.Status == model.StatusDone {
		return 1
	}
	return 0
}

// GoalProgress is the mean completion over the goal's tasks, in [0,1].
// A goal with no tasks has progress 0.
func GoalProgress(d *model.Document, goalID string) float64 {
	g, ok := d.FindGoal(goalID)
	if !ok || len(g.TaskIDs) == 0 {
		return 0
	}
	var sum float64
	for _, taskID := range g.TaskIDs {
		if t, ok := d.Tasks[taskID]; ok {
			sum += TaskCompletion(d, t)
		}
	}
	return sum / float64(len(g.TaskIDs))
}

// CountOverdue counts the goal's non-done tasks with a deadline before today.
func CountOverdue(d *model.Document, goalID string, now time.Time) int {
	return countGoalTasks(d, goalID, func(t *model.Task) bool {
		return t.Status != model.StatusDone && isOverdue(t.Deadline, now)
	})
}

// CountDueToday counts the goal's non-done tasks with today's deadline.
func CountDueToday(d *model.Document, goalID string, now time.Time) int {
	return countGoalTasks(d, goalID, func(t *model.Task) bool {
		return t.Status != model.StatusDone && isToday(t.Deadline, now)
	})
}

func countGoalTasks(d *model.Document, goalID string, pred func(*model.Task) bool) int {
	g, ok := d.FindGoal(goalID)
	if !ok {
		return 0
	}
	n := 0
	for _, taskID := range g.TaskIDs {
		if t, ok := d.Tasks[taskID]; ok && pred(t) {
			n++
		}
	}
	return n
}
