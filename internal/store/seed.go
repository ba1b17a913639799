package store

import (
	"time"

	"momentum-cli/internal/model"
)

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

// Seed builds the fixed example document used whenever no valid persisted
// state exists: two goals, six tasks, four subtasks, two notes. Target dates
// and deadlines are relative to now so the example board always has live
// today/upcoming/overdue content.
func Seed(now time.Time) *model.Document {
	d := &model.Document{
		Goals:    map[string]*model.Goal{},
		Tasks:    map[string]*model.Task{},
		Subtasks: map[string]*model.Subtask{},
		Notes:    map[string]*model.Note{},
	}

	goal1 := NewID(d, "goal")
	goal2 := NewID(d, "goal")
	d.Goals[goal1] = &model.Goal{
		ID:           goal1,
		Title:        "Launch Portfolio v2",
		Description:  "Refresh the case studies and ship a new personal site.",
		CreatedAt:    now,
		TargetDate:   dayKey(now.AddDate(0, 0, 14)),
		ProgressMode: model.ProgressAuto,
	}
	d.Goals[goal2] = &model.Goal{
		ID:           goal2,
		Title:        "Fitness Reset",
		Description:  "Build consistency with workouts and nutrition.",
		CreatedAt:    now,
		TargetDate:   dayKey(now.AddDate(0, 0, 30)),
		ProgressMode: model.ProgressAuto,
	}
	d.GoalOrder = []string{goal1, goal2}

	type seedTask struct {
		goalID   string
		title    string
		notes    string
		priority int
		deadline string
		estimate int
		status   model.Status
	}
	seeds := []seedTask{
		{goal1, "Audit old projects", "Mark outdated pieces and gather metrics.", 3, dayKey(now.AddDate(0, 0, 2)), 90, model.StatusDoing},
		{goal1, "Write new case study", "Focus on problem framing and results.", 5, dayKey(now.AddDate(0, 0, 6)), 180, model.StatusTodo},
		{goal1, "Deploy site", "Connect custom domain and test on mobile.", 4, dayKey(now.AddDate(0, 0, 10)), 60, model.StatusTodo},
		{goal2, "Plan weekly workouts", "Focus on strength split and cardio slots.", 4, dayKey(now.AddDate(0, 0, 1)), 45, model.StatusDone},
		{goal2, "Track meals for 7 days", "Log protein, fiber, and water intake.", 2, dayKey(now.AddDate(0, 0, 5)), 20, model.StatusDoing},
		{goal2, "Schedule recovery session", "Yoga or mobility flow.", 3, "", 30, model.StatusTodo},
	}
	taskIDs := make([]string, len(seeds))
	for i, st := range seeds {
		id := NewID(d, "task")
		taskIDs[i] = id
		t := &model.Task{
			ID:              id,
			GoalID:          st.goalID,
			Title:           st.title,
			Notes:           st.notes,
			Priority:        st.priority,
			Deadline:        st.deadline,
			EstimateMinutes: st.estimate,
			Status:          st.status,
			CreatedAt:       now,
			OrderIndex:      len(d.Goals[st.goalID].TaskIDs),
			SubtaskIDs:      []string{},
		}
		if st.status == model.StatusDone {
			at := now
			t.CompletedAt = &at
		}
		d.Tasks[id] = t
		d.Goals[st.goalID].TaskIDs = append(d.Goals[st.goalID].TaskIDs, id)
	}

	addSub := func(taskID, title string, done bool) {
		id := NewID(d, "sub")
		d.Subtasks[id] = &model.Subtask{ID: id, TaskID: taskID, Title: title, Done: done, CreatedAt: now}
		d.Tasks[taskID].SubtaskIDs = append(d.Tasks[taskID].SubtaskIDs, id)
	}
	addSub(taskIDs[0], "Collect screenshots", true)
	addSub(taskIDs[0], "Outline improvements", false)
	addSub(taskIDs[3], "Book gym slots", true)
	addSub(taskIDs[5], "Find local studio", false)

	weekly := NewID(d, "note")
	ideas := NewID(d, "note")
	d.Notes[weekly] = &model.Note{
		ID:        weekly,
		Title:     "Weekly check-in",
		Body:      "Review goals on Friday and plan Monday priorities.",
		CreatedAt: now,
	}
	d.Notes[ideas] = &model.Note{
		ID:        ideas,
		Title:     "Ideas",
		Body:      "Polish portfolio hero section and prep a short intro video.",
		CreatedAt: now,
	}
	d.NoteOrder = []string{ideas, weekly}

	d.UI = model.UIState{
		SelectedGoalID:  goal1,
		Page:            model.PageGoals,
		Tab:             model.TabAll,
		Sort:            model.SortDeadline,
		PriorityFilter:  model.PriorityAll,
		ExpandedTaskIDs: []string{},
	}
	return d
}
