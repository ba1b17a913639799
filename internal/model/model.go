package model

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo":
		return StatusTodo, nil
	case "doing":
		return StatusDoing, nil
	case "done":
		return StatusDone, nil
	default:
		return "", fmt.Errorf("invalid status: %q (expected todo|doing|done)", s)
	}
}

// SortMode selects task board ordering. SortManual is the insertion/orderIndex
// ordering; a drag-reorder forces the board back into this mode.
type SortMode string

const (
	SortDeadline SortMode = "deadline"
	SortPriority SortMode = "priority"
	SortManual   SortMode = "createdAt"
)

func ParseSortMode(s string) (SortMode, error) {
	switch strings.TrimSpace(s) {
	case "deadline":
		return SortDeadline, nil
	case "priority":
		return SortPriority, nil
	case "createdAt", "manual":
		return SortManual, nil
	default:
		return "", fmt.Errorf("invalid sort mode: %q (expected deadline|priority|createdAt)", s)
	}
}

type Tab string

const (
	TabAll      Tab = "all"
	TabToday    Tab = "today"
	TabUpcoming Tab = "upcoming"
	TabOverdue  Tab = "overdue"
	TabDone     Tab = "done"
)

func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return TabAll, nil
	case "today":
		return TabToday, nil
	case "upcoming":
		return TabUpcoming, nil
	case "overdue":
		return TabOverdue, nil
	case "done":
		return TabDone, nil
	default:
		return "", fmt.Errorf("invalid tab: %q (expected all|today|upcoming|overdue|done)", s)
	}
}

type PriorityFilter string

const (
	PriorityAll  PriorityFilter = "all"
	PriorityHigh PriorityFilter = "high" // priority 4-5
	PriorityLow  PriorityFilter = "low"  // priority 1-3
)

func ParsePriorityFilter(s string) (PriorityFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return PriorityAll, nil
	case "high":
		return PriorityHigh, nil
	case "low":
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("invalid priority filter: %q (expected all|high|low)", s)
	}
}

type Page string

const (
	PageGoals Page = "goals"
	PageGoal  Page = "goal"
	PageTasks Page = "tasks"
)

func ParsePage(s string) (Page, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "goals":
		return PageGoals, nil
	case "goal":
		return PageGoal, nil
	case "tasks":
		return PageTasks, nil
	default:
		return "", fmt.Errorf("invalid page: %q (expected goals|goal|tasks)", s)
	}
}

type ProgressMode string

// ProgressAuto is the only mode: progress is derived from task/subtask
// completion. The field is persisted so future modes don't need a migration.
const ProgressAuto ProgressMode = "auto"

type Goal struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	TargetDate   string       `json:"targetDate,omitempty"` // YYYY-MM-DD, empty = no target
	Archived     bool         `json:"archived"`
	TaskIDs      []string     `json:"tasks"`
	ProgressMode ProgressMode `json:"progressMode"`
}

type Task struct {
	ID     string `json:"id"`
	GoalID string `json:"goalId"`

	Title           string `json:"title"`
	Notes           string `json:"notes,omitempty"`
	Priority        int    `json:"priority"`           // 1..5
	Deadline        string `json:"deadline,omitempty"` // YYYY-MM-DD, empty = none
	EstimateMinutes int    `json:"estimateMinutes"`
	Status          Status `json:"status"`

	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"` // set iff Status == done

	// OrderIndex is the task's position within its goal's task list.
	// Always a contiguous 0-based sequence per goal.
	OrderIndex int      `json:"orderIndex"`
	SubtaskIDs []string `json:"subtaskIds"`
}

type Subtask struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// Note lives on the free-form notes board, independent of any goal.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UIState is pure presentation state. Domain mutations never touch it except
// where an operation's contract says so (selection fixup on goal delete,
// expanded-set cleanup on task delete, sort reset on reorder).
type UIState struct {
	SelectedGoalID  string         `json:"selectedGoalId,omitempty"`
	ShowArchived    bool           `json:"showArchived"`
	Page            Page           `json:"page"`
	Tab             Tab            `json:"tab"`
	Search          string         `json:"search,omitempty"`
	Sort            SortMode       `json:"sort"`
	PriorityFilter  PriorityFilter `json:"priorityFilter"`
	ExpandedTaskIDs []string       `json:"expandedTaskIds"`
	DashboardNotes  string         `json:"dashboardNotes,omitempty"`
	ActiveWidget    string         `json:"activeWidget,omitempty"`
}

// Document is the whole persisted tree: entities in flat id-keyed maps,
// ownership expressed through membership lists (Goal.TaskIDs, Task.SubtaskIDs,
// GoalOrder, NoteOrder).
type Document struct {
	Goals     map[string]*Goal    `json:"goals"`
	GoalOrder []string            `json:"goalOrder"`
	Tasks     map[string]*Task    `json:"tasks"`
	Subtasks  map[string]*Subtask `json:"subtasks"`
	Notes     map[string]*Note    `json:"notes"`
	NoteOrder []string            `json:"noteOrder"`
	UI        UIState             `json:"ui"`
}

func (d *Document) FindGoal(id string) (*Goal, bool) {
	g, ok := d.Goals[strings.TrimSpace(id)]
	return g, ok
}

func (d *Document) FindTask(id string) (*Task, bool) {
	t, ok := d.Tasks[strings.TrimSpace(id)]
	return t, ok
}

func (d *Document) FindSubtask(id string) (*Subtask, bool) {
	s, ok := d.Subtasks[strings.TrimSpace(id)]
	return s, ok
}

func (d *Document) FindNote(id string) (*Note, bool) {
	n, ok := d.Notes[strings.TrimSpace(id)]
	return n, ok
}

func (d *Document) IsExpanded(taskID string) bool {
	for _, id := range d.UI.ExpandedTaskIDs {
		if id == taskID {
			return true
		}
	}
	return false
}
