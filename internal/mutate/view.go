package mutate

import (
	"strings"

	"momentum-cli/internal/model"
)

// View-intent operations. These mutate only presentation state, never domain
// entities.

func SelectGoal(d *model.Document, goalID string) error {
	goalID = strings.TrimSpace(goalID)
	if _, ok := d.FindGoal(goalID); !ok {
		return NotFoundError{Kind: "goal", ID: goalID}
	}
	d.UI.SelectedGoalID = goalID
	d.UI.Page = model.PageGoal
	return nil
}

func SetPage(d *model.Document, page model.Page) {
	d.UI.Page = page
}

func SetTab(d *model.Document, tab model.Tab) {
	d.UI.Tab = tab
}

func SetSearch(d *model.Document, search string) {
	d.UI.Search = search
}

func SetSort(d *model.Document, sort model.SortMode) {
	d.UI.Sort = sort
}

func SetPriorityFilter(d *model.Document, filter model.PriorityFilter) {
	d.UI.PriorityFilter = filter
}

func ToggleShowArchived(d *model.Document) {
	d.UI.ShowArchived = !d.UI.ShowArchived
}

func ToggleExpanded(d *model.Document, taskID string) {
	taskID = strings.TrimSpace(taskID)
	if d.IsExpanded(taskID) {
		d.UI.ExpandedTaskIDs = removeID(d.UI.ExpandedTaskIDs, taskID)
		return
	}
	d.UI.ExpandedTaskIDs = append(d.UI.ExpandedTaskIDs, taskID)
}

// Widget keys shown on the dashboard. Empty means no widget overlay.
const (
	WidgetNone     = ""
	WidgetNotes    = "notes"
	WidgetWeekly   = "weekly"
	WidgetCalendar = "calendar"
	WidgetUpcoming = "upcoming"
)

func SetActiveWidget(d *model.Document, key string) error {
	switch key {
	case WidgetNone, WidgetNotes, WidgetWeekly, WidgetCalendar, WidgetUpcoming:
		d.UI.ActiveWidget = key
		return nil
	default:
		return ValidationError{Field: "widget", Reason: "must be notes|weekly|calendar|upcoming or empty"}
	}
}
