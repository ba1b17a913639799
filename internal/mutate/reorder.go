package mutate

import (
	"sort"
	"strings"

	"momentum-cli/internal/model"
)

// ReorderTasks applies a drag-reorder. The caller supplies the task ids
// currently visible under the active filter/sort, in on-screen order; the
// dragged id is removed from that sequence and reinserted at the target's
// position. Tasks hidden by the filter are appended afterwards in their prior
// relative order, so a reorder never shuffles what the user can't see. The
// concatenation becomes the goal's task list, order indexes are renumbered,
// and the sort mode drops back to manual ordering (an explicit drag
// invalidates any computed sort).
func ReorderTasks(d *model.Document, draggedID, targetID string, visible []string) error {
	draggedID = strings.TrimSpace(draggedID)
	targetID = strings.TrimSpace(targetID)
	if draggedID == targetID {
		return ValidationError{Field: "reorder", Reason: "dragged and target tasks are the same"}
	}
	dragged, ok := d.FindTask(draggedID)
	if !ok {
		return NotFoundError{Kind: "task", ID: draggedID}
	}
	target, ok := d.FindTask(targetID)
	if !ok {
		return NotFoundError{Kind: "task", ID: targetID}
	}
	if dragged.GoalID != target.GoalID {
		return ValidationError{Field: "reorder", Reason: "tasks belong to different goals"}
	}
	g, ok := d.FindGoal(dragged.GoalID)
	if !ok {
		return NotFoundError{Kind: "goal", ID: dragged.GoalID}
	}

	// Keep only live tasks of this goal, preserving the caller's order.
	vis := make([]string, 0, len(visible))
	for _, id := range visible {
		if t, ok := d.Tasks[id]; ok && t.GoalID == g.ID {
			vis = append(vis, id)
		}
	}
	if indexOf(vis, draggedID) < 0 || indexOf(vis, targetID) < 0 {
		return ValidationError{Field: "reorder", Reason: "dragged and target tasks must both be visible"}
	}

	vis = removeID(vis, draggedID)
	ti := indexOf(vis, targetID)
	vis = append(vis[:ti], append([]string{draggedID}, vis[ti:]...)...)

	all := append([]string(nil), g.TaskIDs...)
	sort.SliceStable(all, func(i, j int) bool {
		return d.Tasks[all[i]].OrderIndex < d.Tasks[all[j]].OrderIndex
	})
	inVisible := map[string]bool{}
	for _, id := range vis {
		inVisible[id] = true
	}
	newOrder := vis
	for _, id := range all {
		if !inVisible[id] {
			newOrder = append(newOrder, id)
		}
	}

	g.TaskIDs = newOrder
	renumberTasks(d, g)
	d.UI.Sort = model.SortManual
	return nil
}

func indexOf(ids []string, id string) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}
