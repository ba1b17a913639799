package tui

import (
	"fmt"
	"strings"
	"time"

	"momentum-cli/internal/derive"
	"momentum-cli/internal/model"
	"momentum-cli/internal/mutate"

	"github.com/charmbracelet/lipgloss"
)

const (
	goalPaneWidth = 44
	progressCells = 12
)

func (m appModel) visibleTasks() []*model.Task {
	return derive.FilteredTasks(m.doc, m.doc.UI.SelectedGoalID, derive.QueryFromView(m.doc.UI), m.now())
}

func (m appModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.viewGoals(), " ", m.viewTasks())
	b.WriteString(panes)

	if w := m.viewWidget(); w != "" {
		b.WriteString("\n")
		b.WriteString(w)
	}

	b.WriteString("\n")
	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(styleOverdue.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m appModel) viewHeader() string {
	st := derive.DashboardStats(m.doc, m.now())
	line := fmt.Sprintf("%d goals · %d active · %d done · %d overdue · %d due today",
		st.TotalGoals, st.ActiveTasks, st.DoneTasks, st.Overdue, st.DueToday)
	return styleTitle.Render("Momentum") + "  " + faintIfDark(styleMuted).Render(line)
}

func (m appModel) viewGoals() string {
	ids := m.visibleGoalIDs()
	var rows []string
	for i, id := range ids {
		g, ok := m.doc.FindGoal(id)
		if !ok {
			continue
		}
		title := g.Title
		if g.Archived {
			title += " (archived)"
		}
		line := fmt.Sprintf("%s %s", progressBar(derive.GoalProgress(m.doc, id)), title)
		if m.focus == focusGoals && i == m.goalCursor {
			line = styleSelected.Render(line)
		} else if id == m.doc.UI.SelectedGoalID {
			line = styleAccent.Render(line)
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		rows = []string{styleMuted.Render("no goals yet")}
	}
	card := styleCard
	if m.focus == focusGoals {
		card = styleCardSelected
	}
	body := styleTitle.Render("Goals") + "\n" + strings.Join(rows, "\n")
	return card.Width(goalPaneWidth).Render(body)
}

func (m appModel) viewTasks() string {
	tasks := m.visibleTasks()
	var rows []string
	for i, t := range tasks {
		line := taskLine(m.doc, t, m.now())
		if m.focus == focusTasks && i == m.taskCursor {
			line = styleSelected.Render(line)
		}
		rows = append(rows, line)
		if m.doc.IsExpanded(t.ID) {
			for _, sid := range t.SubtaskIDs {
				s, ok := m.doc.FindSubtask(sid)
				if !ok {
					continue
				}
				mark := "[ ]"
				st := styleMuted
				if s.Done {
					mark = "[x]"
					st = styleDone
				}
				rows = append(rows, "    "+st.Render(mark+" "+s.Title))
			}
		}
	}
	if len(rows) == 0 {
		rows = []string{styleMuted.Render("no matching tasks")}
	}

	header := fmt.Sprintf("Tasks · %s · sort %s", m.doc.UI.Tab, m.doc.UI.Sort)
	if m.doc.UI.PriorityFilter != model.PriorityAll {
		header += " · " + string(m.doc.UI.PriorityFilter) + " priority"
	}
	if m.doc.UI.Search != "" {
		header += fmt.Sprintf(" · %q", m.doc.UI.Search)
	}

	card := styleCard
	if m.focus == focusTasks {
		card = styleCardSelected
	}
	width := m.width - goalPaneWidth - 5
	if width < 40 {
		width = 40
	}
	body := styleTitle.Render(header) + "\n" + strings.Join(rows, "\n")
	return card.Width(width).Render(body)
}

func taskLine(d *model.Document, t *model.Task, now time.Time) string {
	mark := "[ ]"
	if t.Status == model.StatusDoing {
		mark = "[~]"
	} else if t.Status == model.StatusDone {
		mark = "[x]"
	}
	line := mark + " " + t.Title
	if done, total := derive.SubtaskStats(d, t.ID); total > 0 {
		line += faintIfDark(styleMuted).Render(fmt.Sprintf(" (%d/%d)", done, total))
	}
	if t.Priority >= 4 {
		line += " " + stylePriority.Render(fmt.Sprintf("P%d", t.Priority))
	}
	if t.Deadline != "" {
		ds := styleMuted
		if t.Status != model.StatusDone && isPastDue(t.Deadline, now) {
			ds = styleOverdue
		}
		line += " " + ds.Render("due "+t.Deadline)
	}
	if t.Status == model.StatusDone {
		line = styleDone.Render(line)
	}
	return line
}

func isPastDue(day string, now time.Time) bool {
	t, ok := derive.ParseDay(day)
	if !ok {
		return false
	}
	return t.Before(derive.StripTime(now.In(t.Location())))
}

func (m appModel) viewWidget() string {
	width := m.width - 4
	if width < 40 {
		width = 40
	}
	switch m.doc.UI.ActiveWidget {
	case mutate.WidgetNotes:
		return styleCard.Width(width).Render(m.viewNotes(width - 4))
	case mutate.WidgetWeekly:
		return styleCard.Width(width).Render(m.viewWeekly())
	case mutate.WidgetCalendar:
		return styleCard.Width(width).Render(m.viewCalendar())
	case mutate.WidgetUpcoming:
		return styleCard.Width(width).Render(m.viewUpcoming())
	}
	return ""
}

func (m appModel) viewNotes(width int) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Notes"))
	for _, id := range m.doc.NoteOrder {
		n, ok := m.doc.FindNote(id)
		if !ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(renderMarkdown("# "+n.Title+"\n\n"+n.Body, width))
	}
	if len(m.doc.NoteOrder) == 0 {
		b.WriteString("\n" + styleMuted.Render("no notes yet"))
	}
	return b.String()
}

func (m appModel) viewWeekly() string {
	days := derive.WeeklyProgress(m.doc, m.now())
	var b strings.Builder
	b.WriteString(styleTitle.Render("Completed this week"))
	for _, d := range days {
		bar := strings.Repeat("█", d.Count)
		if bar == "" {
			bar = styleMuted.Render("·")
		} else {
			bar = styleDone.Render(bar)
		}
		b.WriteString(fmt.Sprintf("\n%s  %s %d", d.Date, bar, d.Count))
	}
	return b.String()
}

func (m appModel) viewCalendar() string {
	grid := derive.Calendar(m.now())
	var b strings.Builder
	b.WriteString(styleTitle.Render(grid.MonthLabel))
	b.WriteString("\n" + styleMuted.Render("Su Mo Tu We Th Fr Sa"))
	for _, week := range grid.Weeks {
		b.WriteString("\n")
		cells := make([]string, 0, 7)
		for _, c := range week {
			if c == nil {
				cells = append(cells, "  ")
				continue
			}
			day := fmt.Sprintf("%2d", c.Day)
			if c.Key == grid.TodayKey {
				day = styleSelected.Render(day)
			} else if countDue(m.doc, c.Key) > 0 {
				day = styleAccent.Render(day)
			}
			cells = append(cells, day)
		}
		b.WriteString(strings.Join(cells, " "))
	}
	return b.String()
}

func countDue(d *model.Document, day string) int {
	n := 0
	for _, t := range d.Tasks {
		if t.Deadline == day && t.Status != model.StatusDone {
			n++
		}
	}
	return n
}

func (m appModel) viewUpcoming() string {
	tasks := derive.UpcomingTasks(m.doc, 8, m.now())
	var b strings.Builder
	b.WriteString(styleTitle.Render("Upcoming deadlines"))
	for _, t := range tasks {
		goal := ""
		if g, ok := m.doc.FindGoal(t.GoalID); ok {
			goal = " · " + g.Title
		}
		b.WriteString(fmt.Sprintf("\n%s  %s%s", t.Deadline, t.Title, faintIfDark(styleMuted).Render(goal)))
	}
	if len(tasks) == 0 {
		b.WriteString("\n" + styleMuted.Render("nothing scheduled"))
	}
	return b.String()
}

func progressBar(p float64) string {
	filled := int(p*float64(progressCells) + 0.5)
	if filled > progressCells {
		filled = progressCells
	}
	bar := styleDone.Render(strings.Repeat("█", filled)) +
		styleMuted.Render(strings.Repeat("░", progressCells-filled))
	return bar + fmt.Sprintf(" %3.0f%%", p*100)
}
