package tui

import (
	"context"
	"fmt"
	"time"

	"momentum-cli/internal/model"
	"momentum-cli/internal/mutate"
	"momentum-cli/internal/store"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focus int

const (
	focusGoals focus = iota
	focusTasks
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Switch   key.Binding
	Select   key.Binding
	Toggle   key.Binding
	Expand   key.Binding
	Tab      key.Binding
	Sort     key.Binding
	Priority key.Binding
	Archived key.Binding
	Search   key.Binding
	Widget   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select goal")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle done")),
		Expand:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand subtasks")),
		Tab:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle tab")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
		Priority: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cycle priority")),
		Archived: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "show archived")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Widget:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "cycle widget")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Toggle, k.Tab, k.Search, k.Widget, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch, k.Select},
		{k.Toggle, k.Expand, k.Tab, k.Sort},
		{k.Priority, k.Archived, k.Search, k.Widget},
		{k.Reload, k.Help, k.Quit},
	}
}

type appModel struct {
	store store.Store
	doc   *model.Document

	width  int
	height int

	focus      focus
	goalCursor int
	taskCursor int

	searching bool
	search    textinput.Model

	keys keyMap
	help help.Model

	now func() time.Time

	status string
}

func newAppModel(s store.Store, doc *model.Document) appModel {
	ti := textinput.New()
	ti.Placeholder = "search tasks"
	ti.CharLimit = 120
	ti.SetValue(doc.UI.Search)

	m := appModel{
		store:  s,
		doc:    doc,
		keys:   defaultKeyMap(),
		help:   help.New(),
		search: ti,
		now:    func() time.Time { return time.Now().UTC() },
	}
	m.syncGoalCursor()
	return m
}

// Run starts the interactive dashboard over an already-loaded document.
func Run(s store.Store, doc *model.Document) error {
	initTheme()
	p := tea.NewProgram(newAppModel(s, doc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		mutate.SetSearch(m.doc, m.search.Value())
		m.save()
		m.taskCursor = 0
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.doc.UI.Search)
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		if m.focus == focusGoals {
			m.focus = focusTasks
		} else {
			m.focus = focusGoals
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.move(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.move(1)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.focus == focusGoals {
			if id := m.goalAtCursor(); id != "" {
				if err := mutate.SelectGoal(m.doc, id); err == nil {
					m.save()
					m.taskCursor = 0
				}
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.toggleTask()
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		if t := m.taskAtCursor(); t != nil {
			mutate.ToggleExpanded(m.doc, t.ID)
			m.save()
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		mutate.SetTab(m.doc, nextTab(m.doc.UI.Tab))
		m.save()
		m.taskCursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		mutate.SetSort(m.doc, nextSort(m.doc.UI.Sort))
		m.save()
		return m, nil

	case key.Matches(msg, m.keys.Priority):
		mutate.SetPriorityFilter(m.doc, nextPriority(m.doc.UI.PriorityFilter))
		m.save()
		m.taskCursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Archived):
		mutate.ToggleShowArchived(m.doc)
		m.save()
		m.syncGoalCursor()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.doc.UI.Search)
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Widget):
		if err := mutate.SetActiveWidget(m.doc, nextWidget(m.doc.UI.ActiveWidget)); err == nil {
			m.save()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if doc, err := m.store.Load(context.Background()); err == nil {
			m.doc = doc
			m.search.SetValue(doc.UI.Search)
			m.syncGoalCursor()
			m.taskCursor = 0
			m.status = "reloaded"
		} else {
			m.status = fmt.Sprintf("reload failed: %v", err)
		}
		return m, nil
	}
	return m, nil
}

func (m *appModel) move(delta int) {
	switch m.focus {
	case focusGoals:
		ids := m.visibleGoalIDs()
		m.goalCursor = clamp(m.goalCursor+delta, 0, len(ids)-1)
	case focusTasks:
		tasks := m.visibleTasks()
		m.taskCursor = clamp(m.taskCursor+delta, 0, len(tasks)-1)
	}
}

func (m *appModel) toggleTask() {
	t := m.taskAtCursor()
	if t == nil {
		return
	}
	next := model.StatusDone
	if t.Status == model.StatusDone {
		next = model.StatusTodo
	}
	if err := mutate.SetTaskStatus(m.doc, t.ID, next, m.now()); err == nil {
		m.save()
	}
}

func (m *appModel) save() {
	if err := m.store.Save(context.Background(), m.doc); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = ""
}

func (m *appModel) syncGoalCursor() {
	ids := m.visibleGoalIDs()
	for i, id := range ids {
		if id == m.doc.UI.SelectedGoalID {
			m.goalCursor = i
			return
		}
	}
	m.goalCursor = clamp(m.goalCursor, 0, len(ids)-1)
}

func (m appModel) goalAtCursor() string {
	ids := m.visibleGoalIDs()
	if m.goalCursor < 0 || m.goalCursor >= len(ids) {
		return ""
	}
	return ids[m.goalCursor]
}

func (m appModel) taskAtCursor() *model.Task {
	tasks := m.visibleTasks()
	if m.taskCursor < 0 || m.taskCursor >= len(tasks) {
		return nil
	}
	return tasks[m.taskCursor]
}

func (m appModel) visibleGoalIDs() []string {
	out := make([]string, 0, len(m.doc.GoalOrder))
	for _, id := range m.doc.GoalOrder {
		g, ok := m.doc.FindGoal(id)
		if !ok {
			continue
		}
		if g.Archived && !m.doc.UI.ShowArchived {
			continue
		}
		out = append(out, id)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func nextTab(t model.Tab) model.Tab {
	order := []model.Tab{model.TabAll, model.TabToday, model.TabUpcoming, model.TabOverdue, model.TabDone}
	return cycle(order, t)
}

func nextSort(s model.SortMode) model.SortMode {
	order := []model.SortMode{model.SortDeadline, model.SortPriority, model.SortManual}
	return cycle(order, s)
}

func nextPriority(p model.PriorityFilter) model.PriorityFilter {
	order := []model.PriorityFilter{model.PriorityAll, model.PriorityHigh, model.PriorityLow}
	return cycle(order, p)
}

func nextWidget(w string) string {
	order := []string{mutate.WidgetNone, mutate.WidgetNotes, mutate.WidgetWeekly, mutate.WidgetCalendar, mutate.WidgetUpcoming}
	return cycle(order, w)
}

func cycle[T comparable](order []T, cur T) T {
	for i, v := range order {
		if v == cur {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}
