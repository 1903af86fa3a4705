package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"ticklist/internal/commands"
	"ticklist/internal/model"
	"ticklist/internal/project"
	"ticklist/internal/reconcile"
	"ticklist/internal/store"
	"ticklist/internal/views"
)

type Mode string

const (
	ModeBrowse  Mode = "browse"
	ModeAdd     Mode = "add"
	ModeEdit    Mode = "edit"
	ModeSearch  Mode = "search"
	ModePalette Mode = "palette"
	ModeSubAdd  Mode = "subadd"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add     string
	Edit    string
	Cycle   string
	Delete  string
	Undo    string
	Filter  string
	Sort    string
	Search  string
	Palette string
	Theme   string
	Pane    string
	Help    string
	Quit    string
}

// ThemePersister is the slice of the persistence gateway the presentation
// layer needs for the theme slot.
type ThemePersister interface {
	SaveThemeMode(ctx context.Context, mode int) error
}

type StoreEventMsg struct {
	Event store.Event
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

// Model is the presentation layer: it owns no task data, only the store
// reference, the latest projection snapshot and the widgets rendering it.
type Model struct {
	Store       *store.Store
	Mode        Mode
	Theme       views.Theme
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	PaneFocused bool
	SubCursor   int
	Quitting    bool

	themes      ThemePersister
	cfg         RuntimeConfig
	events      <-chan store.Event
	visible     []project.Entry
	selectedID  string
	lastOps     []reconcile.Op
	lastRemoved *model.Task

	taskList     list.Model
	addInput     textinput.Model
	searchInput  textinput.Model
	paletteInput textinput.Model
	subInput     textinput.Model
	detailView   viewport.Model
	helpModel    help.Model
}

func NewModel(st *store.Store, themes ThemePersister, themeMode int, cfg RuntimeConfig) Model {
	m := Model{
		Store:  st,
		Mode:   ModeBrowse,
		Theme:  views.ThemeForMode(themeMode),
		themes: themes,
		cfg:    cfg,
		events: st.Subscribe(cfg.EventBuffer),
		Keys: GlobalKeyMap{
			Add:     "a",
			Edit:    "e",
			Cycle:   "p",
			Delete:  "d",
			Undo:    "u",
			Filter:  "f",
			Sort:    "o",
			Search:  "/",
			Palette: ":",
			Theme:   "t",
			Pane:    "tab",
			Help:    "?",
			Quit:    "q",
		},
	}
	m.initWidgets()
	m.refreshVisible()
	return m
}

func (m *Model) initWidgets() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), m.cfg.ListWidth, m.cfg.ListHeight)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)
	m.taskList.SetShowStatusBar(false)

	m.addInput = textinput.New()
	m.addInput.Prompt = "title> "
	m.addInput.CharLimit = 256
	m.addInput.Width = 42

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "search> "
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 42

	m.paletteInput = textinput.New()
	m.paletteInput.Prompt = ":"
	m.paletteInput.CharLimit = 256
	m.paletteInput.Width = 48

	m.subInput = textinput.New()
	m.subInput.Prompt = "sub> "
	m.subInput.CharLimit = 256
	m.subInput.Width = 42

	m.detailView = viewport.New(54, m.cfg.ListHeight)
	m.helpModel = help.New()
}

func (m Model) Init() tea.Cmd {
	return waitForStoreCmd(m.events)
}

func waitForStoreCmd(ch <-chan store.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return StoreEventMsg{Event: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch m.Mode {
		case ModeAdd, ModeEdit:
			return m.handleAddKey(typed), nil
		case ModeSearch:
			return m.handleSearchKey(typed), nil
		case ModePalette:
			return m.handlePaletteKey(typed), nil
		case ModeSubAdd:
			return m.handleSubAddKey(typed), nil
		}
		return m.handleBrowseKey(typed)
	case StoreEventMsg:
		m.refreshVisible()
		if typed.Event.SaveErr != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("save failed (changes kept in memory): %v", typed.Event.SaveErr), IsError: true}
		}
		return m, waitForStoreCmd(m.events)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	if m.PaneFocused {
		if handled, next := m.handlePaneKey(ctx, msg); handled {
			return next, nil
		}
	}

	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case " ", "enter":
		if idx, ok := m.selectedCanonical(); ok {
			m.Store.ToggleTask(ctx, idx)
		}
	case m.Keys.Add:
		m.Mode = ModeAdd
		m.addInput.SetValue("")
		m.addInput.Focus()
		m.Status = StatusBar{Text: "new task: type title, enter to save, append !low/!med/!high for priority"}
	case m.Keys.Edit:
		if entry, ok := m.selectedEntry(); ok {
			m.Mode = ModeEdit
			m.addInput.SetValue(entry.Task.Title)
			m.addInput.Focus()
			m.Status = StatusBar{Text: "edit title, enter to save"}
		}
	case m.Keys.Cycle:
		if idx, ok := m.selectedCanonical(); ok {
			task := m.Store.Snapshot()[idx]
			next := (task.Priority + 1) % model.Priority(3)
			m.Store.UpdateTask(ctx, idx, task.Title, next)
			m.Status = StatusBar{Text: fmt.Sprintf("priority: %s", next)}
		}
	case m.Keys.Delete:
		if idx, ok := m.selectedCanonical(); ok {
			if removed, ok := m.Store.DeleteTask(ctx, idx); ok {
				m.lastRemoved = &removed
				m.Status = StatusBar{Text: fmt.Sprintf("removed %q (%s to undo)", removed.Title, m.Keys.Undo)}
			}
		}
	case m.Keys.Undo:
		if restored, ok := m.Store.Undo(ctx); ok {
			m.lastRemoved = nil
			m.Status = StatusBar{Text: fmt.Sprintf("restored %q", restored.Title)}
		} else {
			m.Status = StatusBar{Text: "nothing to undo"}
		}
	case m.Keys.Filter:
		m.Store.SetFilter(nextFilter(m.Store.Params().Filter))
		m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", m.Store.Params().Filter)}
	case m.Keys.Sort:
		m.Store.ToggleSortOrder()
		m.Status = StatusBar{Text: fmt.Sprintf("order: %s", orderName(m.Store.Params().Order))}
	case m.Keys.Search:
		m.Mode = ModeSearch
		m.searchInput.SetValue(m.Store.Params().Query)
		m.searchInput.Focus()
	case m.Keys.Palette:
		m.Mode = ModePalette
		m.paletteInput.SetValue("")
		m.paletteInput.Focus()
	case m.Keys.Theme:
		m.cycleTheme(ctx)
	case m.Keys.Pane:
		m.PaneFocused = !m.PaneFocused
		m.SubCursor = 0
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		m.Store.Close()
		return m, tea.Quit
	}
	return m, nil
}

// handlePaneKey consumes keys owned by the focused sub-task pane; anything
// else falls through to the browse bindings.
func (m *Model) handlePaneKey(ctx context.Context, msg tea.KeyMsg) (bool, Model) {
	entry, ok := m.selectedEntry()
	if !ok {
		return false, *m
	}
	switch msg.String() {
	case "j", "down":
		if m.SubCursor < len(entry.Task.SubTasks)-1 {
			m.SubCursor++
		}
		return true, *m
	case "k", "up":
		if m.SubCursor > 0 {
			m.SubCursor--
		}
		return true, *m
	case " ", "enter":
		if idx, ok := m.selectedCanonical(); ok {
			m.Store.ToggleSubTask(ctx, idx, m.SubCursor)
		}
		return true, *m
	case "x":
		if idx, ok := m.selectedCanonical(); ok {
			m.Store.RemoveSubTask(ctx, idx, m.SubCursor)
			if m.SubCursor > 0 {
				m.SubCursor--
			}
		}
		return true, *m
	case "n":
		m.Mode = ModeSubAdd
		m.subInput.SetValue("")
		m.subInput.Focus()
		return true, *m
	}
	return false, *m
}

func (m Model) handleAddKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.addInput.Blur()
		m.Status = StatusBar{}
	case "enter":
		raw := strings.TrimSpace(m.addInput.Value())
		title, priority := splitPriorityFlag(raw)
		if title == "" {
			// Caller-side validation: the store never sees blank titles.
			m.Status = StatusBar{Text: "title must not be empty", IsError: true}
			return m
		}
		ctx := context.Background()
		if m.Mode == ModeEdit {
			if idx, ok := m.selectedCanonical(); ok {
				if raw == title {
					priority = m.Store.Snapshot()[idx].Priority
				}
				m.Store.UpdateTask(ctx, idx, title, priority)
				m.Status = StatusBar{Text: fmt.Sprintf("updated %q", title)}
			}
		} else {
			task := m.Store.AddTask(ctx, title, priority)
			m.selectedID = task.ID
			m.Status = StatusBar{Text: fmt.Sprintf("added %q (%s)", task.Title, task.Priority)}
		}
		m.Mode = ModeBrowse
		m.addInput.Blur()
	default:
		var cmd tea.Cmd
		m.addInput, cmd = m.addInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.searchInput.Blur()
		m.Store.SetSearchQuery("")
	case "enter":
		m.Mode = ModeBrowse
		m.searchInput.Blur()
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		_ = cmd
		// Live search: the projection narrows as the query is typed.
		m.Store.SetSearchQuery(m.searchInput.Value())
	}
	return m
}

func (m Model) handleSubAddKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.subInput.Blur()
	case "enter":
		title := strings.TrimSpace(m.subInput.Value())
		if title == "" {
			m.Status = StatusBar{Text: "sub-task title must not be empty", IsError: true}
			return m
		}
		if idx, ok := m.selectedCanonical(); ok {
			m.Store.AddSubTask(context.Background(), idx, title)
			m.Status = StatusBar{Text: fmt.Sprintf("sub-task added: %s", title)}
		}
		m.Mode = ModeBrowse
		m.subInput.Blur()
	default:
		var cmd tea.Cmd
		m.subInput, cmd = m.subInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.paletteInput.Blur()
		m.Status = StatusBar{}
	case "enter":
		m = m.executePaletteCommand(m.paletteInput.Value())
		m.Mode = ModeBrowse
		m.paletteInput.Blur()
	default:
		var cmd tea.Cmd
		m.paletteInput, cmd = m.paletteInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) executePaletteCommand(raw string) Model {
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	ctx := context.Background()
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task := m.Store.AddTask(ctx, a.Title, a.Priority)
			m.selectedID = task.ID
			return commands.Result{Message: fmt.Sprintf("added %q (%s)", task.Title, task.Priority)}, nil
		},
		Filter: func(f commands.FilterArgs) (commands.Result, error) {
			m.Store.SetFilter(f.Filter)
			return commands.Result{Message: fmt.Sprintf("filter: %s", f.Filter)}, nil
		},
		Search: func(s commands.SearchArgs) (commands.Result, error) {
			m.Store.SetSearchQuery(s.Query)
			if s.Query == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("search: %s", s.Query)}, nil
		},
		Sort: func() (commands.Result, error) {
			m.Store.ToggleSortOrder()
			return commands.Result{Message: fmt.Sprintf("order: %s", orderName(m.Store.Params().Order))}, nil
		},
		Theme: func() (commands.Result, error) {
			m.cycleTheme(ctx)
			return commands.Result{Message: fmt.Sprintf("theme: %s", m.Theme.Name)}, nil
		},
		Undo: func() (commands.Result, error) {
			restored, ok := m.Store.Undo(ctx)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "nothing to undo"}
			}
			return commands.Result{Message: fmt.Sprintf("restored %q", restored.Title)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}

func (m *Model) cycleTheme(ctx context.Context) {
	next := (m.Theme.Mode + 1) % views.ThemeModes
	m.Theme = views.ThemeForMode(next)
	if m.themes != nil {
		if err := m.themes.SaveThemeMode(ctx, next); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("theme not saved: %v", err), IsError: true}
			return
		}
	}
	m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", m.Theme.Name)}
}

// refreshVisible re-projects the canonical collection, diffs against the
// previous visible sequence and rebuilds the list surface from the script.
func (m *Model) refreshVisible() {
	old := m.visible
	m.visible = m.Store.Visible()
	m.lastOps = reconcile.Diff(old, m.visible)
	m.syncList()
}

func (m *Model) syncList() {
	items := make([]list.Item, 0, len(m.visible))
	selected := 0
	for i, e := range m.visible {
		desc := fmt.Sprintf("%s | %d sub-task(s)", e.Task.Priority, len(e.Task.SubTasks))
		if e.Task.IsDone {
			desc = "done | " + desc
		}
		items = append(items, listItem{title: e.Task.Title, description: desc})
		if e.Task.ID == m.selectedID {
			selected = i
		}
	}
	m.taskList.SetItems(items)
	if len(items) > 0 {
		m.taskList.Select(selected)
		m.selectedID = m.visible[selected].Task.ID
		if m.SubCursor >= len(m.visible[selected].Task.SubTasks) {
			m.SubCursor = 0
		}
	} else {
		m.selectedID = ""
		m.PaneFocused = false
	}
	m.syncDetail()
}

func (m *Model) syncDetail() {
	entry, ok := m.selectedEntry()
	if !ok {
		m.detailView.SetContent("")
		return
	}
	subs := make([]views.SubTaskData, 0, len(entry.Task.SubTasks))
	for _, s := range entry.Task.SubTasks {
		subs = append(subs, views.SubTaskData{Title: s.Title, IsDone: s.IsDone})
	}
	md := views.TaskDetailMarkdown(entry.Task.Title, entry.Task.Priority.String(), entry.Task.IsDone, subs)
	m.detailView.SetContent(views.RenderMarkdown(m.Theme, md))
}

func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		return
	}
	next := m.taskList.Index() + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.visible) {
		next = len(m.visible) - 1
	}
	m.taskList.Select(next)
	m.selectedID = m.visible[next].Task.ID
	m.SubCursor = 0
	m.syncDetail()
}

func (m Model) selectedEntry() (project.Entry, bool) {
	pos := m.taskList.Index()
	if pos < 0 || pos >= len(m.visible) {
		return project.Entry{}, false
	}
	return m.visible[pos], true
}

// selectedCanonical resolves the selected visible row to its canonical
// index by stable id against a fresh snapshot, falling back to the
// projection-time index, so a stale projection cannot point the mutation
// at the wrong task.
func (m Model) selectedCanonical() (int, bool) {
	entry, ok := m.selectedEntry()
	if !ok {
		return 0, false
	}
	if idx, ok := reconcile.FindByID(m.Store.Snapshot(), entry.Task.ID); ok {
		return idx, true
	}
	return reconcile.ResolveCanonical(m.visible, m.taskList.Index())
}

func nextFilter(f model.Filter) model.Filter {
	switch f {
	case model.FilterAll:
		return model.FilterPending
	case model.FilterPending:
		return model.FilterCompleted
	default:
		return model.FilterAll
	}
}

// opsSummary condenses the last reconciliation script for the header.
func opsSummary(ops []reconcile.Op) string {
	if len(ops) == 0 {
		return ""
	}
	inserts, removes := 0, 0
	for _, op := range ops {
		if op.Kind == reconcile.OpInsert {
			inserts++
		} else {
			removes++
		}
	}
	return fmt.Sprintf("list: +%d -%d", inserts, removes)
}

func orderName(o project.Order) string {
	if o == project.OrderLowFirst {
		return "low first"
	}
	return "high first"
}

// splitPriorityFlag strips a trailing !low/!med/!high token off an add
// input, defaulting to Medium.
func splitPriorityFlag(raw string) (string, model.Priority) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", model.PriorityMedium
	}
	priority := model.PriorityMedium
	switch strings.ToLower(fields[len(fields)-1]) {
	case "!low":
		priority = model.PriorityLow
		fields = fields[:len(fields)-1]
	case "!med", "!medium":
		fields = fields[:len(fields)-1]
	case "!high":
		priority = model.PriorityHigh
		fields = fields[:len(fields)-1]
	}
	return strings.Join(fields, " "), priority
}

func (m Model) View() string {
	params := m.Store.Params()
	left := views.RenderTaskListPanel(m.Theme, views.TaskListPanelData{
		ListView:   m.taskList.View(),
		InputView:  m.activeInputView(),
		InputLabel: m.activeInputLabel(),
		FilterName: string(params.Filter),
		OrderName:  orderName(params.Order),
		Query:      params.Query,
		Count:      len(m.visible),
		Total:      m.Store.Len(),
	})

	right := m.renderDetailPane()
	if m.Mode == ModePalette {
		right = views.RenderCommandPalette(m.Theme, true, m.paletteInput.View())
	}
	if m.HelpVisible {
		right = m.renderHelpView()
	}

	header := fmt.Sprintf("ticklist | %s | theme: %s", params.Filter, m.Theme.Name)
	if summary := opsSummary(m.lastOps); summary != "" {
		header += " | " + summary
	}

	return views.RenderApp(m.Theme, views.AppData{
		Header:     header,
		LeftPane:   left,
		RightPane:  right,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer: fmt.Sprintf("%s add | space toggle | %s del | %s undo | %s filter | %s sort | %s search | %s palette | %s help | %s quit",
			m.Keys.Add, m.Keys.Delete, m.Keys.Undo, m.Keys.Filter, m.Keys.Sort, m.Keys.Search, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) activeInputView() string {
	switch m.Mode {
	case ModeAdd, ModeEdit:
		return m.addInput.View()
	case ModeSearch:
		return m.searchInput.View()
	default:
		return ""
	}
}

func (m Model) activeInputLabel() string {
	switch m.Mode {
	case ModeAdd:
		return "new task"
	case ModeEdit:
		return "edit task"
	case ModeSearch:
		return "search"
	default:
		return ""
	}
}

func (m Model) renderDetailPane() string {
	entry, ok := m.selectedEntry()
	if !ok {
		return views.RenderDetailPanel(m.Theme, views.DetailPanelData{})
	}
	subs := make([]views.SubTaskData, 0, len(entry.Task.SubTasks))
	for _, s := range entry.Task.SubTasks {
		subs = append(subs, views.SubTaskData{Title: s.Title, IsDone: s.IsDone})
	}
	inputView := ""
	if m.Mode == ModeSubAdd {
		inputView = m.subInput.View()
	}
	return views.RenderDetailPanel(m.Theme, views.DetailPanelData{
		Title:        entry.Task.Title,
		Priority:     entry.Task.Priority.String(),
		IsDone:       entry.Task.IsDone,
		SubTasks:     subs,
		Cursor:       m.SubCursor,
		PaneFocused:  m.PaneFocused,
		MarkdownView: m.detailView.View(),
		InputView:    inputView,
	})
}

func (m Model) renderHelpView() string {
	plain := []string{
		fmt.Sprintf("- %s: add task (append !low/!med/!high)", m.Keys.Add),
		fmt.Sprintf("- %s: edit selected title", m.Keys.Edit),
		fmt.Sprintf("- %s: cycle selected priority", m.Keys.Cycle),
		"- space/enter: toggle selected",
		fmt.Sprintf("- %s: delete selected, %s: undo", m.Keys.Delete, m.Keys.Undo),
		fmt.Sprintf("- %s: cycle filter, %s: flip sort order", m.Keys.Filter, m.Keys.Sort),
		fmt.Sprintf("- %s: search, %s: command palette", m.Keys.Search, m.Keys.Palette),
		fmt.Sprintf("- %s: sub-task pane (j/k, space, x, n)", m.Keys.Pane),
		fmt.Sprintf("- %s: cycle theme", m.Keys.Theme),
	}
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys(m.Keys.Add), key.WithHelp(m.Keys.Add, "add")),
		key.NewBinding(key.WithKeys(m.Keys.Delete), key.WithHelp(m.Keys.Delete, "delete")),
		key.NewBinding(key.WithKeys(m.Keys.Undo), key.WithHelp(m.Keys.Undo, "undo")),
		key.NewBinding(key.WithKeys(m.Keys.Filter), key.WithHelp(m.Keys.Filter, "filter")),
		key.NewBinding(key.WithKeys(m.Keys.Sort), key.WithHelp(m.Keys.Sort, "sort")),
		key.NewBinding(key.WithKeys(m.Keys.Quit), key.WithHelp(m.Keys.Quit, "quit")),
	}
	return views.RenderHelpPanel(m.Theme, views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{short: bindings, full: [][]key.Binding{bindings}}),
	})
}
