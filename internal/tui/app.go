package tui

import (
	"context"
	"log/slog"
	"time"

	"todo-cli/internal/config"
	"todo-cli/internal/cursor"
	"todo-cli/internal/model"
	"todo-cli/internal/store"
	"todo-cli/internal/todoutil"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBrowse mode = iota
	modeTodoForm
	modeListForm
)

// formStage is the form sub-state: the field menu, or one field being typed.
type formStage int

const (
	stageMenu formStage = iota
	stageTitle
	stageDescription
	stageDue
)

type focus int

const (
	focusLists focus = iota
	focusTodos
)

type reloadTickMsg struct{}

// statusAutoClearAfter bounds how long a footer status message stays visible.
const statusAutoClearAfter = 5 * time.Second

// draft holds the staged todo fields while a form is open.
type draft struct {
	title       string
	description string
	due         *model.Date
}

type appModel struct {
	store   store.Store
	cfg     *config.Config
	refresh time.Duration

	width  int
	height int

	// Fresh copies from the store; todos are display-sorted.
	lists []model.TodoList
	todos []model.Todo

	listCur cursor.Cursor
	todoCur cursor.Cursor
	focus   focus

	mode mode
	// detail is a todos position, not a todo id: when a re-sort moves the shown
	// todo, the panel shows whatever now sits at that row. Only meaningful in modeBrowse.
	detail cursor.Cursor
	stage  formStage
	// editID is the todo being edited, 0 while creating a new one.
	editID int64

	input        string
	draft        draft
	newListTitle string

	status   string
	statusAt time.Time

	keys keyMap
	help help.Model
}

func newAppModel(s store.Store, cfg *config.Config) appModel {
	if cfg == nil {
		cfg = config.Default()
	}
	refresh := time.Duration(cfg.TUI.RefreshMs) * time.Millisecond
	if refresh <= 0 {
		refresh = config.DefaultRefreshMs * time.Millisecond
	}
	m := appModel{
		store:   s,
		cfg:     cfg,
		refresh: refresh,
		width:   80,
		height:  24,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.reload()
	return m
}

func (m appModel) Init() tea.Cmd { return m.tickReload() }

func (m appModel) tickReload() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case reloadTickMsg:
		// Picks up changes made by other processes (e.g. a one-shot run in another shell).
		m.reload()
		if m.status != "" && time.Since(m.statusAt) > statusAutoClearAfter {
			m.status = ""
		}
		return m, m.tickReload()

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch m.mode {
		case modeTodoForm:
			cmd = m.updateTodoForm(msg)
		case modeListForm:
			cmd = m.updateListForm(msg)
		default:
			cmd = m.updateBrowse(msg)
		}
		m.reload()
		return m, cmd
	}
	return m, nil
}

func (m *appModel) ctx() context.Context { return context.Background() }

func (m *appModel) today() model.Date { return m.store.Today() }

// reload re-fetches both panes and re-derives every cursor against the fresh data.
func (m *appModel) reload() {
	lists, err := m.store.Lists(m.ctx())
	if err != nil {
		m.storeFailed("lists", err)
		lists = nil
	}
	m.lists = lists
	m.listCur = m.listCur.Clamp(len(m.lists))

	m.todos = nil
	if l, ok := cursor.Get(m.listCur, m.lists); ok {
		todos, err := m.store.TodosForList(m.ctx(), l.ID)
		if err != nil {
			m.storeFailed("todos for list", err)
		} else {
			todoutil.SortForDisplay(todos)
			m.todos = todos
		}
	}
	m.todoCur = m.todoCur.Clamp(len(m.todos))
	m.detail = m.detail.Clamp(len(m.todos))
}

// storeFailed logs a store error and surfaces it in the footer. The loop carries on;
// the next reload shows whatever the store actually holds.
func (m *appModel) storeFailed(op string, err error) {
	slog.Warn("store operation failed", "op", op, "error", err)
	m.showStatus(err.Error())
}

func (m *appModel) showStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

func (m appModel) selectedList() (model.TodoList, bool) {
	return cursor.Get(m.listCur, m.lists)
}

func (m appModel) selectedTodo() (model.Todo, bool) {
	return cursor.Get(m.todoCur, m.todos)
}

func (m appModel) todoByID(id int64) (model.Todo, bool) {
	for _, t := range m.todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

// tuiState captures what is restored on the next launch.
func (m appModel) tuiState() *store.TUIState {
	st := &store.TUIState{Version: 1, Focus: "lists"}
	if l, ok := m.selectedList(); ok {
		st.SelectedListID = l.ID
	}
	if m.focus == focusTodos {
		st.Focus = "todos"
	}
	return st
}

// restore re-selects the list remembered in st, if it still exists.
func (m *appModel) restore(st *store.TUIState) {
	if st == nil || st.SelectedListID == 0 {
		return
	}
	for i, l := range m.lists {
		if l.ID != st.SelectedListID {
			continue
		}
		m.listCur = cursor.At(i)
		m.reload()
		if st.Focus == "todos" {
			m.focus = focusTodos
			if len(m.todos) > 0 {
				m.todoCur = cursor.At(0)
			}
		}
		return
	}
}
