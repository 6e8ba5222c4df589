package tui

import (
	"todo-cli/internal/cursor"
	"todo-cli/internal/model"
	"todo-cli/internal/todoutil"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *appModel) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Browse
	switch {
	case key.Matches(msg, k.Quit, m.keys.ForceQuit):
		return tea.Quit

	case key.Matches(msg, k.Detail):
		if m.detail.IsSet() {
			m.detail = cursor.None()
		} else if m.todoCur.IsSet() {
			m.detail = m.todoCur
		}

	case key.Matches(msg, k.Edit):
		if _, ok := m.selectedList(); !ok {
			return nil
		}
		t, ok := m.selectedTodo()
		if !ok {
			return nil
		}
		m.draft = draft{title: t.Title, description: t.Description, due: t.DueDate}
		m.input = t.Title
		m.editID = t.ID
		m.enterTodoForm()

	case key.Matches(msg, k.NewTodo):
		if _, ok := m.selectedList(); !ok {
			return nil
		}
		m.draft = draft{}
		m.input = ""
		m.editID = 0
		m.enterTodoForm()

	case key.Matches(msg, k.NewList):
		m.newListTitle = ""
		m.input = ""
		m.mode = modeListForm
		m.stage = stageTitle

	case key.Matches(msg, k.Delete):
		m.deleteSelected()

	case key.Matches(msg, k.Down):
		if m.focus == focusLists {
			m.listCur = m.listCur.Down(len(m.lists))
		} else {
			m.todoCur = m.todoCur.Down(len(m.todos))
		}

	case key.Matches(msg, k.Up):
		if m.focus == focusLists {
			m.listCur = m.listCur.Up(len(m.lists))
		} else {
			m.todoCur = m.todoCur.Up(len(m.todos))
		}

	case key.Matches(msg, k.Left):
		if m.focus == focusTodos {
			m.focus = focusLists
			m.todoCur = cursor.None()
			m.detail = cursor.None()
		}

	case key.Matches(msg, k.Right):
		if m.focus == focusLists {
			m.focus = focusTodos
			m.reload()
			m.todoCur = cursor.None()
			if len(m.todos) > 0 {
				m.todoCur = cursor.At(0)
			}
		} else {
			m.toggleSelected()
		}

	case key.Matches(msg, k.Toggle):
		if m.focus == focusTodos {
			m.toggleSelected()
		}
	}
	return nil
}

func (m *appModel) enterTodoForm() {
	m.mode = modeTodoForm
	m.stage = stageTitle
}

func (m *appModel) leaveForm() {
	m.mode = modeBrowse
	m.stage = stageMenu
	m.detail = cursor.None()
}

func (m *appModel) deleteSelected() {
	if m.focus == focusLists {
		l, ok := m.selectedList()
		if !ok {
			return
		}
		if err := m.store.DeleteList(m.ctx(), l.ID); err != nil {
			m.storeFailed("delete list", err)
		}
		m.listCur = cursor.None()
		m.todoCur = cursor.None()
		m.detail = cursor.None()
		return
	}
	t, ok := m.selectedTodo()
	if !ok {
		return
	}
	if err := m.store.DeleteTodo(m.ctx(), t.ID); err != nil {
		m.storeFailed("delete todo", err)
	}
}

// toggleSelected persists the flipped completion. Nothing changes in memory;
// the following reload shows what the store holds.
func (m *appModel) toggleSelected() {
	t, ok := m.selectedTodo()
	if !ok {
		return
	}
	next := todoutil.Toggle(t, m.today())
	if err := m.store.SetCompletion(m.ctx(), t.ID, next.Completed); err != nil {
		m.storeFailed("set completion", err)
	}
}

func (m *appModel) updateTodoForm(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}
	if m.stage != stageMenu {
		m.updateField(msg)
		return nil
	}

	k := m.keys.Form
	switch {
	case key.Matches(msg, k.Back):
		m.leaveForm()
	case key.Matches(msg, k.Due):
		m.stage = stageDue
	case key.Matches(msg, k.Description):
		m.stage = stageDescription
		m.input = m.draft.description
	case key.Matches(msg, k.Title):
		m.stage = stageTitle
		m.input = m.draft.title
	case key.Matches(msg, k.Save):
		m.saveTodo()
		m.draft = draft{}
		m.leaveForm()
	}
	return nil
}

func (m *appModel) saveTodo() {
	if m.editID != 0 {
		t, ok := m.todoByID(m.editID)
		if !ok {
			m.showStatus("todo no longer exists")
			return
		}
		t.Title = m.draft.title
		t.Description = m.draft.description
		t.DueDate = m.draft.due
		if err := m.store.UpdateTodo(m.ctx(), t); err != nil {
			m.storeFailed("update todo", err)
		}
		return
	}

	l, ok := m.selectedList()
	if !ok {
		m.showStatus("no list selected")
		return
	}
	t := model.Todo{
		ListID:      l.ID,
		Title:       m.draft.title,
		Description: m.draft.description,
		DueDate:     m.draft.due,
	}
	if _, err := m.store.CreateTodo(m.ctx(), t); err != nil {
		m.storeFailed("create todo", err)
	}
}

func (m *appModel) updateListForm(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}
	if m.stage != stageMenu {
		m.updateField(msg)
		return nil
	}

	k := m.keys.Form.listFormKeys()
	switch {
	case key.Matches(msg, k.Back):
		m.leaveForm()
	case key.Matches(msg, k.Title):
		m.stage = stageTitle
		m.input = m.newListTitle
	case key.Matches(msg, k.Save):
		if _, err := m.store.CreateList(m.ctx(), m.newListTitle); err != nil {
			m.storeFailed("create list", err)
		}
		m.newListTitle = ""
		m.input = ""
		m.leaveForm()
	}
	return nil
}

// updateField handles keystrokes while one field is being typed.
func (m *appModel) updateField(msg tea.KeyMsg) {
	k := m.keys.Field
	switch {
	case key.Matches(msg, k.Cancel):
		m.input = ""
		m.stage = stageMenu
	case key.Matches(msg, k.Commit):
		m.commitField()
	case key.Matches(msg, k.Backspace):
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case msg.Type == tea.KeyRunes:
		m.input += string(msg.Runes)
	case msg.Type == tea.KeySpace:
		m.input += " "
	}
}

func (m *appModel) commitField() {
	if m.mode == modeListForm {
		m.newListTitle = m.input
		m.input = ""
		m.stage = stageMenu
		return
	}
	switch m.stage {
	case stageTitle:
		m.draft.title = m.input
		m.stage = stageDescription
	case stageDescription:
		m.draft.description = m.input
		m.stage = stageDue
	case stageDue:
		m.draft.due = todoutil.DueFromOffset(m.input, m.today())
		m.stage = stageMenu
	}
	m.input = ""
}
