package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type browseKeyMap struct {
	Quit    key.Binding
	Detail  key.Binding
	Edit    key.Binding
	NewTodo key.Binding
	NewList key.Binding
	Delete  key.Binding
	Down    key.Binding
	Up      key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
}

// formKeyMap covers the field menu of both forms. Description and Due are
// disabled for the list form.
type formKeyMap struct {
	Title       key.Binding
	Description key.Binding
	Due         key.Binding
	Save        key.Binding
	Back        key.Binding
}

type fieldKeyMap struct {
	Commit    key.Binding
	Backspace key.Binding
	Cancel    key.Binding
}

type keyMap struct {
	Browse browseKeyMap
	Form   formKeyMap
	Field  fieldKeyMap
	// ForceQuit works in every mode, including while typing.
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Browse: browseKeyMap{
			Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
			Detail:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "details")),
			Edit:    key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "edit")),
			NewTodo: key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new todo")),
			NewList: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "new list")),
			Delete:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete")),
			Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "move")),
			Up:      key.NewBinding(key.WithKeys("k", "up")),
			Left:    key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "focus")),
			Right:   key.NewBinding(key.WithKeys("l", "right")),
			Toggle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		},
		Form: formKeyMap{
			Title:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "title")),
			Description: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "description")),
			Due:         key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "due (+days)")),
			Save:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
			Back:        key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "cancel")),
		},
		Field: fieldKeyMap{
			Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
			Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
			Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to menu")),
		},
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewTodo, k.NewList, k.Edit, k.Delete, k.Down, k.Left, k.Toggle, k.Detail, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Title, k.Description, k.Due, k.Save, k.Back}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k fieldKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Backspace, k.Cancel}
}

func (k fieldKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// listFormKeys disables the bindings that have no list field behind them.
func (k formKeyMap) listFormKeys() formKeyMap {
	k.Description.SetEnabled(false)
	k.Due.SetEnabled(false)
	return k
}
