package tui

import (
	"fmt"
	"strings"

	"todo-cli/internal/cursor"
	"todo-cli/internal/model"
	"todo-cli/internal/todoutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const (
	detailPanelHeight = 8
	minPaneWidth      = 16
	// border + horizontal padding of stylePane
	paneChromeW = 4
	paneChromeH = 2
)

func (m appModel) View() string {
	var body string
	switch m.mode {
	case modeTodoForm:
		body = m.viewTodoForm()
	case modeListForm:
		body = m.viewListForm()
	default:
		body = m.viewBrowse()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body, m.viewFooter())
}

func (m appModel) viewHeader() string {
	title := styleTitle().Render("todo")
	dir := styleMuted().Render("  " + m.store.Dir)
	return fitLine(title+dir, m.width)
}

func (m appModel) viewFooter() string {
	var helpLine string
	switch {
	case m.mode == modeBrowse:
		helpLine = m.help.View(m.keys.Browse)
	case m.stage != stageMenu:
		helpLine = m.help.View(m.keys.Field)
	case m.mode == modeListForm:
		helpLine = m.help.View(m.keys.Form.listFormKeys())
	default:
		helpLine = m.help.View(m.keys.Form)
	}
	lines := []string{fitLine(helpLine, m.width)}
	if m.status != "" {
		lines = append([]string{fitLine(styleMuted().Render(m.status), m.width)}, lines...)
	}
	return strings.Join(lines, "\n")
}

// bodyHeight is what remains for panes and forms between header and footer.
func (m appModel) bodyHeight() int {
	h := m.height - 3
	if m.status != "" {
		h--
	}
	if h < 6 {
		h = 6
	}
	return h
}

func (m appModel) viewBrowse() string {
	height := m.bodyHeight()
	var detail string
	if m.detail.IsSet() {
		height -= detailPanelHeight
		if height < 4 {
			height = 4
		}
		detail = m.viewDetail(m.width)
	}

	listsW := m.width * 30 / 100
	if listsW < minPaneWidth {
		listsW = minPaneWidth
	}
	todosW := m.width - listsW
	if todosW < minPaneWidth {
		todosW = minPaneWidth
	}

	innerH := height - paneChromeH
	lists := m.renderListsPane(listsW-paneChromeW, innerH)
	todos := m.renderTodosPane(todosW-paneChromeW, innerH)

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		stylePane(m.focus == focusLists).Render(lists),
		stylePane(m.focus == focusTodos).Render(todos),
	)
	if detail == "" {
		return panes
	}
	return lipgloss.JoinVertical(lipgloss.Left, panes, detail)
}

func (m appModel) renderListsPane(width, height int) string {
	rows := make([]string, 0, len(m.lists))
	for _, l := range m.lists {
		rows = append(rows, l.Title)
	}
	return renderPane("Lists", rows, nil, m.listCur, width, height)
}

func (m appModel) renderTodosPane(width, height int) string {
	today := m.today()
	rows := make([]string, 0, len(m.todos))
	styles := make([]*lipgloss.Style, 0, len(m.todos))
	for _, t := range m.todos {
		rows = append(rows, todoRow(t))
		var st *lipgloss.Style
		switch {
		case todoutil.Overdue(t, today):
			s := lipgloss.NewStyle().Foreground(colorOverdue)
			st = &s
		case t.Completed:
			s := lipgloss.NewStyle().Foreground(colorDone)
			st = &s
		}
		styles = append(styles, st)
	}
	title := "Todos"
	if l, ok := m.selectedList(); ok {
		title = "Todos " + glyphBullet() + " " + l.Title
	}
	return renderPane(title, rows, styles, m.todoCur, width, height)
}

// todoRow is the pane line for one todo: id, checkbox, title and due date.
func todoRow(t model.Todo) string {
	s := fmt.Sprintf("%d %s %s", t.ID, glyphCheckbox(t.Completed), t.Title)
	if t.DueDate != nil {
		s += "  " + t.DueDate.String()
	}
	return s
}

func renderPane(title string, rows []string, rowStyles []*lipgloss.Style, cur cursor.Cursor, width, height int) string {
	if width < 1 {
		width = 1
	}
	lines := []string{fitLine(styleTitle().Render(title), width)}
	rowsH := height - 1
	sel, ok := cur.Index()
	if !ok {
		sel = -1
	}
	if len(rows) == 0 {
		lines = append(lines, styleMuted().Render("(empty)"))
	}
	start, end := visibleWindow(len(rows), sel, rowsH)
	for i := start; i < end; i++ {
		marker := "  "
		if i == sel {
			marker = glyphSelected() + " "
		}
		text := fitLine(marker+rows[i], width)
		switch {
		case i == sel:
			text = styleSelectedRow().Render(text)
		case rowStyles != nil && rowStyles[i] != nil:
			text = rowStyles[i].Render(text)
		}
		lines = append(lines, text)
	}
	return normalizePane(strings.Join(lines, "\n"), width, height)
}

func (m appModel) viewDetail(width int) string {
	innerW := width - paneChromeW
	if innerW < minPaneWidth {
		innerW = minPaneWidth
	}
	innerH := detailPanelHeight - paneChromeH

	t, ok := cursor.Get(m.detail, m.todos)
	if !ok {
		return ""
	}
	status := "open"
	if t.Completed {
		status = "done"
		if t.CompletedDate != nil {
			status += " " + t.CompletedDate.String()
		}
	}
	due := "none"
	if t.DueDate != nil {
		due = t.DueDate.String()
		if todoutil.Overdue(t, m.today()) {
			due = lipgloss.NewStyle().Foreground(colorOverdue).Render(due + " (overdue)")
		}
	}
	meta := styleMuted().Render(fmt.Sprintf("#%d  %s  due: ", t.ID, status)) + due

	lines := []string{styleTitle().Render(t.Title), meta}
	if desc := strings.TrimSpace(t.Description); desc != "" {
		if m.cfg.MarkdownEnabled() {
			desc = renderMarkdown(desc, innerW)
		}
		lines = append(lines, styleMuted().Render(strings.Repeat(glyphHRule(), innerW)), desc)
	}
	body := normalizePane(strings.Join(lines, "\n"), innerW, innerH)
	return stylePane(false).Render(body)
}

func (m appModel) viewTodoForm() string {
	heading := "New todo"
	if m.editID != 0 {
		heading = fmt.Sprintf("Edit todo #%d", m.editID)
	}
	due := "none"
	if m.draft.due != nil {
		due = m.draft.due.String()
	}
	fields := []string{
		m.renderField("Title", m.draft.title, m.stage == stageTitle),
		m.renderField("Description", m.draft.description, m.stage == stageDescription),
		m.renderField("Due (days from today)", due, m.stage == stageDue),
	}
	menu := []string{
		"(t) Input title",
		"(d) Input description",
		"(D) Input due date",
		lipgloss.NewStyle().Foreground(colorSave).Italic(true).Render("(s) Save todo"),
		lipgloss.NewStyle().Foreground(colorCancel).Render("(esc) Cancel"),
	}
	return m.renderForm(heading, menu, fields)
}

func (m appModel) viewListForm() string {
	menu := []string{
		"(t) Input title",
		lipgloss.NewStyle().Foreground(colorSave).Italic(true).Render("(s) Save list"),
		lipgloss.NewStyle().Foreground(colorCancel).Render("(esc) Cancel"),
	}
	fields := []string{m.renderField("Title", m.newListTitle, m.stage == stageTitle)}
	return m.renderForm("New list", menu, fields)
}

func (m appModel) renderForm(heading string, menu, fields []string) string {
	w := m.formWidth()
	parts := []string{
		lipgloss.PlaceHorizontal(w, lipgloss.Center, styleTitle().Render(heading)),
		"",
		lipgloss.PlaceHorizontal(w, lipgloss.Center, strings.Join(menu, "\n")),
		"",
	}
	parts = append(parts, fields...)
	form := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Top, form)
}

func (m appModel) formWidth() int {
	w := m.width - 8
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

// renderField draws one form field. The active field shows the live input
// buffer; the others show their staged values.
func (m appModel) renderField(label, staged string, active bool) string {
	w := m.formWidth()
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(w - 2)
	value := staged
	if active {
		st = st.BorderForeground(colorActiveEdit)
		caret := lipgloss.NewStyle().Background(colorAccent).Render(" ")
		value = lipgloss.NewStyle().Foreground(colorActiveEdit).Background(colorInputBg).Render(m.input) + caret
	}
	header := styleMuted().Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, header, st.Render(fitLine(value, w-paneChromeW)))
}

// Compile-time check that the key maps satisfy help.KeyMap.
var (
	_ help.KeyMap = browseKeyMap{}
	_ help.KeyMap = formKeyMap{}
	_ help.KeyMap = fieldKeyMap{}
)
