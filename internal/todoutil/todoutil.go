package todoutil

import (
	"sort"
	"strconv"

	"todo-cli/internal/model"
)

// maxDueYear keeps staged dates inside the four-digit YYYY-MM-DD format the store uses.
const maxDueYear = 9999

// SortForDisplay orders todos in place: incomplete before completed, dated before
// undated, earlier due dates first. Ties keep the store order.
func SortForDisplay(todos []model.Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		return compareForDisplay(todos[i], todos[j]) < 0
	})
}

func compareForDisplay(a, b model.Todo) int {
	if a.Completed != b.Completed {
		if !a.Completed {
			return -1
		}
		return 1
	}
	if a.HasDue() != b.HasDue() {
		if a.HasDue() {
			return -1
		}
		return 1
	}
	if a.HasDue() {
		return a.DueDate.Compare(*b.DueDate)
	}
	return 0
}

// Overdue reports whether an open todo is due today or earlier.
func Overdue(t model.Todo, today model.Date) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return !t.DueDate.After(today)
}

// Toggle flips completion and keeps CompletedDate in step with it.
func Toggle(t model.Todo, today model.Date) model.Todo {
	t.Completed = !t.Completed
	if t.Completed {
		d := today
		t.CompletedDate = &d
	} else {
		t.CompletedDate = nil
	}
	return t
}

// DueFromOffset turns a "+days from today" input into a due date. Only plain
// non-negative base-10 integers are accepted, optionally with one leading '+';
// anything else yields nil.
func DueFromOffset(input string, today model.Date) *model.Date {
	if len(input) > 1 && input[0] == '+' {
		input = input[1:]
	}
	n, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		return nil
	}
	// 10000 years of days is already past maxDueYear from any valid today.
	if n > 366*maxDueYear {
		return nil
	}
	due := today.AddDays(int(n))
	if due.Year() > maxDueYear {
		return nil
	}
	return &due
}
