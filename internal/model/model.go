package model

type TodoList struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Todo struct {
	ID     int64 `json:"id"`
	ListID int64 `json:"listId"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     *Date  `json:"dueDate,omitempty"`

	// CompletedDate is set iff Completed is true.
	Completed     bool  `json:"completed"`
	CompletedDate *Date `json:"completedDate,omitempty"`

	// Dependencies lists prerequisite todo ids. Reserved: nothing persists or reads it yet.
	Dependencies []int64 `json:"dependencies,omitempty"`
}

// HasDue reports whether the todo carries a due date.
func (t Todo) HasDue() bool { return t.DueDate != nil }
