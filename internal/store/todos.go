package store

import (
	"context"
	"fmt"

	"todo-cli/internal/model"
)

// CreateTodo inserts t (its ID is ignored) and returns the new id.
func (s Store) CreateTodo(ctx context.Context, t model.Todo) (int64, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return 0, wrap("create todo", err)
	}
	defer db.Close()

	res, err := db.ExecContext(ctx,
		`INSERT INTO todos(list_id, title, description, due_date, completed, completed_date) VALUES(?, ?, ?, ?, ?, ?)`,
		t.ListID, t.Title, nullString(t.Description), nullDate(t.DueDate), t.Completed, nullDate(completedDateOf(t)))
	if err != nil {
		return 0, wrap("create todo", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrap("create todo", err)
	}
	return id, nil
}

// UpdateTodo replaces every column of the row keyed by t.ID.
func (s Store) UpdateTodo(ctx context.Context, t model.Todo) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return wrap("update todo", err)
	}
	defer db.Close()

	res, err := db.ExecContext(ctx,
		`UPDATE todos SET list_id = ?, title = ?, description = ?, due_date = ?, completed = ?, completed_date = ? WHERE id = ?`,
		t.ListID, t.Title, nullString(t.Description), nullDate(t.DueDate), t.Completed, nullDate(completedDateOf(t)), t.ID)
	if err != nil {
		return wrap("update todo", err)
	}
	return wrap("update todo", checkAffected(res, fmt.Sprintf("todo %d", t.ID)))
}

func (s Store) DeleteTodo(ctx context.Context, id int64) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return wrap("delete todo", err)
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	return wrap("delete todo", err)
}

// SetCompletion writes the completed flag and its date in one statement.
// Completing stamps today's date; reopening clears it.
func (s Store) SetCompletion(ctx context.Context, id int64, completed bool) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return wrap("set completion", err)
	}
	defer db.Close()

	var date *model.Date
	if completed {
		today := s.Today()
		date = &today
	}
	res, err := db.ExecContext(ctx, `UPDATE todos SET completed = ?, completed_date = ? WHERE id = ?`,
		completed, nullDate(date), id)
	if err != nil {
		return wrap("set completion", err)
	}
	return wrap("set completion", checkAffected(res, fmt.Sprintf("todo %d", id)))
}

// TodosForList returns the todos of one list in store order.
func (s Store) TodosForList(ctx context.Context, listID int64) ([]model.Todo, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, wrap("todos for list", err)
	}
	defer db.Close()

	out, err := queryTodos(ctx, db, `SELECT `+todoColumns+` FROM todos WHERE list_id = ? ORDER BY id`, listID)
	if err != nil {
		return nil, wrap("todos for list", err)
	}
	return out, nil
}

// IncompleteDueBy returns open todos whose due date is on or before date.
// Todos without a due date never match.
func (s Store) IncompleteDueBy(ctx context.Context, date model.Date) ([]model.Todo, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, wrap("incomplete due by", err)
	}
	defer db.Close()

	out, err := queryTodos(ctx, db,
		`SELECT `+todoColumns+` FROM todos WHERE completed = 0 AND due_date IS NOT NULL AND due_date <= ? ORDER BY due_date, id`,
		date.String())
	if err != nil {
		return nil, wrap("incomplete due by", err)
	}
	return out, nil
}

// A completed date only exists alongside the completed flag.
func completedDateOf(t model.Todo) *model.Date {
	if !t.Completed {
		return nil
	}
	return t.CompletedDate
}
