package store

import (
	"context"
	"database/sql"

	"todo-cli/internal/model"
)

func (s Store) CreateList(ctx context.Context, title string) (int64, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return 0, wrap("create list", err)
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, `INSERT INTO lists(title) VALUES(?)`, title)
	if err != nil {
		return 0, wrap("create list", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrap("create list", err)
	}
	return id, nil
}

// DeleteList removes the list and every todo filed under it.
func (s Store) DeleteList(ctx context.Context, id int64) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return wrap("delete list", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return wrap("delete list", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id); err != nil {
		return wrap("delete list", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM todos WHERE list_id = ?`, id); err != nil {
		return wrap("delete list", err)
	}
	return wrap("delete list", tx.Commit())
}

// Lists returns every list in store order.
func (s Store) Lists(ctx context.Context) ([]model.TodoList, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, wrap("lists", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, title FROM lists ORDER BY id`)
	if err != nil {
		return nil, wrap("lists", err)
	}
	defer rows.Close()

	out := []model.TodoList{}
	for rows.Next() {
		var l model.TodoList
		if err := rows.Scan(&l.ID, &l.Title); err != nil {
			return nil, wrap("lists", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("lists", err)
	}
	return out, nil
}
