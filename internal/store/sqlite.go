package store

import (
	"context"
	"database/sql"
	"errors"

	"todo-cli/internal/model"

	_ "modernc.org/sqlite"
)

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// Pragmas are per connection; keep the pool to the one they were applied to.
	db.SetMaxOpenConns(1)
	// Pragmas for multi-process local usage (TUI + one-shot runs from a shell prompt).
	// busy_timeout goes first so the journal switch itself waits on a held lock.
	pragmas := []string{
		"PRAGMA busy_timeout=5000;",
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS lists (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY,
			list_id INTEGER,
			title TEXT NOT NULL,
			description TEXT,
			due_date TEXT,
			completed BOOLEAN NOT NULL,
			completed_date TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_todos_list ON todos(list_id);`,
		`CREATE INDEX IF NOT EXISTS idx_todos_due ON todos(completed, due_date);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

const todoColumns = `id, list_id, title, description, due_date, completed, completed_date`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(r rowScanner) (model.Todo, error) {
	var (
		t             model.Todo
		listID        sql.NullInt64
		description   sql.NullString
		dueDate       sql.NullString
		completedDate sql.NullString
	)
	if err := r.Scan(&t.ID, &listID, &t.Title, &description, &dueDate, &t.Completed, &completedDate); err != nil {
		return model.Todo{}, err
	}
	t.ListID = listID.Int64
	t.Description = description.String
	var err error
	if t.DueDate, err = parseNullDate(dueDate); err != nil {
		return model.Todo{}, err
	}
	if t.CompletedDate, err = parseNullDate(completedDate); err != nil {
		return model.Todo{}, err
	}
	return t, nil
}

func queryTodos(ctx context.Context, db *sql.DB, query string, args ...any) ([]model.Todo, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseNullDate(v sql.NullString) (*model.Date, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	d, err := model.ParseDate(v.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func nullDate(d *model.Date) sql.NullString {
	if d == nil || d.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func checkAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New(what + " not found")
	}
	return nil
}
