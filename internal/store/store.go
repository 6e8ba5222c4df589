package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"todo-cli/internal/model"
)

const (
	dbFileName = "todos.sqlite"

	// EnvDir overrides the store directory (keeps tests and scripts away from ~/.todo).
	EnvDir = "TODO_DIR"
)

// ErrNoHome is returned when no store directory can be derived from the environment.
var ErrNoHome = errors.New("unable to resolve home directory")

// Store is a handle on the on-disk todo database. The zero Now means time.Now.
type Store struct {
	Dir string
	Now func() time.Time
}

// Error is the single error kind returned across the store boundary.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func IsStoreError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// DefaultDir returns $TODO_DIR when set, else ~/.todo.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, ".todo"), nil
}

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, dbFileName)
}

// Today is the calendar day used for completion stamps and due offsets.
func (s Store) Today() model.Date {
	if s.Now != nil {
		return model.DateOf(s.Now())
	}
	return model.DateOf(time.Now())
}
