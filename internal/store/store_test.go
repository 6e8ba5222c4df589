package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"todo-cli/internal/model"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	return Store{
		Dir: t.TempDir(),
		Now: func() time.Time { return time.Date(2024, time.January, 5, 9, 30, 0, 0, time.Local) },
	}
}

func day(y int, m time.Month, d int) *model.Date {
	v := model.NewDate(y, m, d)
	return &v
}

func mustCreateList(t *testing.T, s Store, title string) int64 {
	t.Helper()
	id, err := s.CreateList(context.Background(), title)
	if err != nil {
		t.Fatalf("CreateList(%q): %v", title, err)
	}
	return id
}

func mustCreateTodo(t *testing.T, s Store, td model.Todo) int64 {
	t.Helper()
	id, err := s.CreateTodo(context.Background(), td)
	if err != nil {
		t.Fatalf("CreateTodo(%q): %v", td.Title, err)
	}
	return id
}

func TestListsInStoreOrder(t *testing.T) {
	s := newTestStore(t)
	a := mustCreateList(t, s, "Groceries")
	b := mustCreateList(t, s, "")
	c := mustCreateList(t, s, "Work")

	lists, err := s.Lists(context.Background())
	if err != nil {
		t.Fatalf("Lists: %v", err)
	}
	if len(lists) != 3 {
		t.Fatalf("expected 3 lists, got %d", len(lists))
	}
	for i, want := range []int64{a, b, c} {
		if lists[i].ID != want {
			t.Fatalf("list %d: expected id %d, got %d", i, want, lists[i].ID)
		}
	}
	if lists[1].Title != "" {
		t.Fatalf("expected empty title to round trip, got %q", lists[1].Title)
	}
}

func TestEmptyStoreReturnsEmptySlices(t *testing.T) {
	s := newTestStore(t)
	lists, err := s.Lists(context.Background())
	if err != nil {
		t.Fatalf("Lists: %v", err)
	}
	if lists == nil || len(lists) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", lists)
	}
	todos, err := s.TodosForList(context.Background(), 1)
	if err != nil {
		t.Fatalf("TodosForList: %v", err)
	}
	if todos == nil || len(todos) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", todos)
	}
}

func TestCreateAndReadTodo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	listID := mustCreateList(t, s, "Home")

	id := mustCreateTodo(t, s, model.Todo{
		ListID:      listID,
		Title:       "Fix sink",
		Description: "call the plumber",
		DueDate:     day(2024, time.January, 8),
	})

	todos, err := s.TodosForList(ctx, listID)
	if err != nil {
		t.Fatalf("TodosForList: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
	got := todos[0]
	if got.ID != id || got.ListID != listID || got.Title != "Fix sink" || got.Description != "call the plumber" {
		t.Fatalf("unexpected todo: %+v", got)
	}
	if got.DueDate == nil || got.DueDate.String() != "2024-01-08" {
		t.Fatalf("expected due 2024-01-08, got %v", got.DueDate)
	}
	if got.Completed || got.CompletedDate != nil {
		t.Fatalf("expected open todo, got %+v", got)
	}
}

func TestUpdateTodoReplacesFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	listID := mustCreateList(t, s, "Home")
	id := mustCreateTodo(t, s, model.Todo{ListID: listID, Title: "old", Description: "d", DueDate: day(2024, time.January, 8)})

	if err := s.UpdateTodo(ctx, model.Todo{ID: id, ListID: listID, Title: "new"}); err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}
	todos, err := s.TodosForList(ctx, listID)
	if err != nil {
		t.Fatalf("TodosForList: %v", err)
	}
	got := todos[0]
	if got.Title != "new" || got.Description != "" || got.DueDate != nil {
		t.Fatalf("expected full replace, got %+v", got)
	}
}

func TestUpdateMissingTodoIsStoreError(t *testing.T) {
	s := newTestStore(t)
	err := s.UpdateTodo(context.Background(), model.Todo{ID: 42, Title: "ghost"})
	if err == nil {
		t.Fatalf("expected error updating missing todo")
	}
	if !IsStoreError(err) {
		t.Fatalf("expected *store.Error, got %T", err)
	}
	var se *Error
	if !errors.As(err, &se) || se.Op != "update todo" {
		t.Fatalf("expected op \"update todo\", got %v", err)
	}
}

func TestSetCompletionStampsToday(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	listID := mustCreateList(t, s, "Home")
	id := mustCreateTodo(t, s, model.Todo{ListID: listID, Title: "x"})

	if err := s.SetCompletion(ctx, id, true); err != nil {
		t.Fatalf("SetCompletion(true): %v", err)
	}
	todos, _ := s.TodosForList(ctx, listID)
	if !todos[0].Completed || todos[0].CompletedDate == nil || todos[0].CompletedDate.String() != "2024-01-05" {
		t.Fatalf("expected completed on 2024-01-05, got %+v", todos[0])
	}

	if err := s.SetCompletion(ctx, id, false); err != nil {
		t.Fatalf("SetCompletion(false): %v", err)
	}
	todos, _ = s.TodosForList(ctx, listID)
	if todos[0].Completed || todos[0].CompletedDate != nil {
		t.Fatalf("expected reopened todo, got %+v", todos[0])
	}
}

func TestDeleteTodo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	listID := mustCreateList(t, s, "Home")
	a := mustCreateTodo(t, s, model.Todo{ListID: listID, Title: "a"})
	b := mustCreateTodo(t, s, model.Todo{ListID: listID, Title: "b"})

	if err := s.DeleteTodo(ctx, a); err != nil {
		t.Fatalf("DeleteTodo: %v", err)
	}
	todos, _ := s.TodosForList(ctx, listID)
	if len(todos) != 1 || todos[0].ID != b {
		t.Fatalf("expected only %d left, got %+v", b, todos)
	}
}

func TestDeleteListCascadesTodos(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	doomed := mustCreateList(t, s, "Doomed")
	kept := mustCreateList(t, s, "Kept")
	for _, title := range []string{"a", "b", "c"} {
		mustCreateTodo(t, s, model.Todo{ListID: doomed, Title: title, DueDate: day(2024, time.January, 1)})
	}
	keptTodo := mustCreateTodo(t, s, model.Todo{ListID: kept, Title: "stay", DueDate: day(2024, time.January, 1)})

	if err := s.DeleteList(ctx, doomed); err != nil {
		t.Fatalf("DeleteList: %v", err)
	}

	lists, _ := s.Lists(ctx)
	if len(lists) != 1 || lists[0].ID != kept {
		t.Fatalf("expected only list %d, got %+v", kept, lists)
	}
	orphans, _ := s.TodosForList(ctx, doomed)
	if len(orphans) != 0 {
		t.Fatalf("expected no todos left for deleted list, got %d", len(orphans))
	}
	// The due-by query scans every list, so it would surface orphans.
	due, err := s.IncompleteDueBy(ctx, model.NewDate(2024, time.December, 31))
	if err != nil {
		t.Fatalf("IncompleteDueBy: %v", err)
	}
	if len(due) != 1 || due[0].ID != keptTodo {
		t.Fatalf("expected only todo %d, got %+v", keptTodo, due)
	}
}

func TestIncompleteDueBy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	listID := mustCreateList(t, s, "L")

	early := mustCreateTodo(t, s, model.Todo{ListID: listID, Title: "early", DueDate: day(2024, time.January, 2)})
	onDay := mustCreateTodo(t, s, model.Todo{ListID: listID, Title: "on day", DueDate: day(2024, time.January, 5)})
	mustCreateTodo(t, s, model.Todo{ListID: listID, Title: "later", DueDate: day(2024, time.January, 6)})
	mustCreateTodo(t, s, model.Todo{ListID: listID, Title: "undated"})
	mustCreateTodo(t, s, model.Todo{
		ListID: listID, Title: "done", DueDate: day(2024, time.January, 1),
		Completed: true, CompletedDate: day(2024, time.January, 1),
	})

	got, err := s.IncompleteDueBy(ctx, model.NewDate(2024, time.January, 5))
	if err != nil {
		t.Fatalf("IncompleteDueBy: %v", err)
	}
	if len(got) != 2 || got[0].ID != early || got[1].ID != onDay {
		t.Fatalf("expected [%d %d], got %+v", early, onDay, got)
	}
}

func TestOpenFailureIsStoreError(t *testing.T) {
	// A store dir nested under a regular file can never be created.
	base := t.TempDir()
	s := Store{Dir: base}
	if _, err := s.CreateList(context.Background(), "x"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	bad := Store{Dir: filepath.Join(base, dbFileName, "nested")}
	_, err := bad.Lists(context.Background())
	if err == nil || !IsStoreError(err) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestConcurrentWritersShareOneFile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	listID := mustCreateList(t, s, "L")

	const n = 16
	var wg sync.WaitGroup
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.CreateTodo(ctx, model.Todo{ListID: listID, Title: "t"}); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Errorf("concurrent CreateTodo: %v", err)
	}
	todos, err := s.TodosForList(ctx, listID)
	if err != nil {
		t.Fatalf("TodosForList: %v", err)
	}
	if len(todos) != n {
		t.Fatalf("expected %d todos, got %d", n, len(todos))
	}
}

func TestDefaultDirHonorsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	got, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}

func TestDefaultDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvDir, "")
	t.Setenv("HOME", home)
	got, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir: %v", err)
	}
	if got != filepath.Join(home, ".todo") {
		t.Fatalf("expected ~/.todo under %q, got %q", home, got)
	}
}
