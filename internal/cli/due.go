package cli

import (
	"errors"
	"fmt"
	"io"

	"todo-cli/internal/model"

	"github.com/spf13/cobra"
)

type dueTodos []model.Todo

func (ts dueTodos) WriteText(w io.Writer) error {
	for _, t := range ts {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.String()
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%q\n", t.ID, due, t.Title); err != nil {
			return err
		}
	}
	return nil
}

type dueCount struct {
	Date  model.Date `json:"date"`
	Count int        `json:"count"`
}

func (c dueCount) WriteText(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.Count)
	return err
}

// runDue is the one-shot query: incomplete todos due on or before --date
// (today when only --count is given). Store failures are reported on stdout
// and do not change the exit status.
func runDue(cmd *cobra.Command, app *App) error {
	date := app.today()
	if cmd.Flags().Changed("date") {
		d, err := model.ParseDate(app.Date)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
		date = d
	}

	s, err := openStore(app)
	if err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Err: %v\n", err)
		return nil
	}
	todos, err := s.IncompleteDueBy(cmdContext(cmd), date)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Err: %v\n", err)
		return nil
	}

	if app.Count {
		return writeOut(cmd, app, dueCount{Date: date, Count: len(todos)})
	}
	return writeOut(cmd, app, dueTodos(todos))
}
