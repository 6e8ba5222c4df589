package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo-cli/internal/model"
	"todo-cli/internal/todoutil"

	"github.com/spf13/cobra"
)

type listRows []model.TodoList

func (ls listRows) WriteText(w io.Writer) error {
	for _, l := range ls {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", l.ID, l.Title); err != nil {
			return err
		}
	}
	return nil
}

type todoRows []model.Todo

func (ts todoRows) WriteText(w io.Writer) error {
	for _, t := range ts {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.String()
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, box, due, t.Title); err != nil {
			return err
		}
	}
	return nil
}

func newListsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Print all todo lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return err
			}
			lists, err := s.Lists(cmdContext(cmd))
			if err != nil {
				return err
			}
			return writeOut(cmd, app, listRows(lists))
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <list-id>",
		Short: "Print the todos of a list in display order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.TrimSpace(args[0])
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid list id: %q", args[0])
			}

			s, err := openStore(app)
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)
			lists, err := s.Lists(ctx)
			if err != nil {
				return err
			}
			found := false
			for _, l := range lists {
				if l.ID == id {
					found = true
					break
				}
			}
			if !found {
				return errNotFound("list", raw)
			}

			todos, err := s.TodosForList(ctx, id)
			if err != nil {
				return err
			}
			todoutil.SortForDisplay(todos)
			return writeOut(cmd, app, todoRows(todos))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
