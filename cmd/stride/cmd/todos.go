package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/strideapp/stride/client"
)

func TodosCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "todos",
		Short: "List and manage todos",
	}
	c.AddCommand(todosListCmd(), todosAddCmd(), todosToggleCmd(), todosRmCmd())
	return c
}

func todosListCmd() *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "list",
		Short: "List open todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s, err := e.requireSession()
			if err != nil {
				return err
			}
			var completed *bool
			if !all {
				f := false
				completed = &f
			}
			todos, err := e.Mirror.Todos(cmd.Context(), s, completed)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDONE\tPRIORITY\tTITLE")
			for _, t := range todos {
				done := " "
				if t.Completed {
					done = "x"
				}
				fmt.Fprintf(w, "%s\t[%s]\t%s\t%s\n", shortID(t.ID), done, t.Priority, t.Title)
			}
			return w.Flush()
		},
	}
	c.Flags().BoolVar(&all, "all", false, "include completed todos")
	return c
}

func todosAddCmd() *cobra.Command {
	var priority, category string

	c := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s, err := e.requireSession()
			if err != nil {
				return err
			}
			t, err := e.Mirror.CreateTodo(cmd.Context(), s, client.TodoInput{
				Title:    args[0],
				Priority: priority,
				Category: category,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created todo %s: %s\n", shortID(t.ID), t.Title)
			return nil
		},
	}
	c.Flags().StringVar(&priority, "priority", "medium", "low, medium or high")
	c.Flags().StringVar(&category, "category", "", "free-form category")
	return c
}

func todosToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo between open and done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s, err := e.requireSession()
			if err != nil {
				return err
			}
			id, err := resolveTodoID(cmd, e, s, args[0])
			if err != nil {
				return err
			}
			t, err := e.Mirror.ToggleTodo(cmd.Context(), s, id)
			if err != nil {
				return err
			}
			state := "open"
			if t.Completed {
				state = "done"
			}
			fmt.Printf("%s is now %s\n", t.Title, state)
			return nil
		},
	}
}

func todosRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s, err := e.requireSession()
			if err != nil {
				return err
			}
			id, err := resolveTodoID(cmd, e, s, args[0])
			if err != nil {
				return err
			}
			if err := e.Mirror.DeleteTodo(cmd.Context(), s, id); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	}
}

func resolveTodoID(cmd *cobra.Command, e *env, s *client.Session, arg string) (string, error) {
	todos, err := e.Mirror.Todos(cmd.Context(), s, nil)
	if err != nil {
		return "", err
	}
	return matchID(arg, todos, func(t client.Todo) string { return t.ID })
}
