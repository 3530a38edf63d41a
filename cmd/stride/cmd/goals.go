package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/strideapp/stride/client"
)

func GoalsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "goals",
		Short: "List and manage goals",
	}
	c.AddCommand(goalsListCmd(), goalsAddCmd(), goalsDoneCmd())
	return c
}

func goalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s, err := e.requireSession()
			if err != nil {
				return err
			}
			goals, err := e.Mirror.Goals(cmd.Context(), s)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSTATUS\tPROGRESS")
			for _, g := range goals {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\n", shortID(g.ID), g.Title, g.Category, g.Status, g.Progress)
			}
			return w.Flush()
		},
	}
}

func goalsAddCmd() *cobra.Command {
	var category, timeFrame, description string

	c := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a goal",
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
			g, err := e.Mirror.CreateGoal(cmd.Context(), s, client.GoalInput{
				Title:       args[0],
				Description: description,
				Category:    category,
				TimeFrame:   timeFrame,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created goal %s: %s\n", shortID(g.ID), g.Title)
			return nil
		},
	}
	c.Flags().StringVar(&category, "category", "health", "goal category (health, career, learning, relationships)")
	c.Flags().StringVar(&timeFrame, "time-frame", "", "time frame, e.g. Q4 or 2026")
	c.Flags().StringVar(&description, "description", "", "longer description")
	return c
}

func goalsDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a goal completed",
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
			id, err := resolveGoalID(cmd, e, s, args[0])
			if err != nil {
				return err
			}
			status := "completed"
			progress := 100
			g, err := e.Mirror.UpdateGoal(cmd.Context(), s, client.GoalPatch{
				ID:       id,
				Status:   &status,
				Progress: &progress,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Completed %s\n", g.Title)
			return nil
		},
	}
}

// resolveGoalID accepts either a full id or the short prefix printed by
// the list command.
func resolveGoalID(cmd *cobra.Command, e *env, s *client.Session, arg string) (string, error) {
	goals, err := e.Mirror.Goals(cmd.Context(), s)
	if err != nil {
		return "", err
	}
	return matchID(arg, goals, func(g client.Goal) string { return g.ID })
}
