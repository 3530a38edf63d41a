package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/strideapp/stride/client"
)

func NotesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "notes",
		Short: "List and manage notes",
	}
	c.AddCommand(notesListCmd(), notesAddCmd())
	return c
}

func notesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes, pinned first",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s, err := e.requireSession()
			if err != nil {
				return err
			}
			notes, err := e.Mirror.Notes(cmd.Context(), s)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPIN\tTITLE\tUPDATED")
			for _, n := range notes {
				pin := " "
				if n.IsPinned {
					pin = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shortID(n.ID), pin, n.Title, n.UpdatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
}

func notesAddCmd() *cobra.Command {
	var category string
	var pinned bool

	c := &cobra.Command{
		Use:   "add <title> <content>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s, err := e.requireSession()
			if err != nil {
				return err
			}
			n, err := e.Mirror.CreateNote(cmd.Context(), s, client.NoteInput{
				Title:    args[0],
				Content:  args[1],
				Category: category,
				IsPinned: pinned,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created note %s: %s\n", shortID(n.ID), n.Title)
			return nil
		},
	}
	c.Flags().StringVar(&category, "category", "", "free-form category")
	c.Flags().BoolVar(&pinned, "pin", false, "pin the note to the top of listings")
	return c
}
