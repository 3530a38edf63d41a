package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/strideapp/stride/client"
)

func CheckinCmd() *cobra.Command {
	var mood, energy, notes string
	var accomplishments, challenges, goals []string
	var list bool

	c := &cobra.Command{
		Use:   "checkin",
		Short: "Record a daily check-in, or list past ones with --list",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s, err := e.requireSession()
			if err != nil {
				return err
			}

			if list {
				return listCheckIns(cmd, e, s)
			}

			today := time.Now().Truncate(24 * time.Hour)
			ci, err := e.Mirror.CreateCheckIn(cmd.Context(), s, client.CheckInInput{
				Date:            &today,
				Mood:            mood,
				Energy:          energy,
				Accomplishments: client.List(accomplishments),
				Challenges:      client.List(challenges),
				Goals:           client.List(goals),
				Notes:           notes,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Checked in for %s (%s mood, %s energy)\n",
				ci.Date.Format("2006-01-02"), ci.Mood, ci.Energy)
			return nil
		},
	}
	c.Flags().StringVar(&mood, "mood", "", "great, good, okay, bad or terrible")
	c.Flags().StringVar(&energy, "energy", "", "high, medium or low")
	c.Flags().StringVar(&notes, "notes", "", "free-form notes")
	c.Flags().StringArrayVar(&accomplishments, "did", nil, "something accomplished today (repeatable)")
	c.Flags().StringArrayVar(&challenges, "challenge", nil, "something that was hard today (repeatable)")
	c.Flags().StringArrayVar(&goals, "goal", nil, "focus for tomorrow (repeatable)")
	c.Flags().BoolVar(&list, "list", false, "list past check-ins instead of recording one")
	return c
}

func listCheckIns(cmd *cobra.Command, e *env, s *client.Session) error {
	checkins, err := e.Mirror.CheckIns(cmd.Context(), s)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tMOOD\tENERGY\tACCOMPLISHMENTS")
	for _, ci := range checkins {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			ci.Date.Format("2006-01-02"), ci.Mood, ci.Energy,
			strings.Join(ci.Accomplishments, "; "))
	}
	return w.Flush()
}
