package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/strideapp/stride/cmd/stride/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stride",
		Short: "Track goals, todos, notes and daily check-ins from the terminal",
		Long: `stride talks to a Stride server and keeps a local mirror of your
data, so listings keep working when the server is unreachable.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.LoginCmd())
	rootCmd.AddCommand(cmd.LogoutCmd())
	rootCmd.AddCommand(cmd.WhoamiCmd())
	rootCmd.AddCommand(cmd.GoalsCmd())
	rootCmd.AddCommand(cmd.TodosCmd())
	rootCmd.AddCommand(cmd.NotesCmd())
	rootCmd.AddCommand(cmd.CheckinCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
