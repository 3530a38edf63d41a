package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func LoginCmd() *cobra.Command {
	var email, password string
	var signup bool

	c := &cobra.Command{
		Use:   "login",
		Short: "Log in to the server and save the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}

			if email == "" {
				email, err = prompt("Email: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = prompt("Password: ")
				if err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			if signup {
				e.Session, err = e.Client.Signup(ctx, email, password)
			} else {
				e.Session, err = e.Client.Login(ctx, email, password)
			}
			if err != nil {
				return err
			}
			if err := e.Mirror.Store().SetUser(e.Session.UserID); err != nil {
				return err
			}
			if err := e.saveProfile(); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", e.Session.Email)
			return nil
		},
	}
	c.Flags().StringVar(&email, "email", "", "account email")
	c.Flags().StringVar(&password, "password", "", "account password")
	c.Flags().BoolVar(&signup, "signup", false, "create a new account instead of logging in")
	return c
}

func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear the local mirror",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			// Best effort: the local session goes away even if the
			// server is unreachable.
			_ = e.Client.Logout(cmd.Context())
			e.Client.SetAuthToken("")
			e.Session = nil
			if err := e.Mirror.Store().Clear(); err != nil {
				return err
			}
			if err := e.saveProfile(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func WhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			s, err := e.requireSession()
			if err != nil {
				return err
			}
			if fresh, err := e.Client.Me(cmd.Context()); err == nil {
				s = fresh
			}
			fmt.Printf("%s (%s)\n", s.Email, s.UserID)
			return nil
		},
	}
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
