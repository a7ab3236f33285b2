package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/Klea008/bookctl/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the catalog service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Already logged in? Redirect like the login route does.
			store.CheckAuth(cmd.Context())
			if store.Authenticated() {
				ok("Already logged in as %s", store.User().Email)
				return nil
			}

			var err error
			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			if err := store.Login(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			ok("%s", store.TakeNotice())
			printLandingHint()
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	return cmd
}

func newSignupCmd() *cobra.Command {
	var (
		fullName string
		email    string
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account on the catalog service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if fullName == "" {
				fullName, err = promptLine("Full name: ")
				if err != nil {
					return err
				}
			}
			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			if err := store.Signup(cmd.Context(), fullName, email, password); err != nil {
				return fmt.Errorf("signup failed: %w", err)
			}
			ok("%s", store.TakeNotice())
			printLandingHint()
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Logout(cmd.Context()); err != nil {
				// The local session is gone either way.
				warn("Logout call failed: %v", err)
			}
			if msg := store.TakeNotice(); msg != "" {
				ok("%s", msg)
			} else {
				ok("Logged out")
			}
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store.CheckAuth(cmd.Context())
			user := store.User()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			header("Session")
			printField("name", user.FullName)
			printField("email", user.Email)
			printField("role", user.Role)
			return nil
		},
	}
}

func printLandingHint() {
	switch store.Landing() {
	case "paged":
		fmt.Println("Run 'bookctl paged' to manage the catalog.")
	case "browse":
		fmt.Println("Run 'bookctl browse' to explore the catalog.")
	}
}

// stdin is shared so consecutive prompts don't lose buffered input.
var stdin = bufio.NewReader(os.Stdin)

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads without echo on a TTY, falling back to a plain
// line read for piped input.
func promptPassword(prompt string) (string, error) {
	if !util.IsTTY() {
		return promptLine(prompt)
	}
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(bytePassword), nil
}
