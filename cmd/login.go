package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lawyerdirect/lawadmin/internal/auth"
)

// LoginOptions holds command options
type LoginOptions struct {
	Email    string
	Password string
}

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	opts := &LoginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the admin API",
		Long: `Authenticate against the admin API with your staff email and
password. The bearer token is stored in the credentials file and
attached to every subsequent command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Email, "email", "e", "", "Admin email address")
	flags.StringVarP(&opts.Password, "password", "p", "", "Admin password (prompted when omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, opts *LoginOptions) error {
	email := opts.Email
	if email == "" {
		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %v", err)
		}
		email = strings.TrimSpace(input)
	}

	password := opts.Password
	if password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %v", err)
		}
		password = string(raw)
	}

	client := newAPIClient()
	resp, err := client.Login(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %v", err)
	}
	if resp.Token == "" {
		return fmt.Errorf("login failed: server returned no token")
	}

	store := auth.NewStore()
	if err := store.Save(auth.Credentials{Token: resp.Token, Email: resp.User.Email}); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", resp.User.Email)
	if exp, ok := auth.Expiry(resp.Token); ok {
		fmt.Printf("Session valid until %s\n", exp.Format("Mon Jan 2 15:04:05 2006"))
	}
	return nil
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.NewStore().Clear(); err != nil {
				return fmt.Errorf("failed to clear credentials: %v", err)
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}
