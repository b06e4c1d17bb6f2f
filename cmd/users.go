package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform clients",
		Example: `  lawadmin users list
  lawadmin users list --search davis --page 2
  lawadmin users list --consultations 5+
  lawadmin users suspend usr_123
  lawadmin users unsuspend usr_123`,
	}

	cmd.AddCommand(
		newUsersListCommand(),
		newUserSuspendCommand(),
		newUserUnsuspendCommand(),
	)

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		page        int
		limit       int
		search      string
		role        string
		bucket      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List platform users",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			state := api.NewListState(limit)
			state.SetFilter("role", role)
			state.SetFilter("search", search)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListUsers(ctx, state.Encode())
				if err != nil {
					return api.Pagination{}, nil, err
				}
				// The consultation buckets narrow only the fetched page.
				rows := api.FilterUsersByConsultations(result.Data, bucket)
				return result.Pagination, func() { printUsersTable(rows) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.StringVar(&search, "search", "", "Search by name or email")
	flags.StringVar(&role, "role", "CLIENT", "Role filter (CLIENT or LAWYER)")
	flags.StringVar(&bucket, "consultations", "", "Consultation-count bucket: 0, 1-5 or 5+ (filters the fetched page only)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printUsersTable(users []api.User) {
	if len(users) == 0 {
		fmt.Println("No users found")
		return
	}

	fmt.Printf("%-28s %-30s %-16s %-14s %-12s %s\n", "NAME", "EMAIL", "PHONE", "CONSULTATIONS", "JOINED", "STATUS")
	for _, u := range users {
		status := "active"
		if u.Suspended {
			status = redText.Sprint("suspended")
		}
		fmt.Printf("%-28s %-30s %-16s %-14d %-12s %s\n",
			format.Truncate(u.Name(), 28),
			format.Truncate(u.Email, 30),
			format.NullPhone(u.Phone),
			u.Counts.ConsultationsAsClient,
			format.Date(u.CreatedAt),
			status,
		)
	}
}

func newUserSuspendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suspend <user-id>",
		Short: "Suspend a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.SuspendUser(cmd.Context(), args[0], true); err != nil {
				return fmt.Errorf("failed to suspend user: %v", err)
			}
			fmt.Printf("User %s suspended\n", args[0])
			return nil
		},
	}
}

func newUserUnsuspendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unsuspend <user-id>",
		Short: "Lift a user suspension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.SuspendUser(cmd.Context(), args[0], false); err != nil {
				return fmt.Errorf("failed to unsuspend user: %v", err)
			}
			fmt.Printf("User %s unsuspended\n", args[0])
			return nil
		},
	}
}
