package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewLawyersCommand creates the lawyers command group
func NewLawyersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lawyers",
		Short: "Manage lawyer profiles and verification",
		Example: `  lawadmin lawyers list --verification PENDING
  lawadmin lawyers verify lwy_123
  lawadmin lawyers reject lwy_123
  lawadmin lawyers top`,
	}

	cmd.AddCommand(
		newLawyersListCommand(),
		newLawyerVerifyCommand(),
		newLawyerRejectCommand(),
		newLawyersTopCommand(),
	)

	return cmd
}

func newLawyersListCommand() *cobra.Command {
	var (
		page         int
		limit        int
		search       string
		verification string
		interactive  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lawyer profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			state := api.NewListState(limit)
			state.SetFilter("search", search)
			state.SetFilter("verification", verification)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListLawyers(ctx, state.Encode())
				if err != nil {
					return api.Pagination{}, nil, err
				}
				return result.Pagination, func() { printLawyersTable(result.Data) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.StringVar(&search, "search", "", "Search lawyers")
	flags.StringVar(&verification, "verification", "", "Verification filter (PENDING, VERIFIED or REJECTED)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printLawyersTable(lawyers []api.Lawyer) {
	if len(lawyers) == 0 {
		fmt.Println("No lawyers found")
		return
	}

	fmt.Printf("%-26s %-12s %-6s %-28s %-12s %s\n", "NAME", "BAR #", "STATE", "SPECIALIZATIONS", "RATING", "STATUS")
	for _, l := range lawyers {
		specs := strings.Join(l.Specializations, ", ")
		rating := fmt.Sprintf("%.1f (%d)", l.Rating, l.Counts.Reviews)
		fmt.Printf("%-26s %-12s %-6s %-28s %-12s %s\n",
			format.Truncate(l.Name(), 26),
			l.BarNumber,
			l.LicenseState,
			format.Truncate(specs, 28),
			rating,
			colorStatus(l.VerificationStatus),
		)
	}
}

func newLawyerVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <lawyer-id>",
		Short: "Approve a pending lawyer profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.VerifyLawyer(cmd.Context(), args[0], api.VerificationVerified); err != nil {
				return fmt.Errorf("failed to verify lawyer: %v", err)
			}
			fmt.Printf("Lawyer %s verified\n", args[0])
			return nil
		},
	}
}

func newLawyerRejectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <lawyer-id>",
		Short: "Reject a pending lawyer profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.VerifyLawyer(cmd.Context(), args[0], api.VerificationRejected); err != nil {
				return fmt.Errorf("failed to reject lawyer: %v", err)
			}
			fmt.Printf("Lawyer %s rejected\n", args[0])
			return nil
		},
	}
}

func newLawyersTopCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the lawyer leaderboard",
		Long: `Show top performing lawyers. In interactive mode, entering a column
name re-sorts the fetched rows: first selection sorts descending,
selecting the same column again flips to ascending.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			rows, err := client.TopLawyers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch leaderboard: %v", err)
			}

			var sortState api.SortState
			sortState.Select(api.SortByRevenue)
			api.SortTopLawyers(rows, sortState)
			printTopLawyers(rows, sortState)

			if !interactive {
				return nil
			}

			reader := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("\nSort by [revenue/consultations/rating/name] or [q]uit: ")
				input, err := reader.ReadString('\n')
				if err != nil {
					return nil
				}
				input = strings.TrimSpace(strings.ToLower(input))
				switch input {
				case "", "q":
					return nil
				case api.SortByRevenue, api.SortByConsultations, api.SortByRating, api.SortByName:
					sortState.Select(input)
					api.SortTopLawyers(rows, sortState)
					printTopLawyers(rows, sortState)
				default:
					fmt.Println("Unknown column")
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Re-sort interactively by column")

	return cmd
}

func printTopLawyers(rows []api.TopLawyer, state api.SortState) {
	if len(rows) == 0 {
		fmt.Println("No leaderboard data")
		return
	}

	direction := "desc"
	if state.Ascending() {
		direction = "asc"
	}
	fmt.Printf("Top lawyers, sorted by %s (%s)\n\n", state.Key(), direction)
	fmt.Printf("%-4s %-26s %-22s %-14s %-12s %s\n", "#", "NAME", "SPECIALIZATION", "CONSULTATIONS", "REVENUE", "RATING")
	for i, row := range rows {
		fmt.Printf("%-4d %-26s %-22s %-14d %-12s %.1f\n",
			i+1,
			format.Truncate(row.Name, 26),
			format.Truncate(row.Specialization, 22),
			row.Consultations,
			format.Currency(row.Revenue),
			row.Rating,
		)
	}
}
