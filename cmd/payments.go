package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewPaymentsCommand creates the payments command group
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Browse payment transactions",
		Example: `  lawadmin payments list
  lawadmin payments list --status REFUNDED`,
	}

	cmd.AddCommand(newPaymentsListCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	var (
		page        int
		limit       int
		status      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			state := api.NewListState(limit)
			state.SetFilter("status", status)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListPayments(ctx, state.Encode())
				if err != nil {
					return api.Pagination{}, nil, err
				}
				render := func() {
					fmt.Printf("Total: %s\n\n", format.Dollars(result.TotalAmount))
					printPaymentsTable(result.Data)
				}
				return result.Pagination, render, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.StringVar(&status, "status", "", "Status filter (COMPLETED, PENDING or REFUNDED)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printPaymentsTable(payments []api.Payment) {
	if len(payments) == 0 {
		fmt.Println("No payments found")
		return
	}

	fmt.Printf("%-24s %-24s %-16s %-10s %-12s %s\n", "CLIENT", "LAWYER", "CATEGORY", "AMOUNT", "STATUS", "DATE")
	for _, p := range payments {
		lawyer := format.Dash
		if p.Consultation.Lawyer != nil {
			lawyer = p.Consultation.Lawyer.User.Name()
		}
		fmt.Printf("%-24s %-24s %-16s %-10s %-12s %s\n",
			format.Truncate(p.Consultation.Client.Name(), 24),
			format.Truncate(lawyer, 24),
			format.Truncate(p.Consultation.Category, 16),
			format.Currency(p.Amount),
			colorStatus(p.Status),
			format.Date(p.CreatedAt),
		)
	}
}
