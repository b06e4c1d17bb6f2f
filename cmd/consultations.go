package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewConsultationsCommand creates the consultations command group
func NewConsultationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consultations",
		Short: "Browse platform consultations",
		Example: `  lawadmin consultations list
  lawadmin consultations list --status ACTIVE`,
	}

	cmd.AddCommand(newConsultationsListCommand())

	return cmd
}

func newConsultationsListCommand() *cobra.Command {
	var (
		page        int
		limit       int
		status      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List consultations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			state := api.NewListState(limit)
			state.SetFilter("status", status)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListConsultations(ctx, state.Encode())
				if err != nil {
					return api.Pagination{}, nil, err
				}
				return result.Pagination, func() { printConsultationsTable(result.Data) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.StringVar(&status, "status", "", "Status filter (PENDING, TRIAL, ACTIVE, COMPLETED or CANCELLED)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printConsultationsTable(consultations []api.Consultation) {
	if len(consultations) == 0 {
		fmt.Println("No consultations found")
		return
	}

	fmt.Printf("%-24s %-24s %-16s %-12s %-10s %s\n", "CLIENT", "LAWYER", "CATEGORY", "STATUS", "PAYMENT", "DATE")
	for _, c := range consultations {
		lawyer := format.Dash
		if c.Lawyer != nil {
			lawyer = c.Lawyer.User.Name()
		}
		payment := format.Dash
		if c.Payment != nil {
			payment = format.Currency(c.Payment.Amount)
		}
		fmt.Printf("%-24s %-24s %-16s %-12s %-10s %s\n",
			format.Truncate(c.Client.Name(), 24),
			format.Truncate(lawyer, 24),
			format.Truncate(c.Category, 16),
			colorStatus(c.Status),
			payment,
			format.Date(c.CreatedAt),
		)
	}
}
