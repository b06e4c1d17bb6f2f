package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewReportsCommand creates the reports command group
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Handle user moderation reports",
		Example: `  lawadmin reports list --status PENDING
  lawadmin reports review rep_123
  lawadmin reports resolve rep_123 --resolution "Warned the user"
  lawadmin reports dismiss rep_123`,
	}

	cmd.AddCommand(
		newReportsListCommand(),
		newReportStatusCommand("review", api.ReportReviewing, "Mark a report as under review"),
		newReportStatusCommand("resolve", api.ReportResolved, "Resolve a report"),
		newReportStatusCommand("dismiss", api.ReportDismissed, "Dismiss a report"),
	)

	return cmd
}

func newReportsListCommand() *cobra.Command {
	var (
		page        int
		limit       int
		status      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List moderation reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			state := api.NewListState(limit)
			state.SetFilter("status", status)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListReports(ctx, state.Encode())
				if err != nil {
					return api.Pagination{}, nil, err
				}
				return result.Pagination, func() { printReportsTable(result.Data) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.StringVar(&status, "status", "", "Status filter (PENDING, REVIEWING, RESOLVED or DISMISSED)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printReportsTable(reports []api.Report) {
	if len(reports) == 0 {
		fmt.Println("No reports found")
		return
	}

	fmt.Printf("%-12s %-22s %-22s %-24s %-12s %s\n", "ID", "REPORTER", "REPORTED", "REASON", "STATUS", "FILED")
	for _, r := range reports {
		fmt.Printf("%-12s %-22s %-22s %-24s %-12s %s\n",
			format.Truncate(r.ID, 12),
			format.Truncate(r.Reporter.Name(), 22),
			format.Truncate(r.Reported.Name(), 22),
			format.Truncate(r.Reason, 24),
			colorStatus(r.Status),
			format.Date(r.CreatedAt),
		)
	}
}

func newReportStatusCommand(use, status, short string) *cobra.Command {
	var resolution string

	cmd := &cobra.Command{
		Use:   use + " <report-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.UpdateReport(cmd.Context(), args[0], status, resolution); err != nil {
				return fmt.Errorf("failed to update report: %v", err)
			}
			fmt.Printf("Report %s set to %s\n", args[0], status)
			return nil
		},
	}

	cmd.Flags().StringVar(&resolution, "resolution", "", "Resolution note")

	return cmd
}
