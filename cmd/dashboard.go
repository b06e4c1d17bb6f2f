package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewDashboardCommand creates the dashboard command group
func NewDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform metrics",
		Example: `  lawadmin dashboard stats
  lawadmin dashboard analytics
  lawadmin dashboard open`,
	}

	cmd.AddCommand(
		newDashboardStatsCommand(),
		newDashboardAnalyticsCommand(),
		newDashboardOpenCommand(),
	)

	return cmd
}

func newDashboardStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the headline dashboard metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			stats, err := client.DashboardStats(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%-22s %d\n", "Total users:", stats.TotalUsers)
			fmt.Printf("%-22s %d\n", "Lawyers:", stats.TotalLawyers)
			fmt.Printf("%-22s %d\n", "Clients:", stats.TotalClients)
			fmt.Printf("%-22s %d\n", "Active consultations:", stats.ActiveConsultations)
			fmt.Printf("%-22s %d\n", "Consultations today:", stats.ConsultationsToday)
			fmt.Printf("%-22s %d\n", "Pending approvals:", stats.PendingApprovals)
			fmt.Printf("%-22s %s\n", "Total revenue:", format.Dollars(stats.TotalRevenue))
			fmt.Printf("%-22s %.1f\n", "Average rating:", stats.AvgRating)

			if len(stats.RecentUsers) > 0 {
				fmt.Println("\nRecent signups:")
				for _, u := range stats.RecentUsers {
					fmt.Printf("  %-24s %-28s %-8s %s\n",
						format.Truncate(u.Name(), 24),
						format.Truncate(u.Email, 28),
						u.Role,
						format.Date(u.CreatedAt),
					)
				}
			}
			return nil
		},
	}
}

func newDashboardAnalyticsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show the dashboard chart breakdowns",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			a, err := client.Analytics(cmd.Context())
			if err != nil {
				return err
			}

			printBreakdown("Consultations by category", a.ConsultationsByCategory)
			printBreakdown("Consultations by status", a.ConsultationsByStatus)
			printBreakdown("Users by role", a.UsersByRole)

			if len(a.RevenueByMonth) > 0 {
				fmt.Println("Revenue by month:")
				for _, m := range a.RevenueByMonth {
					fmt.Printf("  %-10s %s\n", m.Month, format.Dollars(m.Amount))
				}
				fmt.Println()
			}
			if len(a.RevenueByDay) > 0 {
				fmt.Println("Revenue, last days:")
				for _, d := range a.RevenueByDay {
					fmt.Printf("  %-12s %s\n", d.Date, format.Dollars(d.Amount))
				}
			}
			return nil
		},
	}
}

func printBreakdown(title string, values []api.NamedValue) {
	if len(values) == 0 {
		return
	}
	fmt.Println(title + ":")
	for _, v := range values {
		fmt.Printf("  %-24s %d\n", v.Name, v.Value)
	}
	fmt.Println()
}

func newDashboardOpenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the web admin console in a browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := config.GetDashboardURL()
			if err := browser.OpenURL(url); err != nil {
				return fmt.Errorf("failed to open %s: %v", url, err)
			}
			fmt.Printf("Opened %s\n", url)
			return nil
		},
	}
}
