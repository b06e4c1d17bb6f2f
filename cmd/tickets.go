package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/demo"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewTicketsCommand creates the tickets command group
func NewTicketsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Work support tickets",
		Example: `  lawadmin tickets list --status OPEN
  lawadmin tickets reply tkt_123 "We are looking into this"
  lawadmin tickets status tkt_123 RESOLVED`,
	}

	cmd.AddCommand(
		newTicketsListCommand(),
		newTicketReplyCommand(),
		newTicketStatusCommand(),
	)

	return cmd
}

func newTicketsListCommand() *cobra.Command {
	var (
		page        int
		limit       int
		status      string
		category    string
		useDemo     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List support tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			useDemo = useDemo || config.GetDemoFallback()

			state := api.NewListState(limit)
			state.SetFilter("status", status)
			state.SetFilter("category", category)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListTickets(ctx, state.Encode())
				if (err != nil || len(result.Data) == 0) && useDemo {
					result = demo.Tickets(status, category, state.Page())
					err = nil
				}
				if err != nil {
					return api.Pagination{}, nil, err
				}
				return result.Pagination, func() { printTicketsTable(result.Data) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.StringVar(&status, "status", "", "Status filter (OPEN, IN_PROGRESS, RESOLVED or CLOSED)")
	flags.StringVar(&category, "category", "", "Category filter (BILLING, TECHNICAL, ACCOUNT, LEGAL or OTHER)")
	flags.BoolVar(&useDemo, "demo", false, "Fall back to bundled sample data when the API has nothing")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printTicketsTable(tickets []api.Ticket) {
	if len(tickets) == 0 {
		fmt.Println("No tickets found")
		return
	}

	fmt.Printf("%-12s %-22s %-28s %-12s %-14s %-8s %s\n", "ID", "REQUESTER", "SUBJECT", "CATEGORY", "STATUS", "REPLIES", "OPENED")
	for _, t := range tickets {
		fmt.Printf("%-12s %-22s %-28s %-12s %-14s %-8d %s\n",
			format.Truncate(t.ID, 12),
			format.Truncate(t.Requester.Name(), 22),
			format.Truncate(t.Subject, 28),
			t.Category,
			colorStatus(t.Status),
			len(t.Replies),
			format.Date(t.CreatedAt),
		)
	}
}

func newTicketReplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reply <ticket-id> <message>",
		Short: "Reply to a ticket",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(strings.Join(args[1:], " "))
			if message == "" {
				return fmt.Errorf("reply message cannot be empty")
			}
			client := newAPIClient()
			if err := client.ReplyToTicket(cmd.Context(), args[0], message); err != nil {
				return fmt.Errorf("failed to reply: %v", err)
			}
			fmt.Println("Reply sent")
			return nil
		},
	}
}

func newTicketStatusCommand() *cobra.Command {
	validStatuses := []string{
		api.TicketOpen,
		api.TicketInProgress,
		api.TicketResolved,
		api.TicketClosed,
	}

	return &cobra.Command{
		Use:   "status <ticket-id> <status>",
		Short: "Change a ticket's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := strings.ToUpper(args[1])
			valid := false
			for _, s := range validStatuses {
				if status == s {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("invalid status %q, expected one of %s",
					args[1], strings.Join(validStatuses, ", "))
			}

			client := newAPIClient()
			if err := client.SetTicketStatus(cmd.Context(), args[0], status); err != nil {
				return fmt.Errorf("failed to update ticket: %v", err)
			}
			fmt.Printf("Ticket %s set to %s\n", args[0], status)
			return nil
		},
	}
}
