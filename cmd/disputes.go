package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewDisputesCommand creates the disputes command group
func NewDisputesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disputes",
		Short: "Manage client-lawyer disputes",
		Example: `  lawadmin disputes list --status OPEN
  lawadmin disputes resolve dsp_123 --type FULL_REFUND --note "Lawyer no-show"
  lawadmin disputes resolve dsp_123 --type PARTIAL_REFUND --refund 2500 --note "Half session held"
  lawadmin disputes note dsp_123 "Waiting on lawyer statement"`,
	}

	cmd.AddCommand(
		newDisputesListCommand(),
		newDisputeResolveCommand(),
		newDisputeNoteCommand(),
	)

	return cmd
}

func newDisputesListCommand() *cobra.Command {
	var (
		page        int
		limit       int
		status      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List disputes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			state := api.NewListState(limit)
			state.SetFilter("status", status)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListDisputes(ctx, state.Encode())
				if err != nil {
					return api.Pagination{}, nil, err
				}
				return result.Pagination, func() { printDisputesTable(result.Data) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.StringVar(&status, "status", "", "Status filter (OPEN, LAWYER_RESPONSE, MEDIATION, ESCALATED, RESOLVED or CLOSED)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printDisputesTable(disputes []api.Dispute) {
	if len(disputes) == 0 {
		fmt.Println("No disputes found")
		return
	}

	fmt.Printf("%-12s %-22s %-22s %-16s %-10s %-16s %s\n", "ID", "CLIENT", "LAWYER", "CATEGORY", "AMOUNT", "STATUS", "FILED")
	for _, d := range disputes {
		amount := format.Dash
		if d.Consultation.Payment != nil {
			amount = format.Currency(d.Consultation.Payment.Amount)
		}
		fmt.Printf("%-12s %-22s %-22s %-16s %-10s %-16s %s\n",
			format.Truncate(d.ID, 12),
			format.Truncate(d.FiledBy.Name(), 22),
			format.Truncate(d.FiledAgainst.Name(), 22),
			format.Truncate(d.Category, 16),
			amount,
			colorStatus(d.Status),
			format.Date(d.CreatedAt),
		)
	}
}

func newDisputeResolveCommand() *cobra.Command {
	var (
		resolutionType string
		note           string
		refund         int64
	)

	validTypes := []string{
		api.ResolutionFullRefund,
		api.ResolutionPartialRefund,
		api.ResolutionNoRefund,
		api.ResolutionDismissed,
	}

	cmd := &cobra.Command{
		Use:   "resolve <dispute-id>",
		Short: "Resolve a dispute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid := false
			for _, t := range validTypes {
				if resolutionType == t {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("invalid resolution type %q, expected one of %s",
					resolutionType, strings.Join(validTypes, ", "))
			}

			res := api.DisputeResolution{
				ResolutionType: resolutionType,
				ResolutionNote: note,
			}
			if resolutionType == api.ResolutionPartialRefund {
				res.RefundAmount = &refund
			}

			client := newAPIClient()
			if err := client.ResolveDispute(cmd.Context(), args[0], res); err != nil {
				return fmt.Errorf("failed to resolve dispute: %v", err)
			}
			fmt.Printf("Dispute %s resolved (%s)\n", args[0], resolutionType)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&resolutionType, "type", "", "Resolution type: "+strings.Join(validTypes, ", "))
	flags.StringVar(&note, "note", "", "Resolution note")
	flags.Int64Var(&refund, "refund", 0, "Refund amount in cents (PARTIAL_REFUND only)")
	cmd.MarkFlagRequired("type")

	return cmd
}

func newDisputeNoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "note <dispute-id> <text>",
		Short: "Attach an admin note to a dispute",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return fmt.Errorf("note text cannot be empty")
			}
			client := newAPIClient()
			if err := client.AddDisputeNote(cmd.Context(), args[0], text); err != nil {
				return fmt.Errorf("failed to add note: %v", err)
			}
			fmt.Println("Note added")
			return nil
		},
	}
}
