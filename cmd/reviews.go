package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/demo"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewReviewsCommand creates the reviews command group
func NewReviewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Moderate lawyer reviews",
		Example: `  lawadmin reviews list --status PENDING
  lawadmin reviews list --rating 1
  lawadmin reviews approve rev_123
  lawadmin reviews reject rev_123 --reason "Abusive language"`,
	}

	cmd.AddCommand(
		newReviewsListCommand(),
		newReviewApproveCommand(),
		newReviewRejectCommand(),
	)

	return cmd
}

func newReviewsListCommand() *cobra.Command {
	var (
		page        int
		limit       int
		status      string
		rating      int
		useDemo     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reviews",
		Long: `List reviews awaiting moderation. With --demo (or demo.fallback in
the config) the bundled sample data is substituted when the API has
nothing; without it an empty result is shown as-is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			useDemo = useDemo || config.GetDemoFallback()

			state := api.NewListState(limit)
			state.SetFilter("status", status)
			if rating > 0 {
				state.SetFilter("rating", strconv.Itoa(rating))
			}
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListReviews(ctx, state.Encode())
				if (err != nil || len(result.Data) == 0) && useDemo {
					result = demo.Reviews(status, rating, state.Page())
					err = nil
				}
				if err != nil {
					return api.Pagination{}, nil, err
				}
				return result.Pagination, func() { printReviewsTable(result.Data) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.StringVar(&status, "status", "", "Status filter (PENDING, APPROVED or REJECTED)")
	flags.IntVar(&rating, "rating", 0, "Exact star rating filter (1-5)")
	flags.BoolVar(&useDemo, "demo", false, "Fall back to bundled sample data when the API has nothing")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printReviewsTable(reviews []api.Review) {
	if len(reviews) == 0 {
		fmt.Println("No reviews found")
		return
	}

	fmt.Printf("%-12s %-22s %-8s %-44s %-12s %s\n", "ID", "CLIENT", "RATING", "COMMENT", "STATUS", "DATE")
	for _, r := range reviews {
		fmt.Printf("%-12s %-22s %-8s %-44s %-12s %s\n",
			format.Truncate(r.ID, 12),
			format.Truncate(r.Client.Name(), 22),
			format.Stars(r.Rating),
			format.Truncate(r.Comment, 44),
			colorStatus(r.Status),
			format.Date(r.CreatedAt),
		)
	}
}

func newReviewApproveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <review-id>",
		Short: "Publish a pending review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.ApproveReview(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to approve review: %v", err)
			}
			fmt.Printf("Review %s approved\n", args[0])
			return nil
		},
	}
}

func newReviewRejectCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <review-id>",
		Short: "Reject a pending review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.RejectReview(cmd.Context(), args[0], reason); err != nil {
				return fmt.Errorf("failed to reject review: %v", err)
			}
			fmt.Printf("Review %s rejected\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason shown to the reviewer")
	cmd.MarkFlagRequired("reason")

	return cmd
}
