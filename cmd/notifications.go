package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewNotificationsCommand creates the notifications command group
func NewNotificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Send broadcasts and watch platform activity",
		Example: `  lawadmin notifications send --title "Maintenance tonight" --body "Down 2-3am UTC" --target ALL
  lawadmin notifications history
  lawadmin notifications watch`,
	}

	cmd.AddCommand(
		newNotificationSendCommand(),
		newNotificationHistoryCommand(),
		newNotificationWatchCommand(),
	)

	return cmd
}

func newNotificationSendCommand() *cobra.Command {
	var (
		title  string
		body   string
		target string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Broadcast a push notification to a user segment",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := api.BroadcastInput{
				Title:  title,
				Body:   body,
				Target: strings.ToUpper(target),
			}

			client := newAPIClient()
			sent, err := client.SendBroadcast(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("failed to send broadcast: %v", err)
			}
			fmt.Printf("Broadcast sent to %d users (%s)\n", sent.SentCount, sent.Target)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&title, "title", "", "Notification title")
	flags.StringVar(&body, "body", "", "Notification body")
	flags.StringVar(&target, "target", api.TargetAll, "Segment: ALL, CLIENTS or LAWYERS")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("body")

	return cmd
}

func newNotificationHistoryCommand() *cobra.Command {
	var (
		page        int
		limit       int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously sent broadcasts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			state := api.NewListState(limit)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListBroadcasts(ctx, state.Encode())
				if err != nil {
					return api.Pagination{}, nil, err
				}
				return result.Pagination, func() { printBroadcastsTable(result.Data) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printBroadcastsTable(broadcasts []api.Broadcast) {
	if len(broadcasts) == 0 {
		fmt.Println("No broadcasts found")
		return
	}

	fmt.Printf("%-28s %-9s %-8s %-16s %s\n", "TITLE", "TARGET", "SENT", "BY", "DATE")
	for _, b := range broadcasts {
		fmt.Printf("%-28s %-9s %-8d %-16s %s\n",
			format.Truncate(b.Title, 28),
			b.Target,
			b.SentCount,
			format.Truncate(b.SentBy, 16),
			format.Date(b.CreatedAt),
		)
	}
}

func newNotificationWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream live admin activity until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client := newAPIClient()
			events, err := client.WatchEvents(ctx)
			if err != nil {
				return fmt.Errorf("failed to open event stream: %v", err)
			}

			fmt.Println("Watching admin activity (Ctrl-C to stop)")
			for ev := range events {
				fmt.Printf("%s  %-14s %-20s %s\n",
					ev.At.Local().Format("15:04:05"),
					ev.Type,
					format.Truncate(ev.Actor, 20),
					ev.Message,
				)
			}
			return nil
		},
	}
}
