package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewCalendarCommand creates the calendar command
func NewCalendarCommand() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of platform activity",
		Example: `  lawadmin calendar
  lawadmin calendar --month 2026-07`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month == "" {
				month = time.Now().Format("2006-01")
			}
			if _, err := time.Parse("2006-01", month); err != nil {
				return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
			}

			client := newAPIClient()
			data, err := client.Calendar(cmd.Context(), month)
			if err != nil {
				return err
			}
			printCalendar(month, data)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM, default current)")

	return cmd
}

func printCalendar(month string, data api.CalendarData) {
	if len(data) == 0 {
		fmt.Printf("No activity in %s\n", month)
		return
	}

	days := make([]string, 0, len(data))
	for day := range data {
		days = append(days, day)
	}
	sort.Strings(days)

	fmt.Printf("%-12s %-14s %-15s %s\n", "DAY", "REGISTRATIONS", "CONSULTATIONS", "TODOS")
	for _, day := range days {
		d := data[day]
		fmt.Printf("%-12s %-14d %-15d %d\n", day, d.Registrations, d.Consultations, len(d.Todos))
		for _, todo := range d.Todos {
			mark := "[ ]"
			if todo.Completed {
				mark = "[x]"
			}
			fmt.Printf("  %s %s (%s)\n", mark, format.Truncate(todo.Title, 50), colorStatus(todo.Priority))
		}
	}
}
