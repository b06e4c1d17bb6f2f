package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/internal/api"
)

// NewGeographyCommand creates the geography command
func NewGeographyCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "geography",
		Short: "Show the per-state user distribution",
		Example: `  lawadmin geography
  lawadmin geography --top 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			raw, err := client.Geography(cmd.Context())
			if err != nil {
				return err
			}

			rows := api.SortedStates(api.NormalizeGeography(raw))
			if top > 0 && top < len(rows) {
				rows = rows[:top]
			}
			printGeographyTable(rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Only show the N busiest states")

	return cmd
}

func printGeographyTable(rows []api.StateRow) {
	if len(rows) == 0 {
		fmt.Println("No geography data")
		return
	}

	max := rows[0].Total

	fmt.Printf("%-6s %-22s %-9s %-9s %-7s %s\n", "STATE", "NAME", "CLIENTS", "LAWYERS", "TOTAL", "")
	for _, r := range rows {
		fmt.Printf("%-6s %-22s %-9d %-9d %-7d %s\n",
			r.State, r.Name, r.Clients, r.Lawyers, r.Total, heatBar(r.Total, max))
	}
}

// heatBar scales a count against the busiest state into a 20-cell bar.
func heatBar(total, max int) string {
	if max <= 0 || total <= 0 {
		return ""
	}
	cells := total * 20 / max
	if cells == 0 {
		cells = 1
	}
	bar := ""
	for i := 0; i < cells; i++ {
		bar += "█"
	}
	switch {
	case total*3 >= max*2:
		return redText.Sprint(bar)
	case total*3 >= max:
		return yellowText.Sprint(bar)
	default:
		return greenText.Sprint(bar)
	}
}
