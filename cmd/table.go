package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/lawyerdirect/lawadmin/internal/api"
)

var (
	greenText  = color.New(color.FgGreen)
	yellowText = color.New(color.FgYellow)
	redText    = color.New(color.FgRed)
	blueText   = color.New(color.FgBlue)
	grayText   = color.New(color.FgHiBlack)
)

// colorStatus renders a status or priority value in the console's
// badge colors.
func colorStatus(status string) string {
	switch status {
	case "VERIFIED", "ACTIVE", "COMPLETED", "RESOLVED", "APPROVED", "low":
		return greenText.Sprint(status)
	case "PENDING", "OPEN", "DRAFT", "TRIAL", "medium":
		return yellowText.Sprint(status)
	case "REJECTED", "CANCELLED", "ESCALATED", "REFUNDED", "high":
		return redText.Sprint(status)
	case "IN_PROGRESS", "REVIEWING", "MEDIATION", "LAWYER_RESPONSE":
		return blueText.Sprint(status)
	case "CLOSED", "DISMISSED":
		return grayText.Sprint(status)
	default:
		return status
	}
}

// printPageFooter prints the pagination line under a table, marking
// the active page.
func printPageFooter(p api.Pagination) {
	if p.Pages <= 1 {
		return
	}
	fmt.Printf("\nPage %d of %d (%d total)\n", p.Page, p.Pages, p.Total)
}
