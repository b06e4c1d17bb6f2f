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

// NewCareersCommand creates the careers command group
func NewCareersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "careers",
		Short: "Manage career postings and applications",
		Example: `  lawadmin careers list --status ACTIVE
  lawadmin careers create --title "Staff Engineer" --department Engineering --location Remote --type REMOTE --description "..." --status DRAFT
  lawadmin careers applications job_123
  lawadmin careers rm job_123`,
	}

	cmd.AddCommand(
		newCareersListCommand(),
		newCareerCreateCommand(),
		newCareerUpdateCommand(),
		newCareerRemoveCommand(),
		newCareerApplicationsCommand(),
		newCareerApplicationRemoveCommand(),
	)

	return cmd
}

func newCareersListCommand() *cobra.Command {
	var (
		page        int
		limit       int
		status      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List career postings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			state := api.NewListState(limit)
			state.SetFilter("status", status)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListCareerPostings(ctx, state.Encode())
				if err != nil {
					return api.Pagination{}, nil, err
				}
				return result.Pagination, func() { printPostingsTable(result.Data) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.StringVar(&status, "status", "", "Status filter (ACTIVE, DRAFT or CLOSED)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printPostingsTable(postings []api.CareerPosting) {
	if len(postings) == 0 {
		fmt.Println("No postings found")
		return
	}

	fmt.Printf("%-12s %-28s %-14s %-14s %-12s %-8s %-18s %s\n",
		"ID", "TITLE", "DEPARTMENT", "LOCATION", "TYPE", "APPS", "SALARY", "STATUS")
	for _, p := range postings {
		fmt.Printf("%-12s %-28s %-14s %-14s %-12s %-8d %-18s %s\n",
			format.Truncate(p.ID, 12),
			format.Truncate(p.Title, 28),
			format.Truncate(p.Department, 14),
			format.Truncate(p.Location, 14),
			p.EmploymentType,
			p.Counts.Applications,
			salaryRange(p),
			colorStatus(p.Status),
		)
	}
}

func salaryRange(p api.CareerPosting) string {
	if !p.SalaryMin.Valid && !p.SalaryMax.Valid {
		return format.Dash
	}
	if p.SalaryMin.Valid && p.SalaryMax.Valid {
		return format.Dollars(p.SalaryMin.Int64) + " - " + format.Dollars(p.SalaryMax.Int64)
	}
	if p.SalaryMin.Valid {
		return "from " + format.Dollars(p.SalaryMin.Int64)
	}
	return "up to " + format.Dollars(p.SalaryMax.Int64)
}

func postingFlags(cmd *cobra.Command, in *api.CareerPostingInput, salaryMin, salaryMax *int64) {
	flags := cmd.Flags()
	flags.StringVar(&in.Title, "title", "", "Posting title")
	flags.StringVar(&in.Department, "department", "", "Department")
	flags.StringVar(&in.Location, "location", "", "Location")
	flags.StringVar(&in.EmploymentType, "type", "", "Employment type: FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP or REMOTE")
	flags.StringVar(&in.Description, "description", "", "Role description")
	flags.StringVar(&in.Requirements, "requirements", "", "Role requirements")
	flags.Int64Var(salaryMin, "salary-min", 0, "Salary range lower bound in dollars")
	flags.Int64Var(salaryMax, "salary-max", 0, "Salary range upper bound in dollars")
	flags.StringVar(&in.Status, "status", api.PostingDraft, "Posting status: ACTIVE, DRAFT or CLOSED")
}

func applySalary(cmd *cobra.Command, in *api.CareerPostingInput, salaryMin, salaryMax *int64) {
	if cmd.Flags().Changed("salary-min") {
		in.SalaryMin = salaryMin
	}
	if cmd.Flags().Changed("salary-max") {
		in.SalaryMax = salaryMax
	}
}

func newCareerCreateCommand() *cobra.Command {
	var (
		in        api.CareerPostingInput
		salaryMin int64
		salaryMax int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a career posting",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.EmploymentType = strings.ToUpper(in.EmploymentType)
			in.Status = strings.ToUpper(in.Status)
			applySalary(cmd, &in, &salaryMin, &salaryMax)

			client := newAPIClient()
			if err := client.CreateCareerPosting(cmd.Context(), in); err != nil {
				return fmt.Errorf("failed to create posting: %v", err)
			}
			fmt.Println("Posting created")
			return nil
		},
	}

	postingFlags(cmd, &in, &salaryMin, &salaryMax)
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("department")
	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("description")

	return cmd
}

func newCareerUpdateCommand() *cobra.Command {
	var (
		in        api.CareerPostingInput
		salaryMin int64
		salaryMax int64
	)

	cmd := &cobra.Command{
		Use:   "update <posting-id>",
		Short: "Replace a career posting's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.EmploymentType = strings.ToUpper(in.EmploymentType)
			in.Status = strings.ToUpper(in.Status)
			applySalary(cmd, &in, &salaryMin, &salaryMax)

			client := newAPIClient()
			if err := client.UpdateCareerPosting(cmd.Context(), args[0], in); err != nil {
				return fmt.Errorf("failed to update posting: %v", err)
			}
			fmt.Printf("Posting %s updated\n", args[0])
			return nil
		},
	}

	postingFlags(cmd, &in, &salaryMin, &salaryMax)
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("department")
	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("description")

	return cmd
}

func newCareerRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <posting-id>",
		Short: "Delete a career posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.DeleteCareerPosting(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete posting: %v", err)
			}
			fmt.Printf("Posting %s deleted\n", args[0])
			return nil
		},
	}
}

func newCareerApplicationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applications <posting-id>",
		Short: "List applications for a posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			apps, err := client.ListCareerApplications(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printApplicationsTable(apps)
			return nil
		},
	}
	return cmd
}

func printApplicationsTable(apps []api.CareerApplication) {
	if len(apps) == 0 {
		fmt.Println("No applications found")
		return
	}

	fmt.Printf("%-12s %-24s %-28s %-16s %-8s %s\n", "ID", "NAME", "EMAIL", "PHONE", "RESUME", "APPLIED")
	for _, a := range apps {
		resume := "no"
		if a.ResumeURL.Valid {
			resume = "yes"
		}
		fmt.Printf("%-12s %-24s %-28s %-16s %-8s %s\n",
			format.Truncate(a.ID, 12),
			format.Truncate(a.FullName, 24),
			format.Truncate(a.Email, 28),
			format.NullPhone(a.Phone),
			resume,
			format.Date(a.CreatedAt),
		)
	}
}

func newCareerApplicationRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm-application <application-id>",
		Short: "Delete a career application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.DeleteCareerApplication(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete application: %v", err)
			}
			fmt.Printf("Application %s deleted\n", args[0])
			return nil
		},
	}
}
