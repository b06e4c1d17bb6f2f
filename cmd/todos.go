package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
	"github.com/lawyerdirect/lawadmin/internal/api"
	"github.com/lawyerdirect/lawadmin/internal/format"
)

// NewTodosCommand creates the todos command group
func NewTodosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Manage the admin todo list",
		Example: `  lawadmin todos list
  lawadmin todos add "Review Q3 payout report" --priority high --date 2026-09-05
  lawadmin todos done todo_123
  lawadmin todos edit todo_123 --title "Review Q3 payouts"
  lawadmin todos rm todo_123`,
	}

	cmd.AddCommand(
		newTodosListCommand(),
		newTodoAddCommand(),
		newTodoToggleCommand("done", true, "Mark a todo as completed"),
		newTodoToggleCommand("undone", false, "Mark a todo as not completed"),
		newTodoEditCommand(),
		newTodoRemoveCommand(),
	)

	return cmd
}

func newTodosListCommand() *cobra.Command {
	var (
		page        int
		limit       int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit == 0 {
				limit = config.GetPageLimit()
			}
			state := api.NewListState(limit)
			state.SetPage(page)

			client := newAPIClient()
			return runPager(cmd.Context(), state, interactive, func(ctx context.Context) (api.Pagination, func(), error) {
				result, err := client.ListTodos(ctx, state.Encode())
				if err != nil {
					return api.Pagination{}, nil, err
				}
				return result.Pagination, func() { printTodosTable(result.Data) }, nil
			})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&page, "page", 1, "Page to fetch")
	flags.IntVar(&limit, "limit", 0, "Page size (default from config)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Page through results interactively")

	return cmd
}

func printTodosTable(todos []api.Todo) {
	if len(todos) == 0 {
		fmt.Println("No todos found")
		return
	}

	fmt.Printf("%-12s %-4s %-36s %-10s %-12s %s\n", "ID", "", "TITLE", "PRIORITY", "DATE", "DESCRIPTION")
	for _, t := range todos {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		fmt.Printf("%-12s %-4s %-36s %-10s %-12s %s\n",
			format.Truncate(t.ID, 12),
			mark,
			format.Truncate(t.Title, 36),
			colorStatus(t.Priority),
			format.NullOrDash(t.Date),
			format.Truncate(format.NullOrDash(t.Description), 40),
		)
	}
}

func validateTodoDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return nil
}

func validateTodoPriority(priority string) error {
	switch priority {
	case "", api.PriorityLow, api.PriorityMedium, api.PriorityHigh:
		return nil
	}
	return fmt.Errorf("invalid priority %q, expected low, medium or high", priority)
}

func newTodoAddCommand() *cobra.Command {
	var (
		description string
		date        string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return fmt.Errorf("title cannot be empty")
			}
			if err := validateTodoDate(date); err != nil {
				return err
			}
			if err := validateTodoPriority(priority); err != nil {
				return err
			}

			client := newAPIClient()
			in := api.TodoInput{
				Title:       title,
				Description: description,
				Date:        date,
				Priority:    priority,
			}
			if err := client.CreateTodo(cmd.Context(), in); err != nil {
				return fmt.Errorf("failed to create todo: %v", err)
			}
			fmt.Println("Todo created")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&description, "description", "", "Longer description")
	flags.StringVar(&date, "date", "", "Due date (YYYY-MM-DD)")
	flags.StringVar(&priority, "priority", api.PriorityMedium, "Priority: low, medium or high")

	return cmd
}

func newTodoToggleCommand(use string, completed bool, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <todo-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			patch := api.TodoPatch{Completed: &completed}
			if err := client.UpdateTodo(cmd.Context(), args[0], patch); err != nil {
				return fmt.Errorf("failed to update todo: %v", err)
			}
			if completed {
				fmt.Printf("Todo %s completed\n", args[0])
			} else {
				fmt.Printf("Todo %s reopened\n", args[0])
			}
			return nil
		},
	}
}

func newTodoEditCommand() *cobra.Command {
	var (
		title       string
		description string
		date        string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "edit <todo-id>",
		Short: "Edit a todo's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch api.TodoPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("date") {
				if err := validateTodoDate(date); err != nil {
					return err
				}
				patch.Date = &date
			}
			if cmd.Flags().Changed("priority") {
				if err := validateTodoPriority(priority); err != nil {
					return err
				}
				patch.Priority = &priority
			}
			if patch == (api.TodoPatch{}) {
				return fmt.Errorf("nothing to change, pass at least one of --title, --description, --date, --priority")
			}

			client := newAPIClient()
			if err := client.UpdateTodo(cmd.Context(), args[0], patch); err != nil {
				return fmt.Errorf("failed to update todo: %v", err)
			}
			fmt.Printf("Todo %s updated\n", args[0])
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&title, "title", "", "New title")
	flags.StringVar(&description, "description", "", "New description")
	flags.StringVar(&date, "date", "", "New due date (YYYY-MM-DD)")
	flags.StringVar(&priority, "priority", "", "New priority: low, medium or high")

	return cmd
}

func newTodoRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <todo-id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient()
			if err := client.DeleteTodo(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete todo: %v", err)
			}
			fmt.Printf("Todo %s deleted\n", args[0])
			return nil
		},
	}
}
