package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/config"
)

var rootCmd = &cobra.Command{
	Use:   "lawadmin",
	Short: "LawyerDirect admin console",
	Long: `lawadmin is the command line admin console for the LawyerDirect
legal-consultation marketplace. It lists and filters platform
resources and issues the moderation actions the web console offers.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(config.GetLogLevel())
		if err != nil {
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)
	},
}

func init() {
	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		NewLoginCommand(),
		NewLogoutCommand(),
		NewDashboardCommand(),
		NewUsersCommand(),
		NewLawyersCommand(),
		NewConsultationsCommand(),
		NewPaymentsCommand(),
		NewReportsCommand(),
		NewDisputesCommand(),
		NewReviewsCommand(),
		NewTicketsCommand(),
		NewTodosCommand(),
		NewNotificationsCommand(),
		NewCareersCommand(),
		NewCalendarCommand(),
		NewGeographyCommand(),
		NewProfileCommand(),
		NewVersionCommand(),
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
