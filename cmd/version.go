package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawyerdirect/lawadmin/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.ClientInfo()
			fmt.Printf("lawadmin version %s\n", info["Version"])
			fmt.Printf("  API version: %s\n", info["APIVersion"])
			fmt.Printf("  Go version:  %s\n", info["GoVersion"])
			fmt.Printf("  Git commit:  %s\n", info["GitCommit"])
			fmt.Printf("  Built:       %s\n", info["FormattedTime"])
			fmt.Printf("  OS/Arch:     %s/%s\n", info["OS"], info["Arch"])
		},
	}
}
