package cli

import (
	"fmt"
	"os"

	"github.com/jumpstart-labs/jumpstart/internal/branding"
	"github.com/jumpstart-labs/jumpstart/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a containerized front-end project, runs its development
container in the foreground, opens terminals inside it, installs dependency
plugins into the running project, and tears the whole thing down again.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// Failures are reported once as a labeled message; the caller owns the
// non-zero exit.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
