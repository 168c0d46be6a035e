package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var cleanupYes bool

var cleanupCmd = &cobra.Command{
	Use:   "cleanup [name]",
	Short: "Stop, remove, and delete a project entirely",
	Long: `Stop and remove the named project's container, network, and volumes, then
delete the project directory. This is destructive and cannot be undone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := resolveDescriptor(args)
		if err != nil {
			return err
		}

		// Prompt for confirmation unless -y is set.
		if !cleanupYes {
			fmt.Fprintf(cmd.OutOrStdout(), "? Remove %s and all its data? (y/N) ", desc.Name)
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Cleanup cancelled.")
					return nil
				}
			}
		}

		mgr := newManager(nil, cmd.OutOrStdout())
		return mgr.Teardown(cmd.Context(), desc)
	},
}

func init() {
	cleanupCmd.Flags().BoolVarP(&cleanupYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanupCmd)
}
