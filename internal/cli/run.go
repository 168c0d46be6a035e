package cli

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [name]",
	Short: "Start the project's container in the foreground",
	Long: `Build and start the named project's development container, attached to
this terminal. The command blocks until the container process exits or is
interrupted; interrupting it shuts the container down.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := resolveDescriptor(args)
		if err != nil {
			return err
		}
		mgr := newManager(nil, cmd.OutOrStdout())
		return mgr.Start(cmd.Context(), desc)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
