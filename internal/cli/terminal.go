package cli

import (
	"github.com/jumpstart-labs/jumpstart/internal/dockerx"
	"github.com/spf13/cobra"
)

var terminalCmd = &cobra.Command{
	Use:   "terminal [name]",
	Short: "Open an interactive shell inside the running container",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := resolveDescriptor(args)
		if err != nil {
			return err
		}

		client, err := dockerx.New(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		mgr := newManager(client, cmd.OutOrStdout())
		return mgr.OpenTerminal(cmd.Context(), desc)
	},
}

func init() {
	rootCmd.AddCommand(terminalCmd)
}
