package cli

import (
	"fmt"

	"github.com/jumpstart-labs/jumpstart/internal/dockerx"
	"github.com/jumpstart-labs/jumpstart/internal/lifecycle"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [name]",
	Short: "Show the project's current state",
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
		state, err := mgr.State(cmd.Context(), desc)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", desc.Name, state)

		if state == lifecycle.StateRunning {
			hostPort, err := client.HostPort(cmd.Context(), desc.ContainerName, desc.Port)
			if err != nil {
				return err
			}
			if hostPort != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  http://localhost:%s\n", hostPort)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
