package cli

import (
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [name] [port]",
	Short: "Scaffold a new containerized project",
	Long: `Scaffold a new front-end project with a generated Dockerfile and compose
file. The name defaults to "jumpstart" and the port to 5173.

Examples:
  jumpstart create
  jumpstart create demo 4000`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, err := resolveDescriptor(args)
		if err != nil {
			return err
		}
		mgr := newManager(nil, cmd.OutOrStdout())
		return mgr.Create(cmd.Context(), desc)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
