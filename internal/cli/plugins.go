package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/jumpstart-labs/jumpstart/internal/config"
	"github.com/jumpstart-labs/jumpstart/internal/plugin"
	"github.com/spf13/cobra"
)

var pluginsJSON bool

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List available dependency plugins",
	Long:  `List dependency plugins discoverable in the plugins directory.`,
	RunE:  runPlugins,
}

func init() {
	pluginsCmd.Flags().BoolVar(&pluginsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(pluginsCmd)
}

func runPlugins(cmd *cobra.Command, args []string) error {
	registry := plugin.NewRegistry(config.Get(config.KeyPluginsDir), nil, nil, nil, cmd.OutOrStdout())
	infos := registry.List()

	if pluginsJSON {
		out, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling plugin list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(infos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No plugins found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tDESCRIPTION")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.Version, info.Description)
	}
	return w.Flush()
}
