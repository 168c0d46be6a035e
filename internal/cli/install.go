package cli

import (
	"fmt"

	"github.com/jumpstart-labs/jumpstart/internal/config"
	"github.com/jumpstart-labs/jumpstart/internal/dockerx"
	"github.com/jumpstart-labs/jumpstart/internal/patch"
	"github.com/jumpstart-labs/jumpstart/internal/plugin"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <dependency> in <app>",
	Short: "Install a dependency plugin into a running project",
	Long: `Install a dependency plugin into the named project while its container is
running. Plugins are YAML manifests discovered in the plugins directory
(default "deps", see 'config get plugins.dir').

Example:
  jumpstart install tailwind in demo`,
	Args: cobra.ExactArgs(3),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	if args[1] != "in" {
		return fmt.Errorf("usage: install <dependency> in <app>, got %q between the names", args[1])
	}
	pluginName, appName := args[0], args[2]

	desc, err := resolveDescriptor([]string{appName})
	if err != nil {
		return err
	}

	client, err := dockerx.New(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	registry := plugin.NewRegistry(
		config.Get(config.KeyPluginsDir),
		client,
		&dockerx.Shell{},
		&patch.Patcher{Probe: client},
		cmd.OutOrStdout(),
	)

	if err := registry.Install(cmd.Context(), pluginName, desc); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed %s into %s.\n", pluginName, desc.Name)
	return nil
}
