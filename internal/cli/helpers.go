package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jumpstart-labs/jumpstart/internal/config"
	"github.com/jumpstart-labs/jumpstart/internal/dockerx"
	"github.com/jumpstart-labs/jumpstart/internal/lifecycle"
	"github.com/jumpstart-labs/jumpstart/internal/project"
	"github.com/jumpstart-labs/jumpstart/internal/scaffold"
)

// resolveDescriptor builds a project descriptor from optional positional
// name/port arguments, rooted at the working directory.
func resolveDescriptor(args []string) (*project.Descriptor, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	var rawName, rawPort string
	if len(args) > 0 {
		rawName = args[0]
	}
	if len(args) > 1 {
		rawPort = args[1]
	}
	return project.Resolve(base, rawName, rawPort)
}

// newManager assembles a lifecycle manager from the configured settings.
// probe may be nil for transitions that never query the container runtime.
func newManager(probe lifecycle.Prober, out io.Writer) *lifecycle.Manager {
	shell := &dockerx.Shell{}
	return &lifecycle.Manager{
		Probe: probe,
		Shell: shell,
		Gen: &scaffold.ViteGenerator{
			Shell:    shell,
			Template: config.Get(config.KeyScaffoldTemplate),
		},
		Image:         config.Get(config.KeyScaffoldImage),
		TerminalShell: config.Get(config.KeyTerminalShell),
		Out:           out,
	}
}
