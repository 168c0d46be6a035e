package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jumpstart-labs/jumpstart/internal/project"
	"github.com/jumpstart-labs/jumpstart/internal/scaffold"
)

// Failure modes of the create transition.
var (
	// ErrScaffoldFailure indicates the external generator exited non-zero.
	ErrScaffoldFailure = errors.New("scaffolding generator failed")

	// ErrDirectoryMissing indicates the generator reported success but the
	// expected project directory is absent.
	ErrDirectoryMissing = errors.New("generator produced no project directory")
)

// State is the derived position of a project in its lifecycle.
type State string

const (
	StateAbsent  State = "absent"  // no project directory
	StateCreated State = "created" // directory exists, container not running
	StateRunning State = "running" // container with the matching name is active
)

// Prober is the subset of the environment probe the manager needs.
type Prober interface {
	ContainerIsRunning(ctx context.Context, name string) (bool, error)
}

// Composer drives the orchestration tool and interactive sessions for a
// project. Both Up and Terminal block for the lifetime of the child process.
type Composer interface {
	ComposeUp(ctx context.Context, dir string) error
	ComposeDown(ctx context.Context, dir string) error
	Terminal(ctx context.Context, containerName, shell string) error
}

// Manager owns project state transitions.
type Manager struct {
	Probe Prober
	Shell Composer
	Gen   scaffold.Generator

	Image         string // base image baked into the generated Dockerfile
	TerminalShell string // shell launched inside the container
	Out           io.Writer
}

// State computes the project's current state.
func (m *Manager) State(ctx context.Context, desc *project.Descriptor) (State, error) {
	if !dirExists(desc.Dir) {
		return StateAbsent, nil
	}
	running, err := m.Probe.ContainerIsRunning(ctx, desc.ContainerName)
	if err != nil {
		return StateCreated, err
	}
	if running {
		return StateRunning, nil
	}
	return StateCreated, nil
}

// Create scaffolds a new project and writes its container artifacts.
// It refuses to touch an existing directory rather than overwrite it.
func (m *Manager) Create(ctx context.Context, desc *project.Descriptor) error {
	if dirExists(desc.Dir) {
		return fmt.Errorf("%w: %s (run `cleanup %s` first)", project.ErrProjectExists, desc.Dir, desc.Name)
	}

	fmt.Fprintf(m.out(), "Scaffolding %s...\n", desc.Name)
	if err := m.Gen.Generate(ctx, filepath.Dir(desc.Dir), desc.Name); err != nil {
		return fmt.Errorf("%w: %v", ErrScaffoldFailure, err)
	}
	if !dirExists(desc.Dir) {
		return fmt.Errorf("%w: expected %s", ErrDirectoryMissing, desc.Dir)
	}

	written, err := scaffold.RenderArtifacts(desc, m.Image)
	if err != nil {
		return err
	}
	for _, f := range written {
		fmt.Fprintf(m.out(), "  %s\n", f)
	}
	fmt.Fprintf(m.out(), "Created %s on port %d.\n", desc.Name, desc.Port)
	return nil
}

// Start attaches the project's compose foreground process, blocking until
// it exits or is interrupted. Starting an already-running project attaches
// to the existing containers.
func (m *Manager) Start(ctx context.Context, desc *project.Descriptor) error {
	if !dirExists(desc.Dir) {
		return fmt.Errorf("%w: %s (create it first)", project.ErrProjectNotFound, desc.Name)
	}
	return m.Shell.ComposeUp(ctx, desc.Dir)
}

// OpenTerminal attaches an interactive shell session inside the project's
// running container.
func (m *Manager) OpenTerminal(ctx context.Context, desc *project.Descriptor) error {
	running, err := m.Probe.ContainerIsRunning(ctx, desc.ContainerName)
	if err != nil {
		return err
	}
	if !running {
		return fmt.Errorf("%w: %s", project.ErrContainerNotRunning, desc.ContainerName)
	}
	return m.Shell.Terminal(ctx, desc.ContainerName, m.TerminalShell)
}

// Teardown stops and removes the project's containers, networks, and
// volumes, then deletes the project directory. Destructive and irreversible.
func (m *Manager) Teardown(ctx context.Context, desc *project.Descriptor) error {
	if !dirExists(desc.Dir) {
		return fmt.Errorf("%w: %s", project.ErrProjectNotFound, desc.Name)
	}

	if err := m.Shell.ComposeDown(ctx, desc.Dir); err != nil {
		return fmt.Errorf("removing containers for %s: %w", desc.Name, err)
	}
	if err := os.RemoveAll(desc.Dir); err != nil {
		return fmt.Errorf("deleting %s: %w", desc.Dir, err)
	}
	fmt.Fprintf(m.out(), "Removed %s.\n", desc.Name)
	return nil
}

func (m *Manager) out() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return os.Stdout
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
