package dockerx

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Shell runs attached child processes. Commands inherit the operator's
// terminal by default so foreground tools (docker compose, interactive
// shells, the project generator) behave as if run by hand; terminal signals
// reach the child directly and graceful shutdown is the child's job.
type Shell struct {
	// Stdin, Stdout, and Stderr can be set for testing; they default to the
	// process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes a command attached to the configured streams, with dir as its
// working directory. A non-zero exit is returned as an error.
func (s *Shell) Run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = s.stdin()
	cmd.Stdout = s.stdout()
	cmd.Stderr = s.stderr()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// ComposeUp builds and starts the project's services in the foreground,
// blocking until the compose process exits or is interrupted.
func (s *Shell) ComposeUp(ctx context.Context, dir string) error {
	return s.Run(ctx, dir, "docker", "compose", "up", "--build")
}

// ComposeDown stops and removes the project's containers, networks, and
// volumes.
func (s *Shell) ComposeDown(ctx context.Context, dir string) error {
	return s.Run(ctx, dir, "docker", "compose", "down", "--volumes", "--remove-orphans")
}

// Terminal attaches an interactive shell session inside the named container,
// blocking for the duration of the session.
func (s *Shell) Terminal(ctx context.Context, containerName, shell string) error {
	return s.Run(ctx, "", "docker", "exec", "-it", containerName, shell)
}

// Exec runs a non-interactive command inside the named container.
func (s *Shell) Exec(ctx context.Context, containerName string, cmd ...string) error {
	args := append([]string{"exec", containerName}, cmd...)
	return s.Run(ctx, "", "docker", args...)
}

func (s *Shell) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s *Shell) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

func (s *Shell) stderr() io.Writer {
	if s.Stderr != nil {
		return s.Stderr
	}
	return os.Stderr
}
