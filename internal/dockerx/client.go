package dockerx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
)

// ErrRuntimeUnavailable indicates the Docker daemon cannot be reached.
// It is fatal to the invoking command.
var ErrRuntimeUnavailable = errors.New("container runtime unavailable")

// Client answers probe queries against the Docker daemon.
type Client struct {
	api client.APIClient
}

// New connects to the Docker daemon using the standard environment
// configuration (DOCKER_HOST etc.) and verifies it is reachable.
func New(ctx context.Context) (*Client, error) {
	api, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuntimeUnavailable, err)
	}
	if _, err := api.Ping(ctx); err != nil {
		api.Close()
		return nil, fmt.Errorf("%w: %v", ErrRuntimeUnavailable, err)
	}
	return &Client{api: api}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.api.Close()
}

// ContainerIsRunning reports whether a container with exactly the given name
// is currently running. The daemon-side name filter matches substrings, so
// the results are post-filtered for a whole-name match; without that, a
// project named "app" would shadow one named "app2".
func (c *Client) ContainerIsRunning(ctx context.Context, name string) (bool, error) {
	summaries, err := c.api.ContainerList(ctx, container.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return false, fmt.Errorf("%w: listing containers: %v", ErrRuntimeUnavailable, err)
	}
	for _, s := range summaries {
		if matchesContainerName(s.Names, name) {
			return true, nil
		}
	}
	return false, nil
}

// FileExists reports whether path exists inside the named running container,
// by running `test -e` in the container's execution context.
func (c *Client) FileExists(ctx context.Context, containerName, path string) (bool, error) {
	code, err := c.execExitCode(ctx, containerName, []string{"test", "-e", path})
	if err != nil {
		return false, err
	}
	return code == 0, nil
}

// HostPort returns the host port published for the given container port, or
// an empty string if the port is not published.
func (c *Client) HostPort(ctx context.Context, containerName string, port int) (string, error) {
	info, err := c.api.ContainerInspect(ctx, containerName)
	if err != nil {
		return "", fmt.Errorf("inspecting container %s: %w", containerName, err)
	}
	if info.NetworkSettings == nil {
		return "", nil
	}
	natPort, err := nat.NewPort("tcp", fmt.Sprintf("%d", port))
	if err != nil {
		return "", fmt.Errorf("building port key: %w", err)
	}
	bindings := info.NetworkSettings.Ports[natPort]
	if len(bindings) == 0 {
		return "", nil
	}
	return bindings[0].HostPort, nil
}

// execExitCode runs a command inside the container and returns its exit code.
func (c *Client) execExitCode(ctx context.Context, containerName string, cmd []string) (int, error) {
	created, err := c.api.ContainerExecCreate(ctx, containerName, container.ExecOptions{
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return 0, fmt.Errorf("creating exec in %s: %w", containerName, err)
	}

	attach, err := c.api.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return 0, fmt.Errorf("attaching exec in %s: %w", containerName, err)
	}
	// Drain output so the exec reaches completion before inspection.
	_, _ = io.Copy(io.Discard, attach.Reader)
	attach.Close()

	inspect, err := c.api.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		return 0, fmt.Errorf("inspecting exec in %s: %w", containerName, err)
	}
	return inspect.ExitCode, nil
}

// matchesContainerName reports whether any of the API-reported names equals
// the wanted name. The API prefixes names with a slash.
func matchesContainerName(names []string, want string) bool {
	for _, n := range names {
		if strings.TrimPrefix(n, "/") == want {
			return true
		}
	}
	return false
}
