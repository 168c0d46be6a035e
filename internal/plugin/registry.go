package plugin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jumpstart-labs/jumpstart/internal/project"
	"go.yaml.in/yaml/v3"
)

// Registry errors, one per validation step.
var (
	ErrInvalidPluginName = errors.New("invalid plugin name")
	ErrPluginsDirMissing = errors.New("plugins directory missing")
	ErrPluginNotFound    = errors.New("plugin not found")
	ErrEntryPointMissing = errors.New("plugin entry point missing")
)

const manifestExt = ".yaml"

// Prober is the subset of the environment probe the registry needs.
type Prober interface {
	ContainerIsRunning(ctx context.Context, name string) (bool, error)
}

// Execer runs a non-interactive command inside a running container.
type Execer interface {
	Exec(ctx context.Context, containerName string, cmd ...string) error
}

// FilePatcher applies anchor-based insertions to project files.
type FilePatcher interface {
	InsertBeforeFirstLine(ctx context.Context, desc *project.Descriptor, relPath, text string) error
	InsertIntoBracketGroup(ctx context.Context, desc *project.Descriptor, relPath, anchor, text string) error
}

// Registry resolves plugin names to typed installers. Registered plugins
// take priority; everything else is discovered in PluginsDir by the
// <name>.yaml convention.
type Registry struct {
	PluginsDir string
	Probe      Prober
	Exec       Execer
	Patch      FilePatcher
	Out        io.Writer

	registered map[string]*Manifest
}

// NewRegistry builds a registry over the given plugins directory.
func NewRegistry(pluginsDir string, probe Prober, exec Execer, patch FilePatcher, out io.Writer) *Registry {
	return &Registry{
		PluginsDir: pluginsDir,
		Probe:      probe,
		Exec:       exec,
		Patch:      patch,
		Out:        out,
		registered: make(map[string]*Manifest),
	}
}

// Register adds a statically-defined plugin. Registered plugins shadow
// manifest files of the same name.
func (r *Registry) Register(m *Manifest) {
	r.registered[m.Name] = m
}

// Install resolves and runs the named plugin against the project. The
// validation sequence produces a distinct error per failed step: empty name,
// missing project directory, missing plugins directory, missing plugin file,
// and a manifest whose name does not match its file.
func (r *Registry) Install(ctx context.Context, pluginName string, desc *project.Descriptor) error {
	if strings.TrimSpace(pluginName) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidPluginName)
	}
	if _, err := os.Stat(desc.Dir); err != nil {
		return fmt.Errorf("%w: %s", project.ErrProjectNotFound, desc.Dir)
	}

	m, err := r.lookup(pluginName)
	if err != nil {
		return err
	}
	return r.runInstall(ctx, m, desc)
}

// lookup resolves a plugin name to its manifest: registered plugins first,
// then the plugins directory.
func (r *Registry) lookup(name string) (*Manifest, error) {
	if m, ok := r.registered[name]; ok {
		return m, nil
	}

	info, err := os.Stat(r.PluginsDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPluginsDirMissing, r.PluginsDir)
	}

	path := filepath.Join(r.PluginsDir, name+manifestExt)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPluginNotFound, path)
	}

	m, err := ParseManifest(path)
	if err != nil {
		return nil, err
	}
	if m.Name != name {
		return nil, fmt.Errorf("%w: manifest %s declares name %q, want %q",
			ErrEntryPointMissing, path, m.Name, name)
	}
	return m, nil
}

// runInstall executes a resolved plugin: package installation inside the
// container, then patch steps in manifest order. A failed step aborts the
// remaining steps; earlier edits are left in place.
func (r *Registry) runInstall(ctx context.Context, m *Manifest, desc *project.Descriptor) error {
	running, err := r.Probe.ContainerIsRunning(ctx, desc.ContainerName)
	if err != nil {
		return err
	}
	if !running {
		return fmt.Errorf("%w: %s (start the project first)", project.ErrContainerNotRunning, desc.ContainerName)
	}

	if len(m.Packages) > 0 {
		fmt.Fprintf(r.out(), "Installing %s...\n", strings.Join(m.Packages, " "))
		cmd := append([]string{"npm", "install"}, m.Packages...)
		if err := r.Exec.Exec(ctx, desc.ContainerName, cmd...); err != nil {
			return fmt.Errorf("installing packages for %s: %w", m.Name, err)
		}
	}

	for _, step := range m.Steps {
		if err := r.applyStep(ctx, step, desc); err != nil {
			return fmt.Errorf("plugin %s: %w", m.Name, err)
		}
		fmt.Fprintf(r.out(), "  ✓ %s %s\n", step.Action, step.File)
	}
	return nil
}

func (r *Registry) applyStep(ctx context.Context, step Step, desc *project.Descriptor) error {
	switch step.Action {
	case ActionPrependLine:
		return r.Patch.InsertBeforeFirstLine(ctx, desc, step.File, step.Text)
	case ActionAppendToGroup:
		return r.Patch.InsertIntoBracketGroup(ctx, desc, step.File, step.Anchor, step.Text)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidManifest, step.Action)
	}
}

// Info summarizes an available plugin for display.
type Info struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Source      string `json:"source"` // "registered" or the plugins directory
}

// List returns all available plugins, registered ones first on name clashes,
// sorted by name. Unparseable manifest files are skipped.
func (r *Registry) List() []Info {
	byName := make(map[string]Info)

	if entries, err := os.ReadDir(r.PluginsDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), manifestExt) {
				continue
			}
			data, err := os.ReadFile(filepath.Join(r.PluginsDir, entry.Name()))
			if err != nil {
				continue
			}
			var m Manifest
			if yaml.Unmarshal(data, &m) != nil || m.Name == "" {
				continue
			}
			byName[strings.TrimSuffix(entry.Name(), manifestExt)] = Info{
				Name:        m.Name,
				Version:     m.Version,
				Description: m.Description,
				Source:      r.PluginsDir,
			}
		}
	}

	for name, m := range r.registered {
		byName[name] = Info{
			Name:        m.Name,
			Version:     m.Version,
			Description: m.Description,
			Source:      "registered",
		}
	}

	infos := make([]Info, 0, len(byName))
	for _, info := range byName {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

func (r *Registry) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}
