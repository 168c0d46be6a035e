package plugin

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jumpstart-labs/jumpstart/internal/project"
)

// fakeProbe reports a fixed running set.
type fakeProbe struct {
	running map[string]bool
	calls   int
}

func (f *fakeProbe) ContainerIsRunning(_ context.Context, name string) (bool, error) {
	f.calls++
	return f.running[name], nil
}

// fakeExec records container commands.
type fakeExec struct {
	commands [][]string
}

func (f *fakeExec) Exec(_ context.Context, containerName string, cmd ...string) error {
	f.commands = append(f.commands, append([]string{containerName}, cmd...))
	return nil
}

// fakePatch records applied steps.
type fakePatch struct {
	prepends []string
	appends  []string
	fail     error
}

func (f *fakePatch) InsertBeforeFirstLine(_ context.Context, _ *project.Descriptor, relPath, text string) error {
	if f.fail != nil {
		return f.fail
	}
	f.prepends = append(f.prepends, relPath+"|"+text)
	return nil
}

func (f *fakePatch) InsertIntoBracketGroup(_ context.Context, _ *project.Descriptor, relPath, anchor, text string) error {
	if f.fail != nil {
		return f.fail
	}
	f.appends = append(f.appends, relPath+"|"+anchor+"|"+text)
	return nil
}

type registryFixture struct {
	reg   *Registry
	probe *fakeProbe
	exec  *fakeExec
	patch *fakePatch
	desc  *project.Descriptor
}

func newFixture(t *testing.T, pluginsDir string, running bool) *registryFixture {
	t.Helper()
	projDir := t.TempDir()
	probe := &fakeProbe{running: map[string]bool{"demo": running}}
	exec := &fakeExec{}
	patch := &fakePatch{}
	return &registryFixture{
		reg:   NewRegistry(pluginsDir, probe, exec, patch, &bytes.Buffer{}),
		probe: probe,
		exec:  exec,
		patch: patch,
		desc: &project.Descriptor{
			Name:          "demo",
			Dir:           projDir,
			ContainerName: "demo",
			Port:          5173,
		},
	}
}

func TestInstallEmptyName(t *testing.T) {
	f := newFixture(t, t.TempDir(), true)
	err := f.reg.Install(context.Background(), "  ", f.desc)
	if !errors.Is(err, ErrInvalidPluginName) {
		t.Errorf("error = %v, want ErrInvalidPluginName", err)
	}
}

func TestInstallProjectMissing(t *testing.T) {
	f := newFixture(t, t.TempDir(), true)
	f.desc.Dir = filepath.Join(f.desc.Dir, "gone")

	err := f.reg.Install(context.Background(), "tailwind", f.desc)
	if !errors.Is(err, project.ErrProjectNotFound) {
		t.Errorf("error = %v, want ErrProjectNotFound", err)
	}
	if f.probe.calls != 0 || len(f.exec.commands) != 0 {
		t.Error("no runtime calls expected before the project check passes")
	}
}

func TestInstallPluginsDirMissing(t *testing.T) {
	f := newFixture(t, filepath.Join(t.TempDir(), "missing"), true)
	err := f.reg.Install(context.Background(), "tailwind", f.desc)
	if !errors.Is(err, ErrPluginsDirMissing) {
		t.Errorf("error = %v, want ErrPluginsDirMissing", err)
	}
}

func TestInstallPluginNotFound(t *testing.T) {
	f := newFixture(t, t.TempDir(), true)
	err := f.reg.Install(context.Background(), "tailwind", f.desc)
	if !errors.Is(err, ErrPluginNotFound) {
		t.Errorf("error = %v, want ErrPluginNotFound", err)
	}
	if len(f.exec.commands) != 0 || len(f.patch.prepends) != 0 {
		t.Error("a missing plugin must not mutate the container")
	}
}

func TestInstallNameMismatch(t *testing.T) {
	pluginsDir := t.TempDir()
	writeManifest(t, pluginsDir, "tailwind.yaml", `name: other
version: 1.0.0
steps:
  - action: prepend-line
    file: a.css
    text: x
`)

	f := newFixture(t, pluginsDir, true)
	err := f.reg.Install(context.Background(), "tailwind", f.desc)
	if !errors.Is(err, ErrEntryPointMissing) {
		t.Errorf("error = %v, want ErrEntryPointMissing", err)
	}
}

func TestInstallContainerNotRunning(t *testing.T) {
	pluginsDir := t.TempDir()
	writeManifest(t, pluginsDir, "tailwind.yaml", validManifest)

	f := newFixture(t, pluginsDir, false)
	err := f.reg.Install(context.Background(), "tailwind", f.desc)
	if !errors.Is(err, project.ErrContainerNotRunning) {
		t.Errorf("error = %v, want ErrContainerNotRunning", err)
	}
	if len(f.exec.commands) != 0 {
		t.Error("no container commands expected when the container is down")
	}
}

func TestInstallRunsPackagesAndSteps(t *testing.T) {
	pluginsDir := t.TempDir()
	writeManifest(t, pluginsDir, "tailwind.yaml", validManifest)

	f := newFixture(t, pluginsDir, true)
	if err := f.reg.Install(context.Background(), "tailwind", f.desc); err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	if len(f.exec.commands) != 1 {
		t.Fatalf("exec commands = %v, want one npm install", f.exec.commands)
	}
	got := f.exec.commands[0]
	want := []string{"demo", "npm", "install", "tailwindcss", "@tailwindcss/vite"}
	if len(got) != len(want) {
		t.Fatalf("npm install = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("npm install[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if len(f.patch.prepends) != 1 || f.patch.prepends[0] != `src/index.css|@import "tailwindcss";` {
		t.Errorf("prepends = %v", f.patch.prepends)
	}
	if len(f.patch.appends) != 1 || f.patch.appends[0] != "vite.config.js|plugins: [|tailwindcss()" {
		t.Errorf("appends = %v", f.patch.appends)
	}
}

func TestInstallRegisteredPluginSkipsDiscovery(t *testing.T) {
	// Registered plugins resolve even when the plugins directory is absent.
	f := newFixture(t, filepath.Join(t.TempDir(), "missing"), true)
	f.reg.Register(&Manifest{
		Name:    "styled",
		Version: "0.1.0",
		Steps: []Step{
			{Action: ActionPrependLine, File: "src/main.jsx", Text: "import styled from 'styled-components'"},
		},
	})

	if err := f.reg.Install(context.Background(), "styled", f.desc); err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if len(f.patch.prepends) != 1 {
		t.Errorf("prepends = %v, want one entry", f.patch.prepends)
	}
}

func TestInstallStopsAtFirstFailedStep(t *testing.T) {
	pluginsDir := t.TempDir()
	writeManifest(t, pluginsDir, "tailwind.yaml", validManifest)

	f := newFixture(t, pluginsDir, true)
	f.patch.fail = os.ErrPermission

	err := f.reg.Install(context.Background(), "tailwind", f.desc)
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("error = %v, want wrapped step failure", err)
	}
}

func TestList(t *testing.T) {
	pluginsDir := t.TempDir()
	writeManifest(t, pluginsDir, "tailwind.yaml", validManifest)
	writeManifest(t, pluginsDir, "notes.txt", "not a manifest")

	f := newFixture(t, pluginsDir, true)
	f.reg.Register(&Manifest{Name: "axios", Version: "0.1.0", Description: "HTTP client"})

	infos := f.reg.List()
	if len(infos) != 2 {
		t.Fatalf("List() = %v, want 2 entries", infos)
	}
	if infos[0].Name != "axios" || infos[0].Source != "registered" {
		t.Errorf("infos[0] = %+v", infos[0])
	}
	if infos[1].Name != "tailwind" || infos[1].Source != pluginsDir {
		t.Errorf("infos[1] = %+v", infos[1])
	}
}
