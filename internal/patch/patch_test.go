package patch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jumpstart-labs/jumpstart/internal/project"
)

func TestPrependLine(t *testing.T) {
	got := PrependLine("line1\nline2\n", "import './index.css'")
	want := "import './index.css'\nline1\nline2\n"
	if got != want {
		t.Errorf("PrependLine() = %q, want %q", got, want)
	}
}

func TestPrependLineTwiceDuplicates(t *testing.T) {
	// The raw primitive is documented as non-idempotent.
	once := PrependLine("body {}\n", `@import "tailwindcss";`)
	twice := PrependLine(once, `@import "tailwindcss";`)
	if strings.Count(twice, `@import "tailwindcss";`) != 2 {
		t.Errorf("expected duplicated insertion, got:\n%s", twice)
	}
}

func TestAppendToBracketGroup(t *testing.T) {
	tests := []struct {
		name    string
		content string
		anchor  string
		text    string
		want    string
		wantErr error
	}{
		{
			name:    "append to existing entry",
			content: "export default {\n  plugins: [react()],\n}\n",
			anchor:  "plugins: [",
			text:    "tailwindcss()",
			want:    "export default {\n  plugins: [react(), tailwindcss()],\n}\n",
		},
		{
			name:    "append to empty group",
			content: "plugins: []\n",
			anchor:  "plugins: [",
			text:    "tailwindcss()",
			want:    "plugins: [tailwindcss()]\n",
		},
		{
			name:    "rest of line preserved",
			content: "config({ plugins: [a()] }) // keep\n",
			anchor:  "plugins: [",
			text:    "b()",
			want:    "config({ plugins: [a(), b()] }) // keep\n",
		},
		{
			name:    "nested brackets in entries",
			content: "plugins: [wrap([inner()])]\n",
			anchor:  "plugins: [",
			text:    "extra()",
			want:    "plugins: [wrap([inner()]), extra()]\n",
		},
		{
			name:    "already present is a no-op",
			content: "plugins: [react(), tailwindcss()]\n",
			anchor:  "plugins: [",
			text:    "tailwindcss()",
			want:    "plugins: [react(), tailwindcss()]\n",
		},
		{
			name:    "anchor missing",
			content: "export default {}\n",
			anchor:  "plugins: [",
			text:    "tailwindcss()",
			wantErr: ErrAnchorNotFound,
		},
		{
			name:    "group does not close on the line",
			content: "plugins: [\n  react(),\n]\n",
			anchor:  "plugins: [",
			text:    "tailwindcss()",
			wantErr: ErrAnchorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppendToBracketGroup(tt.content, tt.anchor, tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AppendToBracketGroup() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

// fakeProbe answers FileExists from a set of container paths.
type fakeProbe struct {
	present map[string]bool
	calls   int
}

func (f *fakeProbe) FileExists(_ context.Context, _ string, path string) (bool, error) {
	f.calls++
	return f.present[path], nil
}

func writeProjectFile(t *testing.T, dir, relPath, content string) string {
	t.Helper()
	p := filepath.Join(dir, relPath)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestPatcherInsertBeforeFirstLine(t *testing.T) {
	dir := t.TempDir()
	desc := &project.Descriptor{Name: "demo", Dir: dir, ContainerName: "demo", Port: 5173}
	hostPath := writeProjectFile(t, dir, "src/index.css", "body {}\n")

	probe := &fakeProbe{present: map[string]bool{"/app/src/index.css": true}}
	p := &Patcher{Probe: probe}

	if err := p.InsertBeforeFirstLine(context.Background(), desc, "src/index.css", `@import "tailwindcss";`); err != nil {
		t.Fatalf("InsertBeforeFirstLine() error: %v", err)
	}

	data, _ := os.ReadFile(hostPath)
	want := "@import \"tailwindcss\";\nbody {}\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}

	// Second application is skipped: the exact line is already present.
	if err := p.InsertBeforeFirstLine(context.Background(), desc, "src/index.css", `@import "tailwindcss";`); err != nil {
		t.Fatalf("second InsertBeforeFirstLine() error: %v", err)
	}
	data, _ = os.ReadFile(hostPath)
	if string(data) != want {
		t.Errorf("reapplied file = %q, want unchanged %q", data, want)
	}
}

func TestPatcherInsertIntoBracketGroup(t *testing.T) {
	dir := t.TempDir()
	desc := &project.Descriptor{Name: "demo", Dir: dir, ContainerName: "demo", Port: 5173}
	hostPath := writeProjectFile(t, dir, "vite.config.js", "export default {\n  plugins: [react()],\n}\n")

	probe := &fakeProbe{present: map[string]bool{"/app/vite.config.js": true}}
	p := &Patcher{Probe: probe}

	err := p.InsertIntoBracketGroup(context.Background(), desc, "vite.config.js", "plugins: [", "tailwindcss()")
	if err != nil {
		t.Fatalf("InsertIntoBracketGroup() error: %v", err)
	}

	data, _ := os.ReadFile(hostPath)
	if !strings.Contains(string(data), "plugins: [react(), tailwindcss()]") {
		t.Errorf("file = %q, want plugins group extended", data)
	}
}

func TestPatcherTargetFileMissing(t *testing.T) {
	dir := t.TempDir()
	desc := &project.Descriptor{Name: "demo", Dir: dir, ContainerName: "demo", Port: 5173}
	writeProjectFile(t, dir, "vite.config.js", "plugins: []\n")

	// Present on the host but not visible inside the container.
	probe := &fakeProbe{present: map[string]bool{}}
	p := &Patcher{Probe: probe}

	err := p.InsertIntoBracketGroup(context.Background(), desc, "vite.config.js", "plugins: [", "x()")
	if !errors.Is(err, ErrTargetFileMissing) {
		t.Fatalf("error = %v, want ErrTargetFileMissing", err)
	}

	// Precondition failure must not touch the file.
	data, _ := os.ReadFile(filepath.Join(dir, "vite.config.js"))
	if string(data) != "plugins: []\n" {
		t.Errorf("file mutated despite failed precondition: %q", data)
	}
}

func TestPatcherAnchorFailureLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	desc := &project.Descriptor{Name: "demo", Dir: dir, ContainerName: "demo", Port: 5173}
	hostPath := writeProjectFile(t, dir, "vite.config.js", "export default {}\n")

	probe := &fakeProbe{present: map[string]bool{"/app/vite.config.js": true}}
	p := &Patcher{Probe: probe}

	err := p.InsertIntoBracketGroup(context.Background(), desc, "vite.config.js", "plugins: [", "x()")
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Fatalf("error = %v, want ErrAnchorNotFound", err)
	}
	data, _ := os.ReadFile(hostPath)
	if string(data) != "export default {}\n" {
		t.Errorf("file mutated despite failed edit: %q", data)
	}
}
