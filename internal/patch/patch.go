package patch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jumpstart-labs/jumpstart/internal/project"
)

// ContainerWorkdir is where the project root is mounted inside the container.
const ContainerWorkdir = "/app"

var (
	// ErrTargetFileMissing indicates the target file does not exist inside
	// the running container.
	ErrTargetFileMissing = errors.New("target file missing in container")

	// ErrAnchorNotFound indicates no line of the target file contains the
	// requested anchor.
	ErrAnchorNotFound = errors.New("anchor not found")
)

// Prober is the subset of the environment probe the patcher needs.
type Prober interface {
	FileExists(ctx context.Context, containerName, path string) (bool, error)
}

// Patcher mutates project files in place on behalf of dependency plugins.
// Each operation checks its own precondition and aborts before any write on
// failure; operations across different files are not atomic as a group.
type Patcher struct {
	Probe Prober
}

// InsertBeforeFirstLine inserts text as a new first line of the target file,
// e.g. an import statement or a stylesheet directive. If the file already
// contains the exact line, the operation is a no-op.
func (p *Patcher) InsertBeforeFirstLine(ctx context.Context, desc *project.Descriptor, relPath, text string) error {
	return p.apply(ctx, desc, relPath, func(content string) (string, error) {
		if hasLine(content, text) {
			return content, nil
		}
		return PrependLine(content, text), nil
	})
}

// InsertIntoBracketGroup appends an entry to the single-line bracketed list
// opened by the first line containing anchor, immediately before the list's
// closing bracket. If the anchored line already contains the entry, the
// operation is a no-op.
func (p *Patcher) InsertIntoBracketGroup(ctx context.Context, desc *project.Descriptor, relPath, anchor, text string) error {
	return p.apply(ctx, desc, relPath, func(content string) (string, error) {
		return AppendToBracketGroup(content, anchor, text)
	})
}

// apply checks the in-container precondition, runs the edit, and writes the
// result back preserving the file's mode.
func (p *Patcher) apply(ctx context.Context, desc *project.Descriptor, relPath string, edit func(string) (string, error)) error {
	containerPath := path.Join(ContainerWorkdir, filepath.ToSlash(relPath))
	exists, err := p.Probe.FileExists(ctx, desc.ContainerName, containerPath)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s in %s", ErrTargetFileMissing, relPath, desc.ContainerName)
	}

	hostPath := filepath.Join(desc.Dir, relPath)
	info, err := os.Stat(hostPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", hostPath, err)
	}
	data, err := os.ReadFile(hostPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", hostPath, err)
	}

	edited, err := edit(string(data))
	if err != nil {
		return fmt.Errorf("patching %s: %w", relPath, err)
	}
	if edited == string(data) {
		return nil
	}

	if err := os.WriteFile(hostPath, []byte(edited), info.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", hostPath, err)
	}
	return nil
}

// PrependLine returns content with text inserted as a new first line. The
// primitive is not idempotent; reapplying it duplicates the line.
func PrependLine(content, text string) string {
	return text + "\n" + content
}

// AppendToBracketGroup finds the first line containing anchor (a literal
// substring, not a regular expression), locates the bracketed list the
// anchor opens, and inserts text before the list's closing bracket on that
// same line. Existing entries get a ", " separator; an empty group gets
// none. Re-inserting an entry already present on the anchored line is a
// no-op.
func AppendToBracketGroup(content, anchor, text string) (string, error) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		at := strings.Index(line, anchor)
		if at < 0 {
			continue
		}
		if strings.Contains(line, text) {
			return content, nil
		}

		open := strings.Index(line[at:], "[")
		if open < 0 {
			return "", fmt.Errorf("%w: line %d has no opening bracket after %q", ErrAnchorNotFound, i+1, anchor)
		}
		open += at

		end := matchingBracket(line, open)
		if end < 0 {
			return "", fmt.Errorf("%w: line %d has no closing bracket for %q", ErrAnchorNotFound, i+1, anchor)
		}

		inner := strings.TrimSpace(line[open+1 : end])
		entry := text
		if inner != "" {
			entry = ", " + text
		}
		lines[i] = line[:end] + entry + line[end:]
		return strings.Join(lines, "\n"), nil
	}
	return "", fmt.Errorf("%w: %q", ErrAnchorNotFound, anchor)
}

// matchingBracket returns the index of the bracket closing the one at open,
// or -1 if the group does not close on this line. Entries may themselves
// contain bracket pairs, so depth is tracked.
func matchingBracket(line string, open int) int {
	depth := 0
	for i := open; i < len(line); i++ {
		switch line[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// hasLine reports whether content contains text as a complete line.
func hasLine(content, text string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == strings.TrimSpace(text) {
			return true
		}
	}
	return false
}
