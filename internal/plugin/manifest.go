package plugin

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Step actions understood by the installer.
const (
	ActionPrependLine   = "prepend-line"
	ActionAppendToGroup = "append-to-group"
)

// ErrInvalidManifest indicates a plugin manifest failed schema or semantic
// validation.
var ErrInvalidManifest = errors.New("invalid plugin manifest")

// Step is one anchor-based patch operation against a project file. File is
// relative to the project root; Anchor is required for append-to-group.
type Step struct {
	Action string `yaml:"action"`
	File   string `yaml:"file"`
	Anchor string `yaml:"anchor,omitempty"`
	Text   string `yaml:"text"`
}

// Manifest describes one dependency plugin: the npm packages to install
// inside the running container and the patch steps that wire them in.
type Manifest struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Description string   `yaml:"description,omitempty"`
	Packages    []string `yaml:"packages,omitempty"`
	Steps       []Step   `yaml:"steps"`
}

// ParseManifest reads, schema-validates, and decodes a plugin manifest file.
func ParseManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidManifest, path, result.IssueSummary())
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if _, err := semver.NewVersion(m.Version); err != nil {
		return nil, fmt.Errorf("%w: %s: version %q is not semver: %v", ErrInvalidManifest, path, m.Version, err)
	}

	return &m, nil
}
