package scaffold

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jumpstart-labs/jumpstart/internal/dockerx"
	"github.com/jumpstart-labs/jumpstart/internal/project"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Artifact file names written into the project root.
const (
	DockerfileName = "Dockerfile"
	ComposeName    = "compose.yaml"
)

// Data holds the template variables for the generated artifacts.
type Data struct {
	Name  string
	Port  int
	Image string
}

// RenderArtifacts writes the Dockerfile and compose file into the project
// directory and returns the file names written.
func RenderArtifacts(desc *project.Descriptor, image string) ([]string, error) {
	data := Data{
		Name:  desc.Name,
		Port:  desc.Port,
		Image: image,
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	var written []string
	for _, entry := range entries {
		tmplBytes, err := templateFS.ReadFile(filepath.Join("templates", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(desc.Dir, outName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		written = append(written, outName)
	}

	return written, nil
}

// Generator materializes project source by invoking an external scaffolding
// tool. The tool is a black box: it is expected to create <baseDir>/<name>.
type Generator interface {
	Generate(ctx context.Context, baseDir, name string) error
}

// ViteGenerator scaffolds a Vite project via `npm create vite@latest`.
type ViteGenerator struct {
	Shell    *dockerx.Shell
	Template string // vite template, e.g. "react"
}

// Generate runs the generator in baseDir so the project lands at
// <baseDir>/<name>.
func (g *ViteGenerator) Generate(ctx context.Context, baseDir, name string) error {
	return g.Shell.Run(ctx, baseDir, "npm",
		"create", "vite@latest", name, "--", "--template", g.Template)
}
