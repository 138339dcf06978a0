// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export turns a markdown note plus a LaTeX template into a pandoc
// invocation. The planner owns all path resolution and command assembly;
// the exporter wires it to the vault, the subprocess runner, and the
// notifier.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/notepress/internal/frontmatter"
	"github.com/pdiddy/notepress/pkg/types"
)

// pdfEngine is the fixed LaTeX engine selector passed to pandoc.
const pdfEngine = "xelatex"

// Sentinel failures of a single export attempt. None of them outlive the
// attempt or affect persisted state.
var (
	ErrNoTemplates     = errors.New("no templates configured")
	ErrTemplateIndex   = errors.New("selected template index out of range")
	ErrTemplateMissing = errors.New("template file not found")
)

// Plan is the fully-resolved converter invocation for one note. It is
// consumed immediately by the runner; MetadataPath points at a transient
// file deleted after the subprocess exits.
type Plan struct {
	MetadataPath string
	OutputPath   string
	ResourcePath string
	Args         []string
}

// Planner computes conversion plans against a vault root. It performs no
// I/O beyond staging the metadata side-file and creating the output
// directory.
type Planner struct {
	vaultRoot string
}

// NewPlanner returns a planner resolving relative paths against vaultRoot.
func NewPlanner(vaultRoot string) *Planner {
	return &Planner{vaultRoot: vaultRoot}
}

// Build computes the plan for exporting notePath (absolute) with the given
// front-matter variables, configuration, and template file (absolute,
// already validated to exist). It writes the metadata side-file and creates
// the output directory as side effects.
func (p *Planner) Build(notePath string, vars map[string]any, cfg types.Config, templatePath string) (Plan, error) {
	outputPath, err := p.outputPath(notePath, cfg)
	if err != nil {
		return Plan{}, err
	}

	resourcePath := p.resourcePath(notePath, cfg, templatePath)

	metaPath, err := writeMetadataFile(vars)
	if err != nil {
		return Plan{}, err
	}

	outputDir := filepath.Dir(outputPath)
	args := []string{
		filepath.ToSlash(notePath),
		"-o", filepath.ToSlash(outputPath),
		"--metadata-file=" + filepath.ToSlash(metaPath),
		"--template=" + filepath.ToSlash(templatePath),
		"--pdf-engine=" + pdfEngine,
		"--resource-path=" + filepath.ToSlash(resourcePath),
		"--extract-media=" + filepath.ToSlash(outputDir),
	}
	args = append(args, strings.Fields(cfg.ExtraArgs)...)

	return Plan{
		MetadataPath: metaPath,
		OutputPath:   outputPath,
		ResourcePath: resourcePath,
		Args:         args,
	}, nil
}

// outputPath places the PDF alongside the note, or under cfg.OutputDir when
// set, keeping the note's base name. The output directory is created with
// parents.
func (p *Planner) outputPath(notePath string, cfg types.Config) (string, error) {
	base := strings.TrimSuffix(filepath.Base(notePath), filepath.Ext(notePath)) + ".pdf"

	dir := filepath.Dir(notePath)
	if cfg.OutputDir != "" {
		dir = p.resolve(cfg.OutputDir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	return filepath.Join(dir, base), nil
}

// resourcePath selects the directory pandoc searches for relative images,
// by first matching rule: an existing configured images directory, the
// template's directory, or the note's own directory.
func (p *Planner) resourcePath(notePath string, cfg types.Config, templatePath string) string {
	noteDir := filepath.Dir(notePath)

	if cfg.ImagesDir != "" {
		dir := p.resolve(cfg.ImagesDir)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		return noteDir
	}

	if cfg.TemplateDirResources {
		return filepath.Dir(templatePath)
	}

	return noteDir
}

// resolve turns a configured path into an absolute one against the vault
// root. Absolute paths are used as-is.
func (p *Planner) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.vaultRoot, path)
}

// writeMetadataFile stages the front-matter variables as a transient YAML
// file in the OS temp directory. The timestamped name keeps concurrent
// exports from colliding.
func writeMetadataFile(vars map[string]any) (string, error) {
	data, err := frontmatter.Marshal(vars)
	if err != nil {
		return "", err
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("notepress-meta-%d.yaml", time.Now().UnixNano()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing metadata file: %w", err)
	}
	return path, nil
}
