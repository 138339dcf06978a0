// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared configuration and data types for notepress.
package types

// Template names a LaTeX layout file consumed by pandoc. Templates are
// identified by position in Config.Templates; names are display labels and
// need not be unique.
type Template struct {
	// Name is the display label shown in template listings.
	Name string `json:"name" yaml:"name"`

	// Path locates the LaTeX template file, absolute or relative to the
	// vault root.
	Path string `json:"path" yaml:"path"`
}

// Default values filled in for absent configuration fields.
const (
	// DefaultConverter is the pandoc binary name, resolved via PATH.
	DefaultConverter = "pandoc"

	// DefaultImagesDir is the conventional resource folder searched for
	// relative image references.
	DefaultImagesDir = "templates"

	// NoDefaultTemplate marks a configuration with no default template chosen.
	NoDefaultTemplate = -1
)

// Config holds all notepress settings. Load fills defaults for any field
// absent from the config file.
type Config struct {
	// Templates is the ordered list of configured LaTeX templates.
	Templates []Template `json:"templates" yaml:"templates"`

	// DefaultTemplate indexes into Templates, or is NoDefaultTemplate (-1)
	// when no default is chosen. Invariant: always -1 or a valid index.
	DefaultTemplate int `json:"default_template" yaml:"default_template"`

	// OutputDir relocates generated PDFs. Empty means "alongside the source
	// note". Relative paths resolve against the vault root; the directory is
	// created on demand.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// ImagesDir is the resource search directory for relative image
	// references. Absolute paths are used as-is; relative paths resolve
	// against the vault root. If the resolved directory does not exist the
	// note's own directory is used instead.
	ImagesDir string `json:"images_dir,omitempty" yaml:"images_dir,omitempty"`

	// ConverterPath is the pandoc executable, a bare name resolved via PATH
	// or an explicit path.
	ConverterPath string `json:"converter_path" yaml:"converter_path"`

	// ExtraArgs holds additional pandoc arguments, tokenized on whitespace
	// and appended to every generated command. Not validated: the
	// configuration is user-owned.
	ExtraArgs string `json:"extra_args,omitempty" yaml:"extra_args,omitempty"`

	// TemplateDirResources uses the template file's directory as the
	// resource path when ImagesDir is empty.
	TemplateDirResources bool `json:"template_dir_resources" yaml:"template_dir_resources"`
}

// HasTemplates reports whether at least one template is configured.
func (c *Config) HasTemplates() bool {
	return len(c.Templates) > 0
}

// ValidIndex reports whether i is a valid position in Templates.
func (c *Config) ValidIndex(i int) bool {
	return i >= 0 && i < len(c.Templates)
}

// ExportStatus describes the outcome of a single export attempt.
type ExportStatus string

const (
	ExportDone   ExportStatus = "done"
	ExportFailed ExportStatus = "failed"
)
