// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and persists notepress settings. Load merges the
// config file with defaults and NOTEPRESS_* environment variables; Save
// writes the full configuration back as YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notepress/pkg/types"
)

// FileName is the configuration file looked up in the vault root.
const FileName = "notepress.yaml"

// Default returns a configuration with every field at its default value.
func Default() types.Config {
	return types.Config{
		Templates:       nil,
		DefaultTemplate: types.NoDefaultTemplate,
		ImagesDir:       types.DefaultImagesDir,
		ConverterPath:   types.DefaultConverter,
	}
}

// Load reads the configuration at path, filling defaults for absent fields.
// A missing file yields the default configuration. NOTEPRESS_* environment
// variables override file values.
func Load(path string) (types.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("default_template", types.NoDefaultTemplate)
	v.SetDefault("output_dir", "")
	v.SetDefault("images_dir", types.DefaultImagesDir)
	v.SetDefault("converter_path", types.DefaultConverter)
	v.SetDefault("extra_args", "")
	v.SetDefault("template_dir_resources", false)

	v.SetEnvPrefix("NOTEPRESS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return types.Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := types.Config{
		DefaultTemplate:      v.GetInt("default_template"),
		OutputDir:            v.GetString("output_dir"),
		ImagesDir:            v.GetString("images_dir"),
		ConverterPath:        v.GetString("converter_path"),
		ExtraArgs:            v.GetString("extra_args"),
		TemplateDirResources: v.GetBool("template_dir_resources"),
	}
	if cfg.ConverterPath == "" {
		cfg.ConverterPath = types.DefaultConverter
	}

	if err := v.UnmarshalKey("templates", &cfg.Templates); err != nil {
		return types.Config{}, fmt.Errorf("parsing templates in %s: %w", path, err)
	}

	if !cfg.ValidIndex(cfg.DefaultTemplate) {
		cfg.DefaultTemplate = types.NoDefaultTemplate
	}

	return cfg, nil
}

// Save persists the configuration as YAML at path, creating parent
// directories as needed.
func Save(path string, cfg types.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// AddTemplate appends a template to the list.
func AddTemplate(cfg *types.Config, name, path string) {
	cfg.Templates = append(cfg.Templates, types.Template{Name: name, Path: path})
}

// RemoveTemplate deletes the template at index i. Removing a template below
// the default shifts the default down by one; removing the default itself
// clears it.
func RemoveTemplate(cfg *types.Config, i int) error {
	if !cfg.ValidIndex(i) {
		return fmt.Errorf("no template at index %d (have %d)", i, len(cfg.Templates))
	}
	cfg.Templates = append(cfg.Templates[:i], cfg.Templates[i+1:]...)

	switch {
	case i == cfg.DefaultTemplate:
		cfg.DefaultTemplate = types.NoDefaultTemplate
	case i < cfg.DefaultTemplate:
		cfg.DefaultTemplate--
	}
	return nil
}

// SetDefaultTemplate marks the template at index i as the default, or
// clears the default when i is NoDefaultTemplate.
func SetDefaultTemplate(cfg *types.Config, i int) error {
	if i != types.NoDefaultTemplate && !cfg.ValidIndex(i) {
		return fmt.Errorf("no template at index %d (have %d)", i, len(cfg.Templates))
	}
	cfg.DefaultTemplate = i
	return nil
}
