// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notepress/pkg/types"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Templates)
	assert.Equal(t, types.NoDefaultTemplate, cfg.DefaultTemplate)
	assert.Equal(t, types.DefaultConverter, cfg.ConverterPath)
	assert.Equal(t, types.DefaultImagesDir, cfg.ImagesDir)
	assert.Empty(t, cfg.OutputDir)
	assert.False(t, cfg.TemplateDirResources)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `
templates:
  - name: Letter
    path: templates/letter.tex
  - name: Report
    path: /abs/report.tex
default_template: 1
output_dir: PDFs
extra_args: "--toc -V geometry:margin=1in"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Templates, 2)
	assert.Equal(t, "Letter", cfg.Templates[0].Name)
	assert.Equal(t, "templates/letter.tex", cfg.Templates[0].Path)
	assert.Equal(t, 1, cfg.DefaultTemplate)
	assert.Equal(t, "PDFs", cfg.OutputDir)
	// Absent fields keep their defaults.
	assert.Equal(t, types.DefaultConverter, cfg.ConverterPath)
	assert.Equal(t, types.DefaultImagesDir, cfg.ImagesDir)
	assert.Equal(t, "--toc -V geometry:margin=1in", cfg.ExtraArgs)
}

func TestLoadClampsOutOfRangeDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `
templates:
  - name: Only
    path: only.tex
default_template: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.NoDefaultTemplate, cfg.DefaultTemplate)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", FileName)

	want := types.Config{
		Templates: []types.Template{
			{Name: "Letter", Path: "templates/letter.tex"},
			{Name: "Report", Path: "report.tex"},
		},
		DefaultTemplate:      0,
		OutputDir:            "PDFs",
		ImagesDir:            "assets",
		ConverterPath:        "/usr/local/bin/pandoc",
		ExtraArgs:            "--toc",
		TemplateDirResources: true,
	}

	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRemoveTemplate(t *testing.T) {
	base := func() types.Config {
		return types.Config{
			Templates: []types.Template{
				{Name: "A", Path: "a.tex"},
				{Name: "B", Path: "b.tex"},
				{Name: "C", Path: "c.tex"},
			},
			DefaultTemplate: 1,
		}
	}

	t.Run("removing below the default shifts it down", func(t *testing.T) {
		cfg := base()
		require.NoError(t, RemoveTemplate(&cfg, 0))
		assert.Equal(t, 0, cfg.DefaultTemplate)
		require.Len(t, cfg.Templates, 2)
		assert.Equal(t, "B", cfg.Templates[0].Name)
	})

	t.Run("removing the default clears it", func(t *testing.T) {
		cfg := base()
		require.NoError(t, RemoveTemplate(&cfg, 1))
		assert.Equal(t, types.NoDefaultTemplate, cfg.DefaultTemplate)
	})

	t.Run("removing above the default leaves it", func(t *testing.T) {
		cfg := base()
		require.NoError(t, RemoveTemplate(&cfg, 2))
		assert.Equal(t, 1, cfg.DefaultTemplate)
	})

	t.Run("out of range index errors", func(t *testing.T) {
		cfg := base()
		require.Error(t, RemoveTemplate(&cfg, 3))
		require.Error(t, RemoveTemplate(&cfg, -1))
	})
}

func TestSetDefaultTemplate(t *testing.T) {
	cfg := types.Config{
		Templates: []types.Template{{Name: "A", Path: "a.tex"}},
	}

	require.NoError(t, SetDefaultTemplate(&cfg, 0))
	assert.Equal(t, 0, cfg.DefaultTemplate)

	require.NoError(t, SetDefaultTemplate(&cfg, types.NoDefaultTemplate))
	assert.Equal(t, types.NoDefaultTemplate, cfg.DefaultTemplate)

	require.Error(t, SetDefaultTemplate(&cfg, 1))
}
