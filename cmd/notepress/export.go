// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notepress/internal/config"
	"github.com/pdiddy/notepress/internal/export"
	"github.com/pdiddy/notepress/internal/history"
	"github.com/pdiddy/notepress/internal/notify"
	"github.com/pdiddy/notepress/internal/pandoc"
	"github.com/pdiddy/notepress/internal/vault"
)

// historyDir is the vault subdirectory holding the export ledger.
const historyDir = ".notepress"

var exportCmd = &cobra.Command{
	Use:   "export [note]",
	Short: "Export a markdown note to PDF",
	Long: `Export converts a markdown note to PDF by invoking pandoc with a
configured LaTeX template. The note's YAML front-matter is passed to pandoc
through a transient metadata file, so front-matter keys become template
variables.

Without --template the configured default template is used. With --all,
every markdown note in the vault is exported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	selection, _ := cmd.Flags().GetString("template")

	if !all && len(args) == 0 {
		return fmt.Errorf("note path required (or --all)")
	}

	v, err := openVault()
	if err != nil {
		return err
	}
	notifier := newNotifier()

	cfg, err := config.Load(configPath(v))
	if err != nil {
		return err
	}
	if !cfg.HasTemplates() {
		notifier.Error("no templates configured: add one with `notepress templates add`")
		return export.ErrNoTemplates
	}

	index, err := export.ResolveSelection(cfg, selection)
	if err != nil {
		return err
	}

	runner := pandoc.NewRunner()
	if err := runner.Available(cfg.ConverterPath); err != nil {
		return err
	}

	exporter := export.New(v, runner, notifier, openRecorder(v, notifier))

	if all {
		result, err := exporter.ExportAll(cfg, index)
		if err != nil {
			return err
		}
		if result.HasFailures() {
			return fmt.Errorf("%d note(s) failed to export", result.Failed)
		}
		return nil
	}

	return exporter.Export(args[0], cfg, index)
}

// openRecorder opens the history ledger. Ledger problems never block an
// export; they downgrade to a warning and recording is disabled.
func openRecorder(v *vault.Vault, notifier *notify.Console) export.Recorder {
	store, err := history.Open(filepath.Join(v.Root(), historyDir))
	if err != nil {
		notifier.Errorf("history disabled: %v", err)
		return nil
	}
	return store
}

func init() {
	exportCmd.Flags().String("template", "", "template name or index (default: the configured default template)")
	exportCmd.Flags().Bool("all", false, "export every markdown note in the vault")

	rootCmd.AddCommand(exportCmd)
}
