// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notepress CLI.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notepress/internal/config"
	"github.com/pdiddy/notepress/internal/notify"
	"github.com/pdiddy/notepress/internal/vault"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	vaultPath string
	cfgFile   string
	verbose   bool
)

// rootCmd is the base command for the notepress CLI.
var rootCmd = &cobra.Command{
	Use:   "notepress",
	Short: "Export markdown notes to PDF through pandoc and LaTeX templates",
	Long: `notepress turns markdown notes into PDFs. A note's YAML front-matter is
passed to pandoc as template variables; a user-supplied LaTeX template
controls the document appearance. Rendering is fully delegated to pandoc
invoked as a subprocess.

Notes live in a vault: a directory that also holds notepress.yaml with the
template list and export settings. Use the templates subcommand to manage
templates, export to convert notes, and watch to re-export on save.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", ".", "vault directory containing the notes and notepress.yaml")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: <vault>/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug output")
}

// openVault resolves the --vault flag into a filesystem-backed vault.
func openVault() (*vault.Vault, error) {
	return vault.Open(vaultPath)
}

// configPath returns the active config file location: the --config override
// or notepress.yaml in the vault root.
func configPath(v *vault.Vault) string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(v.Root(), config.FileName)
}

// newNotifier builds the console notifier, honoring --verbose.
func newNotifier() *notify.Console {
	if verbose {
		return notify.NewVerboseConsole(os.Stderr)
	}
	return notify.NewConsole(os.Stderr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
