// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notepress/internal/config"
	"github.com/pdiddy/notepress/internal/vault"
	"github.com/pdiddy/notepress/pkg/types"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage the configured LaTeX templates",
	Long: `Templates manages the ordered template list in notepress.yaml. Each
template has a display name and a path to a LaTeX template file, absolute
or relative to the vault root. Export selects templates by name or index;
one template may be marked as the default.`,
}

// --- list subcommand ---

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		cfg, err := config.Load(configPath(v))
		if err != nil {
			return err
		}
		printTemplates(v, cfg)
		return nil
	},
}

func printTemplates(v *vault.Vault, cfg types.Config) {
	if !cfg.HasTemplates() {
		fmt.Println("No templates configured.")
		return
	}

	fmt.Printf("%-5s %-3s %-20s %s\n", "Index", "", "Name", "Path")
	for i, tpl := range cfg.Templates {
		mark := ""
		if i == cfg.DefaultTemplate {
			mark = "*"
		}
		missing := ""
		if _, err := os.Stat(v.AbsPath(tpl.Path)); err != nil {
			missing = "  (missing)"
		}
		fmt.Printf("%-5d %-3s %-20s %s%s\n", i, mark, tpl.Name, tpl.Path, missing)
	}
}

// --- add subcommand ---

var templatesAddCmd = &cobra.Command{
	Use:   "add NAME PATH",
	Short: "Add a template to the list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := openVault()
		if err != nil {
			return err
		}
		path := configPath(v)
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		name, tplPath := args[0], args[1]
		if _, err := os.Stat(v.AbsPath(tplPath)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: template file %s does not exist yet\n", tplPath)
		}

		config.AddTemplate(&cfg, name, tplPath)
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		printTemplates(v, cfg)
		return nil
	},
}

// --- remove subcommand ---

var templatesRemoveCmd = &cobra.Command{
	Use:   "remove INDEX",
	Short: "Remove the template at an index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}

		v, err := openVault()
		if err != nil {
			return err
		}
		path := configPath(v)
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		if err := config.RemoveTemplate(&cfg, i); err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		printTemplates(v, cfg)
		return nil
	},
}

// --- default subcommand ---

var templatesDefaultCmd = &cobra.Command{
	Use:   "default INDEX|none",
	Short: "Set or clear the default template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index := types.NoDefaultTemplate
		if args[0] != "none" {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number or \"none\", got %q", args[0])
			}
			index = i
		}

		v, err := openVault()
		if err != nil {
			return err
		}
		path := configPath(v)
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		if err := config.SetDefaultTemplate(&cfg, index); err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		printTemplates(v, cfg)
		return nil
	},
}

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesAddCmd)
	templatesCmd.AddCommand(templatesRemoveCmd)
	templatesCmd.AddCommand(templatesDefaultCmd)

	rootCmd.AddCommand(templatesCmd)
}
