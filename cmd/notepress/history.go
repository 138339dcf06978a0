// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notepress/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent export attempts",
	Long: `History lists export attempts recorded in the vault's ledger, newest
first: note, template, outcome, and the pandoc diagnostic for failures.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	v, err := openVault()
	if err != nil {
		return err
	}

	store, err := history.Open(filepath.Join(v.Root(), historyDir))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No exports recorded.")
		return nil
	}

	fmt.Printf("%-20s  %-6s  %-30s  %-12s  %s\n",
		"When", "Status", "Note", "Template", "Detail")
	fmt.Println(strings.Repeat("-", 90))

	for _, e := range entries {
		note := e.Note
		if len(note) > 30 {
			note = "..." + note[len(note)-27:]
		}
		detail := e.Output
		if e.Status != "done" {
			detail = e.Diagnostic
		}
		if len(detail) > 40 {
			detail = detail[:37] + "..."
		}
		fmt.Printf("%-20s  %-6s  %-30s  %-12s  %s\n",
			e.Timestamp.Local().Format(time.DateTime), e.Status, note, e.Template, detail)
	}

	fmt.Printf("\n%d attempt(s)\n", len(entries))
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum entries to show (0 = all)")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(historyCmd)
}
