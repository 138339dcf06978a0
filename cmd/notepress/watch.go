// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pdiddy/notepress/internal/config"
	"github.com/pdiddy/notepress/internal/export"
	"github.com/pdiddy/notepress/internal/pandoc"
)

// debounceWindow coalesces the burst of write events editors emit on save.
const debounceWindow = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch NOTE",
	Short: "Re-export a note whenever it is saved",
	Long: `Watch exports the note once, then re-exports it after every save until
interrupted. Exports run one at a time; saves arriving during an export are
coalesced into the next run.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	selection, _ := cmd.Flags().GetString("template")

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

	notePath := v.AbsPath(args[0])
	if _, err := os.Stat(notePath); err != nil {
		return fmt.Errorf("watching %s: %w", args[0], err)
	}

	// Watch the containing directory: editors replace files on save, which
	// drops a watch placed on the file itself.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(notePath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(notePath), err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Initial export, then follow saves.
	exporter.Export(notePath, cfg, index)
	notifier.Notifyf("watching %s (ctrl-c to stop)", args[0])

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != notePath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			exporter.Export(notePath, cfg, index)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			notifier.Errorf("watch error: %v", err)

		case <-stop:
			notifier.Notify("watch stopped")
			return nil
		}
	}
}

func init() {
	watchCmd.Flags().String("template", "", "template name or index (default: the configured default template)")

	rootCmd.AddCommand(watchCmd)
}
