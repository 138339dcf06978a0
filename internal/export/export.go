// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/notepress/internal/frontmatter"
	"github.com/pdiddy/notepress/internal/notify"
	"github.com/pdiddy/notepress/internal/pandoc"
	"github.com/pdiddy/notepress/internal/vault"
	"github.com/pdiddy/notepress/pkg/types"
)

// Record describes one finished export attempt for the history ledger.
type Record struct {
	Note       string
	Template   string
	Output     string
	Status     types.ExportStatus
	Diagnostic string
	Duration   time.Duration
}

// Recorder persists export outcomes. A nil Recorder disables recording.
type Recorder interface {
	Record(rec Record) error
}

// Exporter runs the full export flow for one note: template validation,
// front-matter extraction, planning, the pandoc subprocess, and cleanup.
type Exporter struct {
	vault    *vault.Vault
	planner  *Planner
	runner   pandoc.Runner
	notifier notify.Notifier
	recorder Recorder
}

// New creates an exporter. recorder may be nil.
func New(v *vault.Vault, runner pandoc.Runner, notifier notify.Notifier, recorder Recorder) *Exporter {
	return &Exporter{
		vault:    v,
		planner:  NewPlanner(v.Root()),
		runner:   runner,
		notifier: notifier,
		recorder: recorder,
	}
}

// ResolveSelection maps a --template flag value to a template index.
// An empty selection picks the configured default. Otherwise the selection
// matches a template name first, then a numeric index.
func ResolveSelection(cfg types.Config, selection string) (int, error) {
	if !cfg.HasTemplates() {
		return 0, ErrNoTemplates
	}

	if selection == "" {
		if cfg.DefaultTemplate == types.NoDefaultTemplate {
			return 0, fmt.Errorf("no default template configured: pass --template")
		}
		return cfg.DefaultTemplate, nil
	}

	for i, tpl := range cfg.Templates {
		if tpl.Name == selection {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(selection); err == nil {
		if !cfg.ValidIndex(i) {
			return 0, fmt.Errorf("%w: %d (have %d)", ErrTemplateIndex, i, len(cfg.Templates))
		}
		return i, nil
	}
	return 0, fmt.Errorf("unknown template %q", selection)
}

// Export converts one note with the template at index. Every failure is
// reported through the notifier and returned; nothing is fatal beyond this
// attempt.
func (e *Exporter) Export(notePath string, cfg types.Config, index int) error {
	err := e.export(notePath, cfg, index)
	if err != nil {
		e.notifier.Errorf("export of %s failed: %v", notePath, err)
	}
	return err
}

func (e *Exporter) export(notePath string, cfg types.Config, index int) error {
	if !cfg.HasTemplates() {
		return ErrNoTemplates
	}
	if !cfg.ValidIndex(index) {
		return fmt.Errorf("%w: %d (have %d)", ErrTemplateIndex, index, len(cfg.Templates))
	}
	tpl := cfg.Templates[index]

	templatePath := e.vault.AbsPath(tpl.Path)
	if _, err := os.Stat(templatePath); err != nil {
		return fmt.Errorf("%w: %s", ErrTemplateMissing, templatePath)
	}

	abs := e.vault.AbsPath(notePath)
	text, err := e.vault.Read(abs)
	if err != nil {
		return err
	}

	// A malformed front-matter block is reported but never blocks the
	// export; pandoc still runs with empty variables.
	vars, parseErr := frontmatter.Parse(text)
	if parseErr != nil {
		e.notifier.Errorf("front-matter ignored: %v", parseErr)
	}

	plan, err := e.planner.Build(abs, vars, cfg, templatePath)
	if err != nil {
		return err
	}
	defer e.cleanup(plan.MetadataPath)

	e.notifier.Debugf("running %s %s", cfg.ConverterPath, strings.Join(plan.Args, " "))

	start := time.Now()
	_, _, runErr := e.runner.Run(cfg.ConverterPath, plan.Args)
	elapsed := time.Since(start)

	rec := Record{
		Note:     abs,
		Template: tpl.Name,
		Output:   plan.OutputPath,
		Status:   types.ExportDone,
		Duration: elapsed,
	}
	if runErr != nil {
		rec.Status = types.ExportFailed
		rec.Diagnostic = runErr.Error()
	}
	if e.recorder != nil {
		if recErr := e.recorder.Record(rec); recErr != nil {
			e.notifier.Errorf("history not recorded: %v", recErr)
		}
	}

	if runErr != nil {
		return runErr
	}

	e.notifier.Notifyf("exported %s -> %s (%s, %s)",
		notePath, plan.OutputPath, tpl.Name, elapsed.Round(time.Millisecond))
	return nil
}

// cleanup removes the transient metadata file, best-effort on both success
// and failure paths.
func (e *Exporter) cleanup(metaPath string) {
	if err := os.Remove(metaPath); err != nil {
		e.notifier.Errorf("metadata file not removed: %v", err)
	}
}

// BatchResult summarizes an export over multiple notes.
type BatchResult struct {
	Exported int
	Failed   int
}

// Total returns the number of notes processed.
func (r BatchResult) Total() int { return r.Exported + r.Failed }

// HasFailures reports whether any note failed to export.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// ExportAll exports every markdown note in the vault with the template at
// index, continuing past per-note failures.
func (e *Exporter) ExportAll(cfg types.Config, index int) (BatchResult, error) {
	notes, err := e.vault.ListMarkdown()
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, note := range notes {
		if err := e.Export(note, cfg, index); err != nil {
			result.Failed++
			continue
		}
		result.Exported++
	}

	e.notifier.Notifyf("batch done: %d exported, %d failed (total: %d)",
		result.Exported, result.Failed, result.Total())
	return result, nil
}
