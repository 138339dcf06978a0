// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc invokes the external document converter as a subprocess.
// One attempt per export: no timeout, no retry, no cancellation once the
// process has started.
package pandoc

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a fully-assembled converter command line.
type Runner interface {
	// Run executes bin with args, blocking until the process exits. It
	// returns captured stdout and stderr; on failure the error carries the
	// subprocess diagnostic.
	Run(bin string, args []string) (stdout, stderr string, err error)

	// Available reports whether bin resolves to an executable.
	Available(bin string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunCaptured(name string, args []string, stdout, stderr *bytes.Buffer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunCaptured(name string, args []string, stdout, stderr *bytes.Buffer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// runner implements Runner over an executor.
type runner struct {
	exec executor
}

// NewRunner returns the production pandoc runner.
func NewRunner() Runner {
	return &runner{exec: &osExecutor{}}
}

func (r *runner) Available(bin string) error {
	if _, err := r.exec.LookPath(bin); err != nil {
		return fmt.Errorf("converter %s not found on PATH: %w", bin, err)
	}
	return nil
}

func (r *runner) Run(bin string, args []string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	if err := r.exec.RunCaptured(bin, args, &stdout, &stderr); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		return stdout.String(), stderr.String(), fmt.Errorf("%s failed: %s", bin, diag)
	}
	return stdout.String(), stderr.String(), nil
}
