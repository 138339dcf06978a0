// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vault provides read access to a directory of markdown notes.
// All relative configuration paths resolve against the vault root.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// markdownExts lists the file extensions treated as markdown notes.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// Vault is a filesystem-backed note store rooted at an absolute directory.
type Vault struct {
	root string
}

// Open validates that root is an accessible directory and returns a Vault
// with an absolute root path. Non-filesystem locations (an empty root, a
// missing directory, a plain file) are unsupported: exports need a real
// local base path to resolve templates and images against.
func Open(root string) (*Vault, error) {
	if root == "" {
		return nil, fmt.Errorf("vault root is empty: notes must live on a local filesystem")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving vault root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening vault %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault root %s is not a directory", abs)
	}

	return &Vault{root: abs}, nil
}

// Root returns the absolute vault root directory.
func (v *Vault) Root() string {
	return v.root
}

// AbsPath resolves a path against the vault root. Absolute paths are
// returned unchanged.
func (v *Vault) AbsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(v.root, path)
}

// Read returns the text of the note at path (absolute or vault-relative).
func (v *Vault) Read(path string) (string, error) {
	data, err := os.ReadFile(v.AbsPath(path))
	if err != nil {
		return "", fmt.Errorf("reading note %s: %w", path, err)
	}
	return string(data), nil
}

// ListMarkdown walks the vault and returns the absolute paths of all
// markdown notes, in walk order. Hidden directories are skipped.
func (v *Vault) ListMarkdown() ([]string, error) {
	var notes []string
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != v.root {
				return filepath.SkipDir
			}
			return nil
		}
		if markdownExts[strings.ToLower(filepath.Ext(path))] {
			notes = append(notes, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing vault %s: %w", v.root, err)
	}
	return notes, nil
}
