// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package frontmatter extracts and re-serializes the YAML metadata block at
// the top of a markdown note.
package frontmatter

import (
	"fmt"
	"regexp"

	"go.yaml.in/yaml/v3"
)

// blockRe matches a front-matter block anchored at the start of the note:
// a line of exactly three hyphens, the enclosed content, and a closing
// three-hyphen line.
var blockRe = regexp.MustCompile(`(?s)\A---\r?\n(.*?)\r?\n---(\r?\n|\z)`)

// Parse extracts the front-matter mapping from raw note text.
//
// A note without a front-matter block yields an empty map and no error. A
// block that is present but not valid YAML yields an empty map and a parse
// error; callers report it and proceed with empty variables rather than
// aborting the export.
func Parse(text string) (map[string]any, error) {
	m := blockRe.FindStringSubmatch(text)
	if m == nil {
		return map[string]any{}, nil
	}

	vars := map[string]any{}
	if err := yaml.Unmarshal([]byte(m[1]), &vars); err != nil {
		return map[string]any{}, fmt.Errorf("parsing front-matter: %w", err)
	}
	if vars == nil {
		vars = map[string]any{}
	}
	return vars, nil
}

// Marshal re-serializes a front-matter mapping to YAML for the metadata
// side-file passed to pandoc. Parse(string(Marshal(m))) round-trips to m
// for any mapping Parse can produce.
func Marshal(vars map[string]any) ([]byte, error) {
	data, err := yaml.Marshal(vars)
	if err != nil {
		return nil, fmt.Errorf("marshaling front-matter: %w", err)
	}
	return data, nil
}
