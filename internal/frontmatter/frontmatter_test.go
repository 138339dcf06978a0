// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package frontmatter

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    map[string]any
		wantErr bool
	}{
		{
			name: "no front-matter block",
			text: "# Heading\n\nBody text.\n",
			want: map[string]any{},
		},
		{
			name: "empty document",
			text: "",
			want: map[string]any{},
		},
		{
			name: "simple block",
			text: "---\ntitle: \"A\"\n---\n\nBody.\n",
			want: map[string]any{"title": "A"},
		},
		{
			name: "multiple keys and nesting",
			text: "---\ntitle: Report\nauthor: Lee\ntoc: true\nkeywords:\n  - go\n  - pdf\n---\nBody.\n",
			want: map[string]any{
				"title":    "Report",
				"author":   "Lee",
				"toc":      true,
				"keywords": []any{"go", "pdf"},
			},
		},
		{
			name: "block not at start of document",
			text: "Intro line\n---\ntitle: A\n---\n",
			want: map[string]any{},
		},
		{
			name: "unterminated block",
			text: "---\ntitle: A\n",
			want: map[string]any{},
		},
		{
			name:    "malformed yaml yields empty map and error",
			text:    "---\ntitle: [unclosed\n---\nBody.\n",
			want:    map[string]any{},
			wantErr: true,
		},
		{
			name: "crlf line endings",
			text: "---\r\ntitle: A\r\n---\r\nBody.\r\n",
			want: map[string]any{"title": "A"},
		},
		{
			name: "block at end of document without trailing newline",
			text: "---\ntitle: A\n---",
			want: map[string]any{"title": "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	text := "---\ntitle: \"A\"\nauthor: Lee\ndraft: false\n---\nBody.\n"

	vars, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	data, err := Marshal(vars)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	again, err := Parse("---\n" + string(data) + "---\n")
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reflect.DeepEqual(vars, again) {
		t.Errorf("round trip mismatch: %#v != %#v", vars, again)
	}
}
