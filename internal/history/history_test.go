// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notepress/internal/export"
	"github.com/pdiddy/notepress/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Record(export.Record{
		Note:     "/vault/note.md",
		Template: "Letter",
		Output:   "/vault/note.pdf",
		Status:   types.ExportDone,
		Duration: 1500 * time.Millisecond,
	}))
	require.NoError(t, s.Record(export.Record{
		Note:       "/vault/bad.md",
		Template:   "Letter",
		Status:     types.ExportFailed,
		Diagnostic: "pandoc failed: ! LaTeX Error",
		Duration:   200 * time.Millisecond,
	}))

	entries, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.Timestamp.IsZero())
	}

	var statuses []types.ExportStatus
	for _, e := range entries {
		statuses = append(statuses, e.Status)
	}
	assert.ElementsMatch(t, []types.ExportStatus{types.ExportDone, types.ExportFailed}, statuses)
}

func TestListLimit(t *testing.T) {
	s := openStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(export.Record{
			Note:   "/vault/note.md",
			Status: types.ExportDone,
		}))
	}

	entries, err := s.List(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestListEmpty(t *testing.T) {
	s := openStore(t)

	entries, err := s.List(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReopenKeepsEntries(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Record(export.Record{Note: "/vault/a.md", Status: types.ExportDone}))
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.List(0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "/vault/a.md", entries[0].Note)
}
