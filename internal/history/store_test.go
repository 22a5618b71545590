// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/casresolve/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.HistoryConfig{DBPath: filepath.Join(t.TempDir(), "index", "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open(types.HistoryConfig{})
	require.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s1, err := Open(types.HistoryConfig{DBPath: path})
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(types.HistoryConfig{DBPath: path})
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, "run-1", types.FoundResult("50-00-0", []string{"Formaldehyde", "Methanal"}), at))
	require.NoError(t, s.Record(ctx, "run-1", types.NotFoundResult("1-11-1"), at))
	require.NoError(t, s.Record(ctx, "run-2", types.APIErrorResult("50-00-0"), at.Add(time.Hour)))

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "50-00-0", all[0].CAS)
	assert.Equal(t, "Formaldehyde, Methanal", all[0].Synonyms)
	assert.Equal(t, types.StatusFound, all[0].Status)
	assert.True(t, at.Equal(all[0].ResolvedAt))
	assert.Equal(t, types.StatusAPIError, all[2].Status)

	run1, err := s.List(ctx, Filter{RunID: "run-1"})
	require.NoError(t, err)
	require.Len(t, run1, 2)
	assert.Equal(t, "1-11-1", run1[1].CAS)
	assert.Equal(t, types.NameNotFound, run1[1].Name)

	byCAS, err := s.List(ctx, Filter{CAS: "50-00-0"})
	require.NoError(t, err)
	require.Len(t, byCAS, 2)
	assert.Equal(t, "run-1", byCAS[0].RunID)
	assert.Equal(t, "run-2", byCAS[1].RunID)
}

func TestListLimitKeepsNewest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for _, cas := range []types.Identifier{"a", "b", "c", "d"} {
		require.NoError(t, s.Record(ctx, "run", types.NotFoundResult(cas), time.Now()))
	}

	got, err := s.List(ctx, Filter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].CAS)
	assert.Equal(t, "d", got[1].CAS)
}
