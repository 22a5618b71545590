// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/casresolve/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadAll(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.Identifier
	}{
		{
			name:    "first column trimmed",
			content: " 50-00-0 ,formaldehyde\n64-17-5\n",
			want:    []types.Identifier{"50-00-0", "64-17-5"},
		},
		{
			name:    "duplicates are kept in order",
			content: "50-00-0\n50-00-0\n64-17-5\n",
			want:    []types.Identifier{"50-00-0", "50-00-0", "64-17-5"},
		},
		{
			name:    "blank lines skipped, empty first field kept",
			content: "50-00-0\n\n,extra\n64-17-5",
			want:    []types.Identifier{"50-00-0", "", "64-17-5"},
		},
		{
			name:    "quoted field",
			content: "\"7732-18-5\",\"water, dihydrogen oxide\"\n",
			want:    []types.Identifier{"7732-18-5"},
		},
		{
			name:    "byte order mark stripped",
			content: "\ufeff50-00-0\r\n64-17-5\r\n",
			want:    []types.Identifier{"50-00-0", "64-17-5"},
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "cas.csv", tt.content)
			got, err := ReadAll(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "cas.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpenDirectory(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotRegular)
}

func TestReaderRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cas.csv", "a\nb\nc\n")
	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, 3, r.Rows())
}

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "res_cas.csv")
	w, err := Create(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(types.FoundResult("50-00-0", []string{"Formaldehyde", "Methanal"})))
	require.NoError(t, w.Write(types.NotFoundResult("1-11-1")))
	require.NoError(t, w.Write(types.APIErrorResult("2-22-2")))
	assert.Equal(t, 3, w.Rows())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "cas,name,synonyms\n" +
		"50-00-0,Formaldehyde,\"Formaldehyde, Methanal\"\n" +
		"1-11-1,Not Found,\n" +
		"2-22-2,API Error,\n"
	assert.Equal(t, want, string(data))
}

func TestWriterTruncates(t *testing.T) {
	path := writeFile(t, t.TempDir(), "res_cas.csv", "old,contents,here\nmore,old,rows\n")

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cas,name,synonyms\n", string(data))
}

func TestWriterFlushesEachRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "res_cas.csv")
	w, err := Create(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Write(types.FoundResult("64-17-5", []string{"Ethanol"})))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cas,name,synonyms\n64-17-5,Ethanol,Ethanol\n", string(data))
}

func TestCreateInMissingDirectory(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "nope", "res_cas.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")
}
