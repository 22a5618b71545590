// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package casfile reads identifier lists and writes resolution reports as
// comma-separated UTF-8 files.
package casfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/casresolve/pkg/types"
)

const utf8BOM = "\ufeff"

// ErrNotRegular is returned by Open when the path names a directory or
// another non-regular file.
var ErrNotRegular = errors.New("not a regular file")

// Reader streams identifiers from the first column of a CSV file.
// There is no header row; every record is data.
type Reader struct {
	f    *os.File
	csv  *csv.Reader
	path string
	rows int
}

// Open opens path for reading. A missing file returns an error that
// satisfies errors.Is(err, os.ErrNotExist); a directory or device
// returns ErrNotRegular.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w", path, ErrNotRegular)
	}
	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return &Reader{f: f, csv: cr, path: path}, nil
}

// Next returns the trimmed first field of the next record, or io.EOF
// when the file is exhausted. Blank lines are skipped by the CSV parser;
// a record whose first field is empty yields an empty identifier.
func (r *Reader) Next() (types.Identifier, error) {
	rec, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", r.path, err)
	}
	r.rows++

	field := rec[0]
	if r.rows == 1 {
		field = strings.TrimPrefix(field, utf8BOM)
	}
	return types.NewIdentifier(field), nil
}

// Rows returns the number of records read so far.
func (r *Reader) Rows() int { return r.rows }

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}

// ReadAll collects every identifier in file order.
func ReadAll(path string) ([]types.Identifier, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var ids []types.Identifier
	for {
		id, err := r.Next()
		if errors.Is(err, io.EOF) {
			return ids, nil
		}
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
}
