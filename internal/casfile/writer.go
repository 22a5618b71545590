// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pdiddy/casresolve/pkg/types"
)

// Header is the first row of every report.
var Header = []string{"cas", "name", "synonyms"}

// Writer writes one report row per resolved identifier.
type Writer struct {
	f    *os.File
	csv  *csv.Writer
	path string
	rows int
}

// Create truncates or creates path and writes the header row.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	w := &Writer{f: f, csv: csv.NewWriter(f), path: path}
	if err := w.writeRecord(Header); err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// Write appends the row for r. Rows are flushed as they are written so
// an interrupted run leaves every completed row on disk.
func (w *Writer) Write(r types.LookupResult) error {
	if err := w.writeRecord([]string{r.CAS.String(), r.Name, r.JoinedSynonyms()}); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Rows returns the number of data rows written.
func (w *Writer) Rows() int { return w.rows }

// Close flushes pending output and closes the file.
func (w *Writer) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()
	closeErr := w.f.Close()
	if flushErr != nil {
		return fmt.Errorf("writing %s: %w", w.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", w.path, closeErr)
	}
	return nil
}

func (w *Writer) writeRecord(rec []string) error {
	if err := w.csv.Write(rec); err != nil {
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	return nil
}
