// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/casresolve/pkg/types"
)

// Summary holds the counts for one run.
type Summary struct {
	RunID      string    `yaml:"run_id"`
	Input      string    `yaml:"input"`
	Output     string    `yaml:"output"`
	Rows       int       `yaml:"rows"`
	Unique     int       `yaml:"unique"`
	Duplicates int       `yaml:"duplicates"`
	Blank      int       `yaml:"blank_skipped,omitempty"`
	Found      int       `yaml:"found"`
	NotFound   int       `yaml:"not_found"`
	APIErrors  int       `yaml:"api_errors"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
}

func (s *Summary) tally(r types.LookupResult) {
	switch r.Status {
	case types.StatusFound:
		s.Found++
	case types.StatusNotFound:
		s.NotFound++
	default:
		s.APIErrors++
	}
}

// Print writes a one-line summary to w.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\nResolved %d identifiers: %d found, %d not found, %d API errors",
		s.Unique, s.Found, s.NotFound, s.APIErrors)
	if s.Duplicates > 0 {
		fmt.Fprintf(w, " (%d duplicates skipped)", s.Duplicates)
	}
	fmt.Fprintln(w)
}

// WriteSummary saves s as YAML at path.
func WriteSummary(path string, s Summary) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSummary loads a summary written by WriteSummary.
func ReadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}
	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing summary: %w", err)
	}
	return &s, nil
}
