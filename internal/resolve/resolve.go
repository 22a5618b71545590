// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve runs the CAS resolution pipeline: check the input file,
// probe the lookup service, then read, deduplicate, look up and write one
// report row per unique identifier.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/casresolve/internal/casfile"
	"github.com/pdiddy/casresolve/internal/pubchem"
	"github.com/pdiddy/casresolve/pkg/types"
)

var (
	// ErrInputMissing is returned when the input file does not exist.
	ErrInputMissing = errors.New("input file not found")

	// ErrServiceUnavailable is returned when the availability probe fails.
	ErrServiceUnavailable = errors.New("lookup service unavailable")
)

// Lookuper is the lookup service as seen by the pipeline.
// *pubchem.Client implements it.
type Lookuper interface {
	Probe(ctx context.Context) bool
	Lookup(ctx context.Context, cas types.Identifier) pubchem.Outcome
}

// Recorder receives every written row. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, runID string, r types.LookupResult, at time.Time) error
}

// Options carries the collaborators of a run.
type Options struct {
	Lookup Lookuper

	// History is optional.
	History Recorder

	// OpenHistory, when set and History is nil, opens the ledger once the
	// input has been checked and the probe has passed. The returned closer
	// is closed when the run ends.
	OpenHistory func() (Recorder, io.Closer, error)

	// Logger is optional; nil disables diagnostic logging.
	Logger *zap.Logger

	// Out receives one console line per identifier and the summary.
	// Defaults to os.Stdout.
	Out io.Writer

	// Err receives warnings. Defaults to os.Stderr.
	Err io.Writer

	// RunID tags history rows and the summary. Generated when empty.
	RunID string

	// Now defaults to time.Now.
	Now func() time.Time
}

func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Run executes one pass over cfg.InputPath. When the input is missing or
// not a regular file, or the probe fails, no file is created or modified.
// Per-identifier lookup failures never abort the run; they become
// sentinel rows.
func Run(ctx context.Context, cfg types.ResolveConfig, opts Options) (Summary, error) {
	if opts.Lookup == nil {
		return Summary{}, fmt.Errorf("no lookup client configured")
	}
	opts.defaults()
	log := opts.Logger.With(zap.String("run_id", opts.RunID))

	summary := Summary{
		RunID:     opts.RunID,
		Input:     cfg.InputPath,
		Output:    cfg.OutputPath,
		StartedAt: opts.Now(),
	}

	in, err := casfile.Open(cfg.InputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, casfile.ErrNotRegular) {
			return summary, fmt.Errorf("%w: %w", ErrInputMissing, err)
		}
		return summary, err
	}
	defer in.Close()

	if !opts.Lookup.Probe(ctx) {
		return summary, ErrServiceUnavailable
	}
	log.Debug("probe ok")

	out, err := casfile.Create(cfg.OutputPath)
	if err != nil {
		return summary, err
	}

	if opts.History == nil && opts.OpenHistory != nil {
		rec, closer, err := opts.OpenHistory()
		if err != nil {
			out.Close()
			return summary, err
		}
		if closer != nil {
			defer closer.Close()
		}
		opts.History = rec
	}

	runErr := process(ctx, cfg, opts, log, in, out, &summary)
	if closeErr := out.Close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}
	summary.FinishedAt = opts.Now()
	if runErr != nil {
		return summary, runErr
	}

	summary.Print(opts.Out)
	if cfg.SummaryPath != "" {
		if err := WriteSummary(cfg.SummaryPath, summary); err != nil {
			return summary, err
		}
	}
	log.Debug("run complete",
		zap.Int("rows", summary.Rows),
		zap.Int("unique", summary.Unique),
		zap.Int("duplicates", summary.Duplicates))
	return summary, nil
}

func process(ctx context.Context, cfg types.ResolveConfig, opts Options, log *zap.Logger, in *casfile.Reader, out *casfile.Writer, summary *Summary) error {
	seen := make(Seen)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cas, err := in.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		summary.Rows++

		if cfg.SkipBlank && cas.IsBlank() {
			summary.Blank++
			continue
		}
		if !seen.Add(cas) {
			summary.Duplicates++
			log.Debug("duplicate skipped", zap.String("cas", cas.String()))
			continue
		}
		summary.Unique++

		result := opts.Lookup.Lookup(ctx, cas).Result(cas)
		summary.tally(result)

		if err := out.Write(result); err != nil {
			return err
		}
		Echo(opts.Out, result)

		if opts.History != nil {
			if err := opts.History.Record(ctx, opts.RunID, result, opts.Now()); err != nil {
				fmt.Fprintf(opts.Err, "warning: %v\n", err)
			}
		}
	}
}

// Echo prints the console line for r.
func Echo(w io.Writer, r types.LookupResult) {
	fmt.Fprintf(w, "CAS: %s, Name: %s, Synonyms: %s\n", r.CAS, r.Name, r.JoinedSynonyms())
}

// Resolve looks up ids without touching any file: duplicates are dropped,
// each unique identifier is echoed to w, and the results are returned in
// first-occurrence order. The probe runs first, as in Run.
func Resolve(ctx context.Context, lookup Lookuper, ids []types.Identifier, w io.Writer) ([]types.LookupResult, error) {
	if !lookup.Probe(ctx) {
		return nil, ErrServiceUnavailable
	}
	var results []types.LookupResult
	for _, cas := range Unique(ids) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r := lookup.Lookup(ctx, cas).Result(cas)
		Echo(w, r)
		results = append(results, r)
	}
	return results, nil
}
