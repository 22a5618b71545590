// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/casresolve/internal/casfile"
	"github.com/pdiddy/casresolve/internal/history"
	"github.com/pdiddy/casresolve/internal/resolve"
)

func init() {
	f := rootCmd.Flags()
	f.String("input", "", "CSV file of CAS numbers, first column (default cas.csv)")
	f.String("output", "", "report file, overwritten each run (default res_cas.csv)")
	f.String("summary", "", "write a YAML run summary to this path")
	f.Bool("skip-blank", false, "skip empty identifiers instead of looking them up")

	bindFlags(f, map[string]string{
		"input":      "input",
		"output":     "output",
		"summary":    "summary",
		"skip_blank": "skip-blank",
	})
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := resolve.Options{
		Lookup: newLookupClient(cfg.Lookup),
		Logger: logger,
		Out:    os.Stdout,
		RunID:  uuid.NewString(),
	}

	if cfg.History.DBPath != "" {
		opts.OpenHistory = func() (resolve.Recorder, io.Closer, error) {
			store, err := history.Open(cfg.History)
			if err != nil {
				return nil, nil, err
			}
			return store, store, nil
		}
	}

	_, err := resolve.Run(ctx, cfg, opts)
	switch {
	case errors.Is(err, casfile.ErrNotRegular):
		return fmt.Errorf("input %s is not a regular file", cfg.InputPath)
	case errors.Is(err, resolve.ErrInputMissing):
		return fmt.Errorf("file %s not found", cfg.InputPath)
	case errors.Is(err, resolve.ErrServiceUnavailable):
		return fmt.Errorf("PubChem API unavailable, try again later")
	}
	return err
}
