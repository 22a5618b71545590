// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/casresolve/internal/resolve"
	"github.com/pdiddy/casresolve/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [cas...]",
	Short: "Resolve CAS numbers given on the command line",
	Long: `Lookup resolves the given CAS numbers without reading or writing any
file. Duplicates are looked up once. The console line format matches the
main command; --json prints the results as a JSON array instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	ids := make([]types.Identifier, 0, len(args))
	for _, a := range args {
		ids = append(ids, types.NewIdentifier(a))
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	echo := cmd.OutOrStdout()
	if jsonOutput {
		echo = io.Discard
	}

	results, err := resolve.Resolve(context.Background(), newLookupClient(lookupConfig()), ids, echo)
	if errors.Is(err, resolve.ErrServiceUnavailable) {
		return fmt.Errorf("PubChem API unavailable, try again later")
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	return nil
}
