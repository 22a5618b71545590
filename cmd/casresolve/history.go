// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/casresolve/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List rows recorded in the history database",
	Long: `History prints rows stored by earlier runs that were started with
--history-db. Filter by run id or CAS number; the newest rows are shown.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("run", "", "filter by run id")
	historyCmd.Flags().String("cas", "", "filter by CAS number")
	historyCmd.Flags().Int("limit", 0, "maximum number of rows (default 100)")
	historyCmd.Flags().Bool("json", false, "output rows as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := historyConfig()
	if cfg.DBPath == "" {
		return fmt.Errorf("--history-db is required")
	}

	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, _ := cmd.Flags().GetString("run")
	cas, _ := cmd.Flags().GetString("cas")
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := store.List(context.Background(), history.Filter{RunID: runID, CAS: cas, Limit: limit})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistory(cmd.OutOrStdout(), entries, jsonOutput)
}

func formatHistory(w io.Writer, entries []history.Entry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No rows found.")
		return nil
	}

	fmt.Fprintf(w, "%-20s  %-12s  %-30s  %-10s  %s\n", "Resolved", "CAS", "Name", "Status", "Run")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, e := range entries {
		name := e.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		fmt.Fprintf(w, "%-20s  %-12s  %-30s  %-10s  %s\n",
			e.ResolvedAt.Format("2006-01-02 15:04:05"), e.CAS, name, e.Status, e.RunID)
	}
	fmt.Fprintf(w, "\n%d rows\n", len(entries))
	return nil
}
