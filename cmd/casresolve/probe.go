package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that the PubChem service is reachable",
	Long: `Probe sends a single HEAD request for the probe CAS number and reports
whether PubChem answered 200 OK. It exits non-zero when the service is
unreachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := lookupConfig()
		client := newLookupClient(cfg)
		url := client.SynonymsURL(client.ProbeCAS())

		if !client.Probe(context.Background()) {
			return fmt.Errorf("PubChem API unavailable (%s)", url)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "PubChem API reachable (%s)\n", url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
