// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the casresolve CLI. The root command
// resolves every CAS number in the input file to a PubChem name and up to
// three synonyms; subcommands expose the probe, ad-hoc lookups and the
// history ledger.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/casresolve/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// logger is the diagnostic logger; a no-op unless --verbose is set.
var logger = zap.NewNop()

// rootCmd is the base command for the casresolve CLI.
var rootCmd = &cobra.Command{
	Use:   "casresolve",
	Short: "Resolve CAS registry numbers to compound names via PubChem",
	Long: `casresolve reads CAS registry numbers from the first column of a CSV file,
looks each unique number up in PubChem and writes a report with the
compound name and up to three synonyms.

Before any lookup the PubChem service is probed once; when it is
unreachable, or the input file is missing, nothing is written.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s

		if viper.GetBool("verbose") {
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			logger = l
		}
		return nil
	},
	RunE: runResolve,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./casresolve.yaml or ~/.config/casresolve/config.yaml)")
	pf.String("base-url", "", "PubChem PUG REST base URL")
	pf.String("probe-cas", "", "known-valid CAS number used for the availability probe")
	pf.Duration("timeout", 0, "per-request timeout (default 5s)")
	pf.String("history-db", "", "SQLite file recording every resolved row (disabled when empty)")
	pf.Bool("verbose", false, "log request diagnostics to stderr")

	bindFlags(pf, map[string]string{
		"base_url":   "base-url",
		"probe_cas":  "probe-cas",
		"timeout":    "timeout",
		"history_db": "history-db",
		"verbose":    "verbose",
	})
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("casresolve")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "casresolve"))
		}
	}

	viper.SetEnvPrefix("CASRESOLVE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
