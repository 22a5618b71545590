// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/casresolve/internal/httputil"
	"github.com/pdiddy/casresolve/internal/pubchem"
	"github.com/pdiddy/casresolve/internal/secrets"
	"github.com/pdiddy/casresolve/pkg/types"
)

func init() {
	viper.SetDefault("input", types.DefaultInputPath)
	viper.SetDefault("output", types.DefaultOutputPath)
	viper.SetDefault("base_url", types.DefaultBaseURL)
	viper.SetDefault("probe_cas", types.DefaultProbeCAS)
	viper.SetDefault("timeout", types.DefaultTimeout)
	viper.SetDefault("user_agent", types.DefaultUserAgent)
}

// bindFlags binds each config key to its flag so that an explicitly set
// flag overrides the config file and environment.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// lookupConfig assembles the client settings from viper.
func lookupConfig() types.LookupConfig {
	return types.LookupConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		BaseURL:  viper.GetString("base_url"),
		ProbeCAS: viper.GetString("probe_cas"),
	}
}

// resolveConfig assembles the pipeline settings from viper.
func resolveConfig() types.ResolveConfig {
	cfg := types.DefaultResolveConfig()
	cfg.Lookup = lookupConfig()
	cfg.InputPath = viper.GetString("input")
	cfg.OutputPath = viper.GetString("output")
	cfg.SummaryPath = viper.GetString("summary")
	cfg.SkipBlank = viper.GetBool("skip_blank")
	cfg.History = historyConfig()
	return cfg
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		DBPath:     viper.GetString("history_db"),
		MaxResults: viper.GetInt("history_max_results"),
	}
}

func newHTTPClient(cfg types.LookupConfig) *http.Client {
	return httputil.NewClient(cfg.HTTPConfig, loadedSecrets[secrets.ContactEmail])
}

func newLookupClient(cfg types.LookupConfig) *pubchem.Client {
	return pubchem.New(newHTTPClient(cfg), cfg, logger)
}
