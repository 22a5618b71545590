package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout (default 5s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "casresolve/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LookupConfig holds settings for the PubChem lookup client.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the PUG REST root; the synonyms path is appended to it.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// ProbeCAS is a known-valid identifier used for the availability probe.
	ProbeCAS string `json:"probe_cas" yaml:"probe_cas"`
}

// ResolveConfig holds settings for one pipeline run.
type ResolveConfig struct {
	Lookup LookupConfig `json:"lookup" yaml:"lookup"`

	// InputPath is the CSV file of identifiers (default "cas.csv").
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the report file, truncated each run (default "res_cas.csv").
	OutputPath string `json:"output" yaml:"output"`

	// SummaryPath, when set, receives a YAML run summary.
	SummaryPath string `json:"summary,omitempty" yaml:"summary,omitempty"`

	// SkipBlank drops empty identifiers instead of looking them up.
	SkipBlank bool `json:"skip_blank" yaml:"skip_blank"`

	// History configures the optional SQLite ledger.
	History HistoryConfig `json:"history" yaml:"history"`
}

// HistoryConfig holds settings for the resolution ledger.
type HistoryConfig struct {
	// DBPath is the SQLite file; empty disables the ledger.
	DBPath string `json:"history_db,omitempty" yaml:"history_db,omitempty"`

	// MaxResults caps rows returned by List (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Defaults matching the values the tool has always used.
const (
	DefaultInputPath  = "cas.csv"
	DefaultOutputPath = "res_cas.csv"
	DefaultBaseURL    = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	DefaultProbeCAS   = "7778-77-0"
	DefaultTimeout    = 5 * time.Second
	DefaultUserAgent  = "casresolve/0.1"
)

// DefaultResolveConfig returns a ResolveConfig populated with defaults.
func DefaultResolveConfig() ResolveConfig {
	return ResolveConfig{
		Lookup: LookupConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			BaseURL:  DefaultBaseURL,
			ProbeCAS: DefaultProbeCAS,
		},
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}
