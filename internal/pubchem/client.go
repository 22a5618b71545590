// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubchem resolves CAS numbers to compound synonyms through the
// PubChem PUG REST service.
package pubchem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/casresolve/pkg/types"
)

// synonymsPath is appended to the base URL; %s is the escaped identifier.
const synonymsPath = "/compound/name/%s/synonyms/xml"

// Kind identifies which variant an Outcome holds.
type Kind int

const (
	// KindFound means the service answered 200 and the body parsed.
	// The synonym list may still be empty.
	KindFound Kind = iota
	// KindNotFound means the service answered with a non-200 status.
	KindNotFound
	// KindFailed means the request or the XML decode failed.
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindNotFound:
		return "not_found"
	case KindFailed:
		return "failed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the typed result of a single lookup.
type Outcome struct {
	Kind Kind

	// Synonyms is set for KindFound, in document order.
	Synonyms []string

	// StatusCode is the HTTP status, zero when no response arrived.
	StatusCode int

	// Err is set for KindFailed.
	Err error
}

// Result maps the outcome onto the report row for cas.
func (o Outcome) Result(cas types.Identifier) types.LookupResult {
	switch o.Kind {
	case KindFound:
		return types.FoundResult(cas, o.Synonyms)
	case KindNotFound:
		return types.NotFoundResult(cas)
	default:
		return types.APIErrorResult(cas)
	}
}

// ErrTransport wraps network-level failures: timeouts, refused
// connections, DNS errors.
var ErrTransport = errors.New("pubchem: request failed")

// ErrMalformed wraps XML decode failures on a 200 response.
var ErrMalformed = errors.New("pubchem: malformed response")

// Client queries the synonyms endpoint.
type Client struct {
	http     *http.Client
	baseURL  string
	probeCAS types.Identifier
	log      *zap.Logger
}

// New returns a Client. A nil logger disables diagnostic logging.
func New(httpClient *http.Client, cfg types.LookupConfig, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: types.DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = types.DefaultBaseURL
	}
	probe := types.NewIdentifier(cfg.ProbeCAS)
	if probe.IsBlank() {
		probe = types.DefaultProbeCAS
	}
	return &Client{
		http:     httpClient,
		baseURL:  base,
		probeCAS: probe,
		log:      logger.Named("pubchem"),
	}
}

// ProbeCAS returns the identifier used by Probe.
func (c *Client) ProbeCAS() types.Identifier { return c.probeCAS }

// SynonymsURL returns the request URL for cas.
func (c *Client) SynonymsURL(cas types.Identifier) string {
	return c.baseURL + fmt.Sprintf(synonymsPath, url.PathEscape(cas.String()))
}

// Probe issues a HEAD request for the probe identifier and reports
// whether the service answered 200. Failures are logged, never returned.
func (c *Client) Probe(ctx context.Context) bool {
	u := c.SynonymsURL(c.probeCAS)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
	if err != nil {
		c.log.Debug("building probe request", zap.String("url", u), zap.Error(err))
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("probe failed", zap.String("url", u), zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	c.log.Debug("probe", zap.String("url", u), zap.Int("status", resp.StatusCode))
	return resp.StatusCode == http.StatusOK
}

// Lookup fetches the synonyms for cas. It never returns an error: every
// failure is folded into the Outcome.
func (c *Client) Lookup(ctx context.Context, cas types.Identifier) Outcome {
	u := c.SynonymsURL(cas)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return c.failed(u, start, 0, fmt.Errorf("%w: creating request: %v", ErrTransport, err))
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.failed(u, start, 0, fmt.Errorf("%w: %v", ErrTransport, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		c.log.Debug("lookup",
			zap.String("url", u),
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", time.Since(start)))
		return Outcome{Kind: KindNotFound, StatusCode: resp.StatusCode}
	}

	doc, err := ParseInformationList(resp.Body)
	if err != nil {
		// A body cut off by the client timeout surfaces here as a read error.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return c.failed(u, start, resp.StatusCode, fmt.Errorf("%w: %v", ErrTransport, err))
		}
		return c.failed(u, start, resp.StatusCode, fmt.Errorf("%w: %v", ErrMalformed, err))
	}

	synonyms := doc.Synonyms()
	c.log.Debug("lookup",
		zap.String("url", u),
		zap.Int("status", resp.StatusCode),
		zap.Int("synonyms", len(synonyms)),
		zap.Duration("elapsed", time.Since(start)))
	return Outcome{Kind: KindFound, Synonyms: synonyms, StatusCode: resp.StatusCode}
}

func (c *Client) failed(u string, start time.Time, status int, err error) Outcome {
	c.log.Debug("lookup failed",
		zap.String("url", u),
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))
	return Outcome{Kind: KindFailed, StatusCode: status, Err: err}
}
