// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/casresolve/pkg/types"
)

// userAgentTransport sets the User-Agent header on requests that do not
// carry one. The caller's request is cloned, never mutated.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if t.userAgent == "" || req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}

// UserAgent returns the configured agent, with a mailto suffix when a
// contact address is known (e.g. "casresolve/0.1 (mailto:me@example.com)").
func UserAgent(cfg types.HTTPConfig, contactEmail string) string {
	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = types.DefaultUserAgent
	}
	if email := strings.TrimSpace(contactEmail); email != "" {
		ua = fmt.Sprintf("%s (mailto:%s)", ua, email)
	}
	return ua
}

// NewClient builds the client used for every request of a run. The
// timeout applies to each request separately; a zero timeout falls back
// to types.DefaultTimeout.
func NewClient(cfg types.HTTPConfig, contactEmail string) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &userAgentTransport{
			base:      http.DefaultTransport,
			userAgent: UserAgent(cfg, contactEmail),
		},
	}
}
