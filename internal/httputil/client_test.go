// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/casresolve/pkg/types"
)

func TestUserAgent(t *testing.T) {
	tests := []struct {
		name  string
		cfg   types.HTTPConfig
		email string
		want  string
	}{
		{"configured agent", types.HTTPConfig{UserAgent: "test/1.0"}, "", "test/1.0"},
		{"default agent", types.HTTPConfig{}, "", types.DefaultUserAgent},
		{"with contact", types.HTTPConfig{UserAgent: "test/1.0"}, " me@example.com ", "test/1.0 (mailto:me@example.com)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserAgent(tt.cfg, tt.email))
		})
	}
}

func TestNewClientSetsUserAgent(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(types.HTTPConfig{UserAgent: "test/0.1"}, "")
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "test/0.1", got)
}

func TestNewClientKeepsExplicitUserAgent(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "explicit/2.0")

	resp, err := NewClient(types.HTTPConfig{UserAgent: "test/0.1"}, "").Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "explicit/2.0", got)
}

func TestNewClientTimeout(t *testing.T) {
	assert.Equal(t, types.DefaultTimeout, NewClient(types.HTTPConfig{}, "").Timeout)
	assert.Equal(t, 2*time.Second, NewClient(types.HTTPConfig{Timeout: 2 * time.Second}, "").Timeout)
}
