package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridges/internal/bridge"
)

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status/job-1", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "text/plain", r.Header.Get("Accept"))
		assert.Equal(t, "bridges-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("FINISHED"))
	}))
	defer server.Close()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	c := NewClient("blast", server.URL+"/", WithMetrics(m), WithUserAgent("bridges-test"))
	resp, err := c.Get(context.Background(), "/status/job-1", url.Values{"format": {"json"}}, "text/plain")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "FINISHED", string(resp.Body))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestCount.WithLabelValues("blast", "200")))
}

func TestClientStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(strings.Repeat("x", 2*maxErrorBody)))
	}))
	defer server.Close()

	c := NewClient("uniprot", server.URL)
	resp, err := c.Get(context.Background(), "uniprotkb/XXX.json", nil, "")

	var se *bridge.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Len(t, se.Body, maxErrorBody)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.True(t, bridge.IsNotFound(bridge.Wrap("uniprot", "entry", err)))
}

func TestClientPostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		values, err := url.ParseQuery(string(body))
		assert.NoError(t, err)
		assert.Equal(t, "MKV", values.Get("sequence"))
		_, _ = w.Write([]byte("ncbiblast-R20261015-1"))
	}))
	defer server.Close()

	c := NewClient("blast", server.URL)
	resp, err := c.PostForm(context.Background(), "run", url.Values{"sequence": {"MKV"}})

	require.NoError(t, err)
	assert.Equal(t, "ncbiblast-R20261015-1", string(resp.Body))
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	cfg.Tracing = false

	c := NewClient("ols", server.URL, WithHTTPClient(New(cfg)))
	resp, err := c.Get(context.Background(), "/", nil, "")

	require.Error(t, err)
	assert.True(t, bridge.IsKind(bridge.Wrap("ols", "term", err), bridge.KindTransport))
	assert.Greater(t, resp.Duration, time.Duration(0))
}

func TestMetricsNilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Observe("picr", "200", time.Second) })
}
