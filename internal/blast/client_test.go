package blast

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridges/internal/bridge"
	"bridges/internal/httpclient"
	"bridges/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return New(httpclient.NewClient(Name, server.URL), "curator@example.org")
}

func TestRun(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/run", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		form, err := url.ParseQuery(string(body))
		assert.NoError(t, err)

		assert.Equal(t, "curator@example.org", form.Get("email"))
		assert.Equal(t, "blastp", form.Get("program"))
		assert.Equal(t, "uniprotkb_swissprot", form.Get("database"))
		assert.Equal(t, "protein", form.Get("stype"))
		assert.Equal(t, "MGDVEKGKKI", form.Get("sequence"))
		assert.Equal(t, "50", form.Get("alignments"))
		assert.Empty(t, form.Get("matrix"))
		_, _ = w.Write([]byte("ncbiblast-R20261015-120000-0001-1-p1m\n"))
	})

	id, err := c.Run(context.Background(), model.BlastRequest{Sequence: " MGDVEKGKKI ", Alignments: 50})
	require.NoError(t, err)
	assert.Equal(t, "ncbiblast-R20261015-120000-0001-1-p1m", id)
}

func TestRunValidation(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	tests := []struct {
		name string
		c    *Client
		req  model.BlastRequest
	}{
		{name: "empty sequence", c: c, req: model.BlastRequest{Sequence: "  "}},
		{name: "no email", c: New(c.http, ""), req: model.BlastRequest{Sequence: "MKV"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.c.Run(context.Background(), tt.req)
			assert.True(t, bridge.IsKind(err, bridge.KindInvalidInput))
		})
	}
	assert.False(t, called)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		code     int
		want     model.BlastJobStatus
		wantKind bridge.Kind
	}{
		{name: "running", body: "RUNNING", code: http.StatusOK, want: model.BlastRunning},
		{name: "finished with newline", body: "FINISHED\n", code: http.StatusOK, want: model.BlastFinished},
		{name: "unknown word", body: "PAUSED", code: http.StatusOK, wantKind: bridge.KindParse},
		{name: "server error", body: "boom", code: http.StatusInternalServerError, wantKind: bridge.KindRemote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/status/job-1", r.URL.Path)
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.body))
			})
			st, err := c.Status(context.Background(), "job-1")
			if tt.wantKind != "" {
				assert.True(t, bridge.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, st)
		})
	}
}

func TestHits(t *testing.T) {
	raw, err := os.ReadFile("testdata/result.xml")
	require.NoError(t, err)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/result/job-1/xml", r.URL.Path)
		_, _ = w.Write(raw)
	})

	hits, err := c.Hits(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Len(t, hits, 3)

	_, err = c.Result(context.Background(), "", ResultXML)
	assert.True(t, bridge.IsKind(err, bridge.KindInvalidInput))
}

func TestHitsMissingJob(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	_, err := c.Hits(context.Background(), "gone")
	assert.True(t, bridge.IsNotFound(err))
}

func TestWait(t *testing.T) {
	opts := WaitOptions{InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond, MaxElapsed: time.Second}

	t.Run("finishes after polling", func(t *testing.T) {
		replies := []string{"QUEUED", "RUNNING", "FINISHED"}
		calls := 0
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			reply := replies[len(replies)-1]
			if calls < len(replies) {
				reply = replies[calls]
			}
			calls++
			_, _ = w.Write([]byte(reply))
		})

		st, err := c.Wait(context.Background(), "job-1", opts)
		require.NoError(t, err)
		assert.Equal(t, model.BlastFinished, st)
		assert.Equal(t, 3, calls)
	})

	t.Run("failure is a remote error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("FAILURE"))
		})

		st, err := c.Wait(context.Background(), "job-1", opts)
		assert.Equal(t, model.BlastFailure, st)
		assert.True(t, bridge.IsKind(err, bridge.KindRemote))
	})

	t.Run("gives up at the ceiling", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("RUNNING"))
		})

		short := WaitOptions{InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond, MaxElapsed: 20 * time.Millisecond}
		st, err := c.Wait(context.Background(), "job-1", short)
		assert.Equal(t, model.BlastRunning, st)
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("unknown status stops polling", func(t *testing.T) {
		calls := 0
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			_, _ = w.Write([]byte("???"))
		})

		_, err := c.Wait(context.Background(), "job-1", opts)
		assert.True(t, bridge.IsKind(err, bridge.KindParse))
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("RUNNING"))
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Wait(ctx, "job-1", opts)
		assert.Error(t, err)
	})
}
