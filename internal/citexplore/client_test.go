package citexplore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridges/internal/bridge"
	"bridges/internal/httpclient"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return New(httpclient.NewClient(Name, server.URL))
}

func TestPublication(t *testing.T) {
	fixture, err := os.ReadFile("testdata/search_core.json")
	require.NoError(t, err)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "EXT_ID:10688190 AND SRC:MED", q.Get("query"))
		assert.Equal(t, "core", q.Get("resultType"))
		assert.Equal(t, "json", q.Get("format"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	})

	p, err := c.Publication(context.Background(), "10688190")
	require.NoError(t, err)

	assert.Equal(t, "10688190", p.PubmedID)
	assert.Equal(t, "10.1038/35001009", p.DOI)
	assert.Equal(t, "Uetz P", p.FirstAuthor())
	assert.Len(t, p.Authors, 3)
	assert.Equal(t, "Nature", p.Journal)
	assert.Equal(t, "0028-0836", p.ISSN)
	assert.Equal(t, 2000, p.Year)
	assert.Equal(t, "403", p.Volume)
	assert.Equal(t, "6770", p.Issue)
	assert.Equal(t, "623-627", p.Pages)
}

func TestPublicationNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hitCount":0,"resultList":{"result":[]}}`))
	})

	_, err := c.Publication(context.Background(), "1")
	assert.True(t, bridge.IsNotFound(err))
}

func TestPublicationInvalidID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	for _, id := range []string{"", "PMC1234", "12a"} {
		_, err := c.Publication(context.Background(), id)
		assert.True(t, bridge.IsKind(err, bridge.KindInvalidInput), id)
	}
}

func TestPublicationBadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hitCount":`))
	})

	_, err := c.Publication(context.Background(), "1")
	assert.True(t, bridge.IsKind(err, bridge.KindParse))
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("pageSize"))
		_, _ = w.Write([]byte(`{"hitCount":812,"resultList":{"result":[
			{"id":"1","source":"MED","title":"First","authorString":"Doe A, Roe B.","pubYear":"2019","journalTitle":"Proteomics"},
			{"id":"PMC9","source":"PMC","pmcid":"PMC9","title":"Second"}
		]}}`))
	})

	pubs, total, err := c.Search(context.Background(), "interactome", 0)
	require.NoError(t, err)
	assert.Equal(t, 812, total)
	require.Len(t, pubs, 2)

	assert.Equal(t, "1", pubs[0].PubmedID)
	assert.Equal(t, []string{"Doe A", "Roe B"}, pubs[0].Authors)
	assert.Equal(t, 2019, pubs[0].Year)
	assert.Equal(t, "Proteomics", pubs[0].Journal)

	assert.Empty(t, pubs[1].PubmedID)
	assert.Equal(t, "PMC9", pubs[1].PMCID)
	assert.Empty(t, pubs[1].FirstAuthor())
}

func TestSearchRemoteError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, _, err := c.Search(context.Background(), "x", 10)
	assert.True(t, bridge.IsKind(err, bridge.KindRemote))

	_, _, err = c.Search(context.Background(), " ", 10)
	assert.True(t, bridge.IsKind(err, bridge.KindInvalidInput))
}
