package taxonomy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridges/internal/bridge"
	"bridges/internal/cache"
	"bridges/internal/httpclient"
)

const humanJSON = `{
  "taxonId": 9606,
  "scientificName": "Homo sapiens",
  "commonName": "Human",
  "mnemonic": "HUMAN",
  "rank": "species",
  "otherNames": ["human"],
  "parent": {"taxonId": 9605, "scientificName": "Homo"},
  "lineage": [
    {"taxonId": 9605, "scientificName": "Homo", "rank": "genus"},
    {"taxonId": 207598, "scientificName": "Homininae", "rank": "subfamily"}
  ],
  "active": true
}`

const childrenJSON = `{"results":[
  {"taxonId": 63221, "scientificName": "Homo sapiens neanderthalensis", "rank": "subspecies", "parent": {"taxonId": 9606}},
  {"taxonId": 741158, "scientificName": "Homo sapiens subsp. 'Denisova'", "rank": "subspecies", "parent": {"taxonId": 9606}}
]}`

func newTestClient(t *testing.T, calls *atomic.Int32, c cache.Cache) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/taxonomy/9606", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(humanJSON))
	})
	mux.HandleFunc("/taxonomy/search", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "parent:9606", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(childrenJSON))
	})
	mux.HandleFunc("/taxonomy/", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"messages":["Resource not found"]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return New(httpclient.NewClient(Name, server.URL), c, time.Hour)
}

func TestTerm(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, &calls, nil)

	term, err := c.Term(context.Background(), 9606)
	require.NoError(t, err)

	assert.Equal(t, 9606, term.TaxID)
	assert.Equal(t, "Homo sapiens", term.ScientificName)
	assert.Equal(t, "Human", term.CommonName)
	assert.Equal(t, "HUMAN", term.Mnemonic)
	assert.Equal(t, "species", term.Rank)
	assert.Equal(t, 9605, term.ParentTaxID)
	assert.Equal(t, []int{9605, 207598}, term.Lineage)
	assert.Equal(t, []string{"human"}, term.Synonyms)
}

func TestTermNotFound(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, &calls, nil)

	_, err := c.Term(context.Background(), 99999999)
	assert.True(t, bridge.IsNotFound(err))
}

func TestPseudoTaxIDs(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, &calls, nil)

	tests := []struct {
		taxID int
		name  string
	}{
		{taxID: InVitro, name: "in vitro"},
		{taxID: ChemicalSynthesis, name: "chemical synthesis"},
		{taxID: Unknown, name: "unknown"},
		{taxID: InVivo, name: "in vivo"},
		{taxID: InSilico, name: "in silico"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, err := c.Term(context.Background(), tt.taxID)
			require.NoError(t, err)
			assert.Equal(t, tt.name, term.ScientificName)

			children, err := c.Children(context.Background(), tt.taxID)
			require.NoError(t, err)
			assert.Empty(t, children)
		})
	}
	assert.Zero(t, calls.Load())

	_, err := c.Term(context.Background(), -6)
	assert.True(t, bridge.IsKind(err, bridge.KindInvalidInput))
	_, err = c.Children(context.Background(), 0)
	assert.True(t, bridge.IsKind(err, bridge.KindInvalidInput))
}

func TestChildrenCached(t *testing.T) {
	var calls atomic.Int32
	mem, err := cache.NewMemory(1 << 20)
	require.NoError(t, err)
	defer mem.Close()

	c := newTestClient(t, &calls, mem)

	children, err := c.Children(context.Background(), 9606)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, 63221, children[0].TaxID)
	assert.Equal(t, 9606, children[0].ParentTaxID)

	mem.Wait()
	_, err = c.Children(context.Background(), 9606)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestChildrenFollowsNextLink(t *testing.T) {
	var calls atomic.Int32
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "/taxonomy/search", r.URL.Path)
		assert.Equal(t, "parent:9605", r.URL.Query().Get("query"))

		if r.URL.Query().Get("cursor") == "" {
			w.Header().Set("Link", `<`+server.URL+`/taxonomy/search?query=parent%3A9605&format=json&size=500&cursor=page2>; rel="next"`)
			_, _ = w.Write([]byte(`{"results":[{"taxonId": 9606, "scientificName": "Homo sapiens", "parent": {"taxonId": 9605}}]}`))
			return
		}
		assert.Equal(t, "page2", r.URL.Query().Get("cursor"))
		_, _ = w.Write([]byte(`{"results":[{"taxonId": 1425170, "scientificName": "Homo heidelbergensis", "parent": {"taxonId": 9605}}]}`))
	}))
	t.Cleanup(server.Close)
	c := New(httpclient.NewClient(Name, server.URL), nil, time.Hour)

	children, err := c.Children(context.Background(), 9605)

	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, 9606, children[0].TaxID)
	assert.Equal(t, 1425170, children[1].TaxID)
	assert.Equal(t, int32(2), calls.Load())
}
