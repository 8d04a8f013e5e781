package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridges/internal/model"
)

func ids(terms []model.OntologyTerm) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t.ID)
	}
	return out
}

func loadGraph(t *testing.T) *Graph {
	t.Helper()
	doc, err := Open("testdata/mini-mi.obo")
	require.NoError(t, err)
	return NewGraph(doc.Terms)
}

func TestGraphNavigation(t *testing.T) {
	g := loadGraph(t)
	assert.Equal(t, 7, g.Len())

	term, ok := g.Term("MI:0397")
	require.True(t, ok, "alt id resolves")
	assert.Equal(t, "MI:0018", term.ID)

	_, ok = g.Term("MI:9999")
	assert.False(t, ok)

	assert.Equal(t, []string{"MI:0045"}, ids(g.Parents("MI:0018")))
	assert.Equal(t, []string{"MI:0001", "MI:0002"}, ids(g.Children("MI:0000")))
	assert.Equal(t, []string{"MI:0045", "MI:0001", "MI:0000"}, ids(g.Ancestors("MI:0018")))
	assert.Equal(t, []string{"MI:0045", "MI:0018", "MI:0398"}, ids(g.Descendants("MI:0001")))
	assert.Equal(t, []string{"MI:0000"}, ids(g.Roots()))
	assert.Nil(t, g.Ancestors("MI:9999"))
}

func TestGraphCycles(t *testing.T) {
	g := NewGraph([]model.OntologyTerm{
		{ID: "X:1", Parents: []string{"X:3"}},
		{ID: "X:2", Parents: []string{"X:1"}},
		{ID: "X:3", Parents: []string{"X:2", "X:404"}},
	})

	assert.Equal(t, []string{"X:3", "X:2"}, ids(g.Ancestors("X:1")))
	assert.Equal(t, []string{"X:2", "X:3"}, ids(g.Descendants("X:1")))
	assert.Empty(t, g.Roots())
}

func TestGraphSearch(t *testing.T) {
	g := loadGraph(t)

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{name: "exact name first", query: "two hybrid", want: []string{"MI:0018", "MI:0398"}},
		{name: "stemmed words", query: "hybrids pooled", want: []string{"MI:0398"}},
		{name: "synonym", query: "y2h", want: []string{"MI:0018"}},
		{name: "by alt id", query: "MI:0397", want: []string{"MI:0018"}},
		{name: "obsolete last", query: "detection", want: []string{"MI:0001", "MI:0045", "MI:0061"}},
		{name: "limit", query: "detection", limit: 1, want: []string{"MI:0001"}},
		{name: "no match", query: "crystallography", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(g.Search(tt.query, tt.limit)))
		})
	}

	assert.Nil(t, g.Search("  ", 10))
}
