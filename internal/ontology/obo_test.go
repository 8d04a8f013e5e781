package ontology

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridges/internal/model"
)

func termByID(t *testing.T, doc *Document, id string) model.OntologyTerm {
	t.Helper()
	for _, term := range doc.Terms {
		if term.ID == id {
			return term
		}
	}
	t.Fatalf("term %s not parsed", id)
	return model.OntologyTerm{}
}

func TestParse(t *testing.T) {
	doc, err := Open("testdata/mini-mi.obo")
	require.NoError(t, err)

	assert.Equal(t, "1.2", doc.FormatVersion)
	assert.Equal(t, "2.5.5", doc.DataVersion)
	assert.Equal(t, "mi", doc.Ontology)
	assert.Equal(t, "PSI-MI", doc.DefaultNamespace)
	assert.Len(t, doc.Terms, 7)
	assert.Equal(t, []Typedef{{ID: "part_of", Name: "part of", IsTransitive: true}}, doc.Typedefs)

	th := termByID(t, doc, "MI:0018")
	assert.Equal(t, "two hybrid", th.Name)
	assert.Equal(t, "mi", th.Ontology)
	assert.Equal(t, "PSI-MI", th.Namespace)
	assert.Equal(t, `The classical two-hybrid system is a method that uses "transcriptional" activity.`, th.Definition)
	assert.Equal(t, []string{"2 hybrid", "Y2H", "yeast two hybrid"}, th.Synonyms)
	assert.Equal(t, []string{"PMID:1946372"}, th.Xrefs)
	assert.Equal(t, []string{"MI:0045"}, th.Parents)
	assert.Equal(t, []string{"MI:0397"}, th.AltIDs)
	assert.Equal(t, []model.TermRelation{{Type: "part_of", TargetID: "MI:0001"}}, th.Relations)
	assert.True(t, th.HasChildren)

	pid := termByID(t, doc, "MI:0002")
	assert.Equal(t, "Method to determine the molecules involved in the interaction.", pid.Comment)
	assert.Empty(t, th.Comment)

	obsolete := termByID(t, doc, "MI:0061")
	assert.True(t, obsolete.Obsolete)
	assert.Equal(t, "MI:0018", obsolete.ReplacedBy)
	assert.False(t, obsolete.HasChildren)
}

func TestParseMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("[Term]\nnonsense line\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Terms)
}

func TestDecodeGzip(t *testing.T) {
	raw, err := os.ReadFile("testdata/mini-mi.obo")
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := pgzip.NewWriter(&buf)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "mi.obo.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	doc, err := Open(path)
	require.NoError(t, err)
	assert.Len(t, doc.Terms, 7)

	_, err = Decode(bytes.NewReader(raw), "mi.obo.gz")
	assert.Error(t, err)
}

func TestStripTrailing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "MI:0001 ! detection", want: "MI:0001"},
		{in: `"a ! b" EXACT []`, want: `"a ! b" EXACT []`},
		{in: `"x" RELATED [] {source="y"}`, want: `"x" RELATED []`},
		{in: "plain", want: "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripTrailing(tt.in), tt.in)
	}
}

func TestTermIDs(t *testing.T) {
	doc, err := Parse(strings.NewReader("[Term]\nid: B:2\n[Term]\nid: A:1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A:1", "B:2"}, doc.TermIDs())
}
