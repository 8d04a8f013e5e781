package blast

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXML(t *testing.T) {
	f, err := os.Open("testdata/result.xml")
	require.NoError(t, err)
	defer f.Close()

	hits, err := ParseXML(f)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	human := hits[0]
	assert.Equal(t, 1, human.Number)
	assert.Equal(t, "P99999", human.Accession)
	assert.Equal(t, "SP:CYC_HUMAN", human.ID)
	assert.Equal(t, "Homo sapiens", human.Organism)
	assert.Equal(t, 9606, human.TaxID)
	assert.Equal(t, 100.0, human.Identity)
	assert.Equal(t, 1.2e-70, human.Expectation)
	assert.Equal(t, 10, human.AlignLength)
	assert.Equal(t, "MGDVEKGKKI", human.MatchSeq)

	mouse := hits[1]
	assert.Equal(t, 91.4, mouse.Identity, "first alignment wins")
	assert.Equal(t, 10090, mouse.TaxID)

	yeast := hits[2]
	assert.Equal(t, "Saccharomyces cerevisiae (strain ATCC 204508 / S288c)", yeast.Organism)
	assert.Equal(t, 559292, yeast.TaxID)
	assert.Equal(t, 1, yeast.Gaps)
}

func TestParseXMLSkipsHitsWithoutAlignments(t *testing.T) {
	doc := `<EBIApplicationResult xmlns="http://www.ebi.ac.uk/schema">
<SequenceSimilaritySearchResult><hits total="1">
<hit number="1" id="TR:A0A000" ac="A0A000" length="10" description="Uncharacterized"><alignments total="0"></alignments></hit>
</hits></SequenceSimilaritySearchResult></EBIApplicationResult>`

	hits, err := ParseXML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestParseXMLMalformed(t *testing.T) {
	_, err := ParseXML(strings.NewReader("<EBIApplicationResult><hits>"))
	assert.Error(t, err)
}

func TestParseTabular(t *testing.T) {
	f, err := os.Open("testdata/result.tsv")
	require.NoError(t, err)
	defer f.Close()

	hits, err := ParseTabular(f)
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, 1, hits[0].Number)
	assert.Equal(t, "P99999", hits[0].Accession)
	assert.Equal(t, 104, hits[0].AlignLength)
	assert.Equal(t, 1e-70, hits[0].Expectation)
	assert.Equal(t, 212.6, hits[0].Bits)

	assert.Equal(t, "P62897", hits[1].Accession)
	assert.Equal(t, 91.35, hits[1].Identity)
	assert.Equal(t, 2, hits[1].MatchStart)
	assert.Equal(t, 105, hits[1].MatchEnd)
	assert.Equal(t, 1, hits[1].GapOpens)
	assert.Zero(t, hits[1].Gaps)
	assert.Zero(t, hits[0].GapOpens)
}

func TestParseTabularOnlyComments(t *testing.T) {
	hits, err := ParseTabular(strings.NewReader("# BLASTP 2.15.0+\n# 0 hits found\n"))
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestParseTabularWrongColumnCount(t *testing.T) {
	_, err := ParseTabular(strings.NewReader("q1\tsp|P1|X\t99.0\n"))
	assert.Error(t, err)
}

func TestAccessionFromID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "sp|P12345|CYC_HUMAN", want: "P12345"},
		{id: "tr|A0A024R161|A0A024R161_HUMAN", want: "A0A024R161"},
		{id: "SP:P12345", want: "P12345"},
		{id: "UNIPROT:Q9Y6K9 extra", want: "Q9Y6K9"},
		{id: " P04637 ", want: "P04637"},
		{id: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, AccessionFromID(tt.id))
		})
	}
}
