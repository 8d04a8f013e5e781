package blast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bridges/internal/model"
)

func TestFilter(t *testing.T) {
	hits := []model.BlastHit{
		{Accession: "P99999", Identity: 100, Expectation: 1e-70, AlignLength: 104, TaxID: 9606, Organism: "Homo sapiens"},
		{Accession: "P62897", Identity: 91.4, Expectation: 3e-65, AlignLength: 104, TaxID: 10090, Organism: "Mus musculus"},
		{Accession: "P00044", Identity: 64, Expectation: 2e-30, AlignLength: 40, TaxID: 559292, Organism: "Saccharomyces cerevisiae"},
		{Accession: "Q00000", Identity: 30, Expectation: 5, AlignLength: 6, TaxID: 9606, Organism: "Homo sapiens"},
	}

	accessions := func(hs []model.BlastHit) []string {
		out := make([]string, 0, len(hs))
		for _, h := range hs {
			out = append(out, h.Accession)
		}
		return out
	}

	tests := []struct {
		name   string
		filter model.BlastFilter
		want   []string
	}{
		{name: "zero filter keeps all", filter: model.BlastFilter{}, want: []string{"P99999", "P62897", "P00044", "Q00000"}},
		{name: "identity", filter: model.BlastFilter{MinIdentity: 90}, want: []string{"P99999", "P62897"}},
		{name: "expectation", filter: model.BlastFilter{MaxExpectation: 1e-40}, want: []string{"P99999", "P62897"}},
		{name: "align length", filter: model.BlastFilter{MinAlignLength: 40}, want: []string{"P99999", "P62897", "P00044"}},
		{name: "taxids", filter: model.BlastFilter{TaxIDs: []int{9606, 559292}}, want: []string{"P99999", "P00044", "Q00000"}},
		{name: "organism ignores case", filter: model.BlastFilter{Organism: "homo SAPIENS"}, want: []string{"P99999", "Q00000"}},
		{name: "combined", filter: model.BlastFilter{MinIdentity: 50, Organism: "Homo sapiens"}, want: []string{"P99999"}},
		{name: "nothing matches", filter: model.BlastFilter{MinIdentity: 101}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accessions(Filter(hits, tt.filter)))
		})
	}
}
