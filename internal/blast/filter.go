package blast

import (
	"strings"

	"bridges/internal/model"
)

// Filter returns the hits that satisfy f, in their original order.
func Filter(hits []model.BlastHit, f model.BlastFilter) []model.BlastHit {
	var taxa map[int]struct{}
	if len(f.TaxIDs) > 0 {
		taxa = make(map[int]struct{}, len(f.TaxIDs))
		for _, id := range f.TaxIDs {
			taxa[id] = struct{}{}
		}
	}
	organism := strings.TrimSpace(f.Organism)

	out := make([]model.BlastHit, 0, len(hits))
	for _, h := range hits {
		if h.Identity < f.MinIdentity {
			continue
		}
		if f.MaxExpectation > 0 && h.Expectation > f.MaxExpectation {
			continue
		}
		if h.AlignLength < f.MinAlignLength {
			continue
		}
		if taxa != nil {
			if _, ok := taxa[h.TaxID]; !ok {
				continue
			}
		}
		if organism != "" && !strings.EqualFold(h.Organism, organism) {
			continue
		}
		out = append(out, h)
	}
	return out
}
