package ontology

import (
	"sort"
	"strings"
	"unicode"

	"github.com/surgebase/porter2"

	"bridges/internal/model"
)

// index maps stemmed name and synonym tokens to term ids.
type index struct {
	postings map[string]map[string]struct{}
}

func newIndex(ids []string, terms map[string]*model.OntologyTerm) *index {
	ix := &index{postings: make(map[string]map[string]struct{})}
	for _, id := range ids {
		t := terms[id]
		for _, text := range append([]string{t.Name}, t.Synonyms...) {
			for _, tok := range tokenize(text) {
				set, ok := ix.postings[tok]
				if !ok {
					set = make(map[string]struct{})
					ix.postings[tok] = set
				}
				set[id] = struct{}{}
			}
		}
	}
	return ix
}

// tokenize lowercases text, splits it on anything but letters and digits and
// stems each word.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := words[:0]
	for _, w := range words {
		out = append(out, porter2.Stem(w))
	}
	return out
}

// Ranks, best first.
const (
	rankID = iota
	rankExactName
	rankExactSynonym
	rankNamePrefix
	rankTokens
	rankObsolete
)

// Search finds terms whose name or synonyms contain every word of query,
// after stemming. A query equal to a term id returns that term first, exact
// name matches come next and obsolete terms last. limit <= 0 returns all
// matches.
func (g *Graph) Search(query string, limit int) []model.OntologyTerm {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	candidates := make(map[string]struct{})
	if t, ok := g.Term(query); ok {
		candidates[t.ID] = struct{}{}
	}
	if toks := tokenize(query); len(toks) > 0 {
		for id := range g.index.match(toks) {
			candidates[id] = struct{}{}
		}
	}

	type scored struct {
		id   string
		rank int
	}
	lower := strings.ToLower(query)
	direct, _ := g.Term(query)

	hits := make([]scored, 0, len(candidates))
	for id := range candidates {
		t := g.terms[id]
		rank := rankTokens
		switch {
		case id == direct.ID:
			rank = rankID
		case strings.ToLower(t.Name) == lower:
			rank = rankExactName
		case hasSynonym(t, lower):
			rank = rankExactSynonym
		case strings.HasPrefix(strings.ToLower(t.Name), lower):
			rank = rankNamePrefix
		}
		if t.Obsolete && rank != rankID {
			rank = rankObsolete
		}
		hits = append(hits, scored{id: id, rank: rank})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].rank != hits[j].rank {
			return hits[i].rank < hits[j].rank
		}
		return hits[i].id < hits[j].id
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]model.OntologyTerm, 0, len(hits))
	for _, h := range hits {
		out = append(out, *g.terms[h.id])
	}
	return out
}

// match intersects the postings of every token.
func (ix *index) match(toks []string) map[string]struct{} {
	var result map[string]struct{}
	for _, tok := range toks {
		set := ix.postings[tok]
		if len(set) == 0 {
			return nil
		}
		if result == nil {
			result = make(map[string]struct{}, len(set))
			for id := range set {
				result[id] = struct{}{}
			}
			continue
		}
		for id := range result {
			if _, ok := set[id]; !ok {
				delete(result, id)
			}
		}
	}
	return result
}

func hasSynonym(t *model.OntologyTerm, lower string) bool {
	for _, s := range t.Synonyms {
		if strings.ToLower(s) == lower {
			return true
		}
	}
	return false
}
