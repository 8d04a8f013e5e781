package ontology

import (
	"sort"

	"bridges/internal/model"
)

// Graph indexes terms by id along their is_a edges. It is read-only after
// NewGraph and safe for concurrent use.
type Graph struct {
	terms    map[string]*model.OntologyTerm
	alt      map[string]string
	children map[string][]string
	ids      []string
	index    *index
}

// NewGraph builds a graph over terms. Parent ids that are not among terms
// are ignored when walking the graph.
func NewGraph(terms []model.OntologyTerm) *Graph {
	g := &Graph{
		terms:    make(map[string]*model.OntologyTerm, len(terms)),
		alt:      make(map[string]string),
		children: make(map[string][]string),
		ids:      make([]string, 0, len(terms)),
	}
	for i := range terms {
		t := terms[i]
		if _, dup := g.terms[t.ID]; dup {
			continue
		}
		g.terms[t.ID] = &t
		g.ids = append(g.ids, t.ID)
		for _, a := range t.AltIDs {
			g.alt[a] = t.ID
		}
	}
	sort.Strings(g.ids)

	for _, id := range g.ids {
		for _, p := range g.terms[id].Parents {
			if _, ok := g.terms[p]; ok {
				g.children[p] = append(g.children[p], id)
			}
		}
	}
	for _, id := range g.ids {
		g.terms[id].HasChildren = len(g.children[id]) > 0
	}

	g.index = newIndex(g.ids, g.terms)
	return g
}

// Len returns the number of terms.
func (g *Graph) Len() int { return len(g.ids) }

// Term looks a term up by primary or alternative id.
func (g *Graph) Term(id string) (model.OntologyTerm, bool) {
	if primary, ok := g.alt[id]; ok {
		id = primary
	}
	t, ok := g.terms[id]
	if !ok {
		return model.OntologyTerm{}, false
	}
	return *t, true
}

// Terms returns every term ordered by id.
func (g *Graph) Terms() []model.OntologyTerm {
	return g.collect(g.ids)
}

// Parents returns the direct is_a parents of id.
func (g *Graph) Parents(id string) []model.OntologyTerm {
	t, ok := g.Term(id)
	if !ok {
		return nil
	}
	var ids []string
	for _, p := range t.Parents {
		if _, ok := g.terms[p]; ok {
			ids = append(ids, p)
		}
	}
	return g.collect(ids)
}

// Children returns the direct is_a children of id.
func (g *Graph) Children(id string) []model.OntologyTerm {
	t, ok := g.Term(id)
	if !ok {
		return nil
	}
	return g.collect(g.children[t.ID])
}

// Ancestors returns every term reachable over is_a edges upwards, nearest
// first. Cycles are tolerated.
func (g *Graph) Ancestors(id string) []model.OntologyTerm {
	return g.walk(id, func(t *model.OntologyTerm) []string { return t.Parents })
}

// Descendants returns every term reachable over is_a edges downwards,
// nearest first. Cycles are tolerated.
func (g *Graph) Descendants(id string) []model.OntologyTerm {
	return g.walk(id, func(t *model.OntologyTerm) []string { return g.children[t.ID] })
}

// Roots returns the non-obsolete terms without parents in the graph.
func (g *Graph) Roots() []model.OntologyTerm {
	var ids []string
	for _, id := range g.ids {
		t := g.terms[id]
		if t.Obsolete {
			continue
		}
		root := true
		for _, p := range t.Parents {
			if _, ok := g.terms[p]; ok {
				root = false
				break
			}
		}
		if root {
			ids = append(ids, id)
		}
	}
	return g.collect(ids)
}

// walk is a breadth-first traversal that never visits a term twice and
// never reports the start term.
func (g *Graph) walk(id string, next func(*model.OntologyTerm) []string) []model.OntologyTerm {
	start, ok := g.Term(id)
	if !ok {
		return nil
	}
	seen := map[string]bool{start.ID: true}
	queue := []string{start.ID}
	var out []string
	for len(queue) > 0 {
		cur := g.terms[queue[0]]
		queue = queue[1:]
		for _, n := range next(cur) {
			if seen[n] {
				continue
			}
			if _, ok := g.terms[n]; !ok {
				continue
			}
			seen[n] = true
			out = append(out, n)
			queue = append(queue, n)
		}
	}
	return g.collect(out)
}

func (g *Graph) collect(ids []string) []model.OntologyTerm {
	out := make([]model.OntologyTerm, 0, len(ids))
	for _, id := range ids {
		out = append(out, *g.terms[id])
	}
	return out
}
