package repository

import (
	"context"

	"bridges/internal/model"
)

// TermRepository persists imported ontology terms. No business logic here.
type TermRepository interface {
	// ReplaceOntology deletes every stored term of ontology and inserts terms
	// in one transaction. It returns the number of terms written.
	ReplaceOntology(ctx context.Context, ontology string, terms []model.OntologyTerm) (int, error)

	// FindByID returns a term by primary or alternative id, with its parents
	// and typed relations. A missing term yields sql.ErrNoRows.
	FindByID(ctx context.Context, ontology, id string) (*model.OntologyTerm, error)

	// Search matches names and synonyms case-insensitively.
	Search(ctx context.Context, ontology, query string, pq PageQuery) (*PageResult[model.OntologyTerm], error)

	// Children returns the direct is_a children of id.
	Children(ctx context.Context, ontology, id string) ([]model.OntologyTerm, error)

	// DeleteOntology removes an ontology. Deleting a missing one is not an error.
	DeleteOntology(ctx context.Context, ontology string) error
}
