package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"bridges/internal/model"
	"bridges/internal/repository"
)

const relationIsA = "is_a"

// TermPostgres is a PostgreSQL implementation of repository.TermRepository.
type TermPostgres struct {
	db *sql.DB
}

// NewTermPostgres creates a new TermPostgres repository.
func NewTermPostgres(db *sql.DB) *TermPostgres {
	return &TermPostgres{db: db}
}

var _ repository.TermRepository = (*TermPostgres)(nil)

const termColumns = `ontology, id, name, definition, comment, namespace, synonyms, xrefs, alt_ids, obsolete, replaced_by, has_children`

func (r *TermPostgres) ReplaceOntology(ctx context.Context, ontology string, terms []model.OntologyTerm) (n int, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM ontology_relations WHERE ontology = $1`, ontology); err != nil {
		return 0, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM ontology_terms WHERE ontology = $1`, ontology); err != nil {
		return 0, err
	}

	const qTerm = `
		INSERT INTO ontology_terms (` + termColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	const qRel = `
		INSERT INTO ontology_relations (ontology, term_id, parent_id, type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`
	for _, t := range terms {
		if _, err = tx.ExecContext(ctx, qTerm,
			ontology,
			t.ID,
			t.Name,
			t.Definition,
			t.Comment,
			t.Namespace,
			pq.Array(nonNil(t.Synonyms)),
			pq.Array(nonNil(t.Xrefs)),
			pq.Array(nonNil(t.AltIDs)),
			t.Obsolete,
			t.ReplacedBy,
			t.HasChildren,
		); err != nil {
			return 0, fmt.Errorf("insert term %s: %w", t.ID, err)
		}
		for _, p := range t.Parents {
			if _, err = tx.ExecContext(ctx, qRel, ontology, t.ID, p, relationIsA); err != nil {
				return 0, fmt.Errorf("insert relation %s: %w", t.ID, err)
			}
		}
		for _, rel := range t.Relations {
			if _, err = tx.ExecContext(ctx, qRel, ontology, t.ID, rel.TargetID, rel.Type); err != nil {
				return 0, fmt.Errorf("insert relation %s: %w", t.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return len(terms), nil
}

// FindByID fetches a term and its outgoing relations.
func (r *TermPostgres) FindByID(ctx context.Context, ontology, id string) (*model.OntologyTerm, error) {
	const q = `
		SELECT ` + termColumns + `
		FROM ontology_terms
		WHERE ontology = $1 AND (id = $2 OR $2 = ANY(alt_ids))
		LIMIT 1
	`
	t, err := scanTerm(r.db.QueryRowContext(ctx, q, ontology, id))
	if err != nil {
		return nil, err
	}

	const qRel = `
		SELECT parent_id, type
		FROM ontology_relations
		WHERE ontology = $1 AND term_id = $2
		ORDER BY type, parent_id
	`
	rows, err := r.db.QueryContext(ctx, qRel, ontology, t.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var target, typ string
		if err := rows.Scan(&target, &typ); err != nil {
			return nil, err
		}
		if typ == relationIsA {
			t.Parents = append(t.Parents, target)
			continue
		}
		t.Relations = append(t.Relations, model.TermRelation{Type: typ, TargetID: target})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Search ranks exact name matches first, then orders by name.
// An empty query lists the whole ontology.
func (r *TermPostgres) Search(ctx context.Context, ontology, query string, page repository.PageQuery) (*repository.PageResult[model.OntologyTerm], error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	const qCount = `
		SELECT COUNT(*)
		FROM ontology_terms
		WHERE ontology = $1
		  AND (name ILIKE $2 OR EXISTS (SELECT 1 FROM unnest(synonyms) s WHERE s ILIKE $2))
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, ontology, pattern).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + termColumns + `
		FROM ontology_terms
		WHERE ontology = $1
		  AND (name ILIKE $2 OR EXISTS (SELECT 1 FROM unnest(synonyms) s WHERE s ILIKE $2))
		ORDER BY (lower(name) = lower($3)) DESC, obsolete, name, id
		LIMIT $4 OFFSET $5
	`
	rows, err := r.db.QueryContext(ctx, qList, ontology, pattern, strings.TrimSpace(query), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items, err := scanTerms(rows)
	if err != nil {
		return nil, err
	}

	return &repository.PageResult[model.OntologyTerm]{
		Items: items,
		Total: total,
	}, nil
}

func (r *TermPostgres) Children(ctx context.Context, ontology, id string) ([]model.OntologyTerm, error) {
	const q = `
		SELECT t.ontology, t.id, t.name, t.definition, t.comment, t.namespace, t.synonyms, t.xrefs, t.alt_ids, t.obsolete, t.replaced_by, t.has_children
		FROM ontology_relations r
		JOIN ontology_terms t ON t.ontology = r.ontology AND t.id = r.term_id
		WHERE r.ontology = $1 AND r.parent_id = $2 AND r.type = $3
		ORDER BY t.id
	`
	rows, err := r.db.QueryContext(ctx, q, ontology, id, relationIsA)
	if err != nil {
		return nil, err
	}
	return scanTerms(rows)
}

func (r *TermPostgres) DeleteOntology(ctx context.Context, ontology string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ontology_relations WHERE ontology = $1`, ontology); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM ontology_terms WHERE ontology = $1`, ontology)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTerm(row rowScanner) (model.OntologyTerm, error) {
	var t model.OntologyTerm
	err := row.Scan(
		&t.Ontology,
		&t.ID,
		&t.Name,
		&t.Definition,
		&t.Comment,
		&t.Namespace,
		pq.Array(&t.Synonyms),
		pq.Array(&t.Xrefs),
		pq.Array(&t.AltIDs),
		&t.Obsolete,
		&t.ReplacedBy,
		&t.HasChildren,
	)
	return t, err
}

func scanTerms(rows *sql.Rows) ([]model.OntologyTerm, error) {
	defer rows.Close()

	items := make([]model.OntologyTerm, 0)
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
