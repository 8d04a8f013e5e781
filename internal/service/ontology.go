package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bridges/internal/model"
	"bridges/internal/ontology"
	"bridges/internal/repository"
	"bridges/internal/storage"
)

const (
	defaultTermLimit = 25
	maxTermLimit     = 500
)

// ImportResult summarises one ontology import.
type ImportResult struct {
	Ontology    string        `json:"ontology"`
	DataVersion string        `json:"data_version,omitempty"`
	Terms       int           `json:"terms"`
	Source      string        `json:"source,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
}

// TermListResult is the service-level DTO for paginated terms.
type TermListResult struct {
	Items []model.OntologyTerm `json:"data"`
	Total int                  `json:"total"`
}

// OntologyService defines the use cases of the local ontology store.
type OntologyService interface {
	// Import parses an OBO document and replaces the stored ontology with it.
	// name is only used to detect gzip input and to name the archived source.
	Import(ctx context.Context, ontology string, r io.Reader, name string) (*ImportResult, error)

	// ImportObject imports an OBO document already present in object storage.
	ImportObject(ctx context.Context, ontology, key string) (*ImportResult, error)

	// Term returns a term by id or alternative id.
	Term(ctx context.Context, ontology, id string) (*model.OntologyTerm, error)

	// Search returns terms whose name or synonym contains query.
	Search(ctx context.Context, ontology, query string, limit, offset int) (*TermListResult, error)

	// Children returns the direct is_a children of a term.
	Children(ctx context.Context, ontology, id string) ([]model.OntologyTerm, error)

	// Delete removes a stored ontology.
	Delete(ctx context.Context, ontology string) error
}

type ontologyService struct {
	store storage.Storage
	repo  repository.TermRepository
	log   logrus.FieldLogger
}

// NewOntologyService constructs an OntologyService. store may be nil; sources
// are then parsed without being archived and ImportObject is unavailable.
func NewOntologyService(store storage.Storage, repo repository.TermRepository, log logrus.FieldLogger) OntologyService {
	return &ontologyService{store: store, repo: repo, log: log}
}

func (s *ontologyService) Import(ctx context.Context, name string, r io.Reader, filename string) (*ImportResult, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	name = normalizeOntology(name)
	if name == "" {
		return nil, ErrOntologyRequired
	}
	if s.store == nil {
		return s.load(ctx, name, r, filename, "")
	}

	key := storage.OntologySourceKey(name, uuid.NewString()+sourceExt(filename))
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        -1,
		ContentType: "text/plain",
		Metadata:    map[string]string{"original-filename": path.Base(filename)},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	res, err := s.ImportObject(ctx, name, key)
	if err != nil {
		// Rollback: the source is only kept for imported ontologies
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("%w; rollback delete failed: %v", err, delErr)
		}
		return nil, err
	}
	return res, nil
}

func (s *ontologyService) ImportObject(ctx context.Context, name, key string) (*ImportResult, error) {
	name = normalizeOntology(name)
	if name == "" {
		return nil, ErrOntologyRequired
	}
	if key == "" {
		return nil, ErrIDRequired
	}
	if s.store == nil {
		return nil, fmt.Errorf("import %s: object storage is not configured", key)
	}

	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read from storage: %w", err)
	}
	defer rc.Close()

	return s.load(ctx, name, rc, key, key)
}

func (s *ontologyService) load(ctx context.Context, name string, r io.Reader, filename, source string) (*ImportResult, error) {
	start := time.Now()

	doc, err := ontology.Decode(r, filename)
	if err != nil {
		return nil, fmt.Errorf("parse obo: %w", err)
	}
	for i := range doc.Terms {
		doc.Terms[i].Ontology = name
	}

	n, err := s.repo.ReplaceOntology(ctx, name, doc.Terms)
	if err != nil {
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	res := &ImportResult{
		Ontology:    name,
		DataVersion: doc.DataVersion,
		Terms:       n,
		Source:      source,
		Duration:    time.Since(start),
	}
	s.log.WithFields(logrus.Fields{
		"ontology":     name,
		"data_version": res.DataVersion,
		"terms":        n,
		"source":       source,
		"duration_ms":  res.Duration.Milliseconds(),
	}).Info("ontology_imported")
	return res, nil
}

func (s *ontologyService) Term(ctx context.Context, name, id string) (*model.OntologyTerm, error) {
	name = normalizeOntology(name)
	if name == "" {
		return nil, ErrOntologyRequired
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	t, err := s.repo.FindByID(ctx, name, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *ontologyService) Search(ctx context.Context, name, query string, limit, offset int) (*TermListResult, error) {
	name = normalizeOntology(name)
	if name == "" {
		return nil, ErrOntologyRequired
	}
	if limit <= 0 {
		limit = defaultTermLimit
	}
	if limit > maxTermLimit {
		limit = maxTermLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.Search(ctx, name, query, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &TermListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *ontologyService) Children(ctx context.Context, name, id string) ([]model.OntologyTerm, error) {
	parent, err := s.Term(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if !parent.HasChildren {
		return []model.OntologyTerm{}, nil
	}
	return s.repo.Children(ctx, normalizeOntology(name), parent.ID)
}

func (s *ontologyService) Delete(ctx context.Context, name string) error {
	name = normalizeOntology(name)
	if name == "" {
		return ErrOntologyRequired
	}
	return s.repo.DeleteOntology(ctx, name)
}

func normalizeOntology(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// sourceExt keeps .obo and .obo.gz style suffixes of an uploaded file name.
func sourceExt(filename string) string {
	base := strings.ToLower(path.Base(filename))
	ext := path.Ext(base)
	if ext == ".gz" {
		return path.Ext(strings.TrimSuffix(base, ext)) + ext
	}
	if ext == "" || ext == "." {
		return ".obo"
	}
	return ext
}
