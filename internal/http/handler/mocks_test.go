package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bridges/internal/model"
	"bridges/internal/ols"
	"bridges/internal/picr"
)

type mockPublications struct{ mock.Mock }

func (m *mockPublications) Publication(ctx context.Context, pmid string) (*model.Publication, error) {
	args := m.Called(ctx, pmid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Publication), args.Error(1)
}

func (m *mockPublications) Search(ctx context.Context, query string, pageSize int) ([]model.Publication, int, error) {
	args := m.Called(ctx, query, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Publication), args.Int(1), args.Error(2)
}

type mockImex struct{ mock.Mock }

func (m *mockImex) pub(args mock.Arguments) (*model.ImexPublication, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImexPublication), args.Error(1)
}

func (m *mockImex) Publication(ctx context.Context, pmid string) (*model.ImexPublication, error) {
	return m.pub(m.Called(ctx, pmid))
}

func (m *mockImex) Create(ctx context.Context, pmid string) (*model.ImexPublication, error) {
	return m.pub(m.Called(ctx, pmid))
}

func (m *mockImex) UpdateStatus(ctx context.Context, pmid string, status model.ImexStatus, message string) (*model.ImexPublication, error) {
	return m.pub(m.Called(ctx, pmid, status, message))
}

func (m *mockImex) AssignImexAccession(ctx context.Context, pmid string, create bool) (*model.ImexPublication, error) {
	return m.pub(m.Called(ctx, pmid, create))
}

type mockTerms struct{ mock.Mock }

func (m *mockTerms) Term(ctx context.Context, ontology, oboID string) (*model.OntologyTerm, error) {
	args := m.Called(ctx, ontology, oboID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OntologyTerm), args.Error(1)
}

func (m *mockTerms) Children(ctx context.Context, ontology, oboID string) ([]model.OntologyTerm, error) {
	args := m.Called(ctx, ontology, oboID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OntologyTerm), args.Error(1)
}

func (m *mockTerms) Parents(ctx context.Context, ontology, oboID string) ([]model.OntologyTerm, error) {
	args := m.Called(ctx, ontology, oboID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OntologyTerm), args.Error(1)
}

func (m *mockTerms) Search(ctx context.Context, query string, opts ols.SearchOptions) ([]model.OntologyTerm, int, error) {
	args := m.Called(ctx, query, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.OntologyTerm), args.Int(1), args.Error(2)
}

type mockTaxonomy struct{ mock.Mock }

func (m *mockTaxonomy) Term(ctx context.Context, taxID int) (*model.TaxonomyTerm, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaxonomyTerm), args.Error(1)
}

func (m *mockTaxonomy) Children(ctx context.Context, taxID int) ([]model.TaxonomyTerm, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TaxonomyTerm), args.Error(1)
}

type mockUniprot struct{ mock.Mock }

func (m *mockUniprot) Entry(ctx context.Context, accession string) (*model.UniprotEntry, error) {
	args := m.Called(ctx, accession)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UniprotEntry), args.Error(1)
}

func (m *mockUniprot) Search(ctx context.Context, query string, limit int) ([]model.UniprotEntry, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UniprotEntry), args.Error(1)
}

func (m *mockUniprot) Versions(ctx context.Context, accession string) ([]model.SequenceVersion, error) {
	args := m.Called(ctx, accession)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SequenceVersion), args.Error(1)
}

func (m *mockUniprot) SequenceVersion(ctx context.Context, accession string, sequenceVersion int) (*model.SequenceVersion, error) {
	args := m.Called(ctx, accession, sequenceVersion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SequenceVersion), args.Error(1)
}

func (m *mockUniprot) LatestSequence(ctx context.Context, accession string) (*model.SequenceVersion, error) {
	args := m.Called(ctx, accession)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SequenceVersion), args.Error(1)
}

type mockPICR struct{ mock.Mock }

func (m *mockPICR) MapAccession(ctx context.Context, accession string, opts picr.Options) ([]model.UPEntry, error) {
	args := m.Called(ctx, accession, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UPEntry), args.Error(1)
}
