package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bridges/internal/model"
	"bridges/internal/repository"
)

type MockTermRepository struct {
	mock.Mock
}

func (m *MockTermRepository) ReplaceOntology(ctx context.Context, ontology string, terms []model.OntologyTerm) (int, error) {
	args := m.Called(ctx, ontology, terms)
	return args.Int(0), args.Error(1)
}

func (m *MockTermRepository) FindByID(ctx context.Context, ontology, id string) (*model.OntologyTerm, error) {
	args := m.Called(ctx, ontology, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OntologyTerm), args.Error(1)
}

func (m *MockTermRepository) Search(ctx context.Context, ontology, query string, pq repository.PageQuery) (*repository.PageResult[model.OntologyTerm], error) {
	args := m.Called(ctx, ontology, query, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.OntologyTerm]), args.Error(1)
}

func (m *MockTermRepository) Children(ctx context.Context, ontology, id string) ([]model.OntologyTerm, error) {
	args := m.Called(ctx, ontology, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OntologyTerm), args.Error(1)
}

func (m *MockTermRepository) DeleteOntology(ctx context.Context, ontology string) error {
	args := m.Called(ctx, ontology)
	return args.Error(0)
}
