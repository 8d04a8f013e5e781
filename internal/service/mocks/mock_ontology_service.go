package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"bridges/internal/model"
	"bridges/internal/service"
)

type MockOntologyService struct {
	mock.Mock
}

func (m *MockOntologyService) Import(ctx context.Context, ontology string, r io.Reader, name string) (*service.ImportResult, error) {
	args := m.Called(ctx, ontology, r, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}

func (m *MockOntologyService) ImportObject(ctx context.Context, ontology, key string) (*service.ImportResult, error) {
	args := m.Called(ctx, ontology, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}

func (m *MockOntologyService) Term(ctx context.Context, ontology, id string) (*model.OntologyTerm, error) {
	args := m.Called(ctx, ontology, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OntologyTerm), args.Error(1)
}

func (m *MockOntologyService) Search(ctx context.Context, ontology, query string, limit, offset int) (*service.TermListResult, error) {
	args := m.Called(ctx, ontology, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TermListResult), args.Error(1)
}

func (m *MockOntologyService) Children(ctx context.Context, ontology, id string) ([]model.OntologyTerm, error) {
	args := m.Called(ctx, ontology, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OntologyTerm), args.Error(1)
}

func (m *MockOntologyService) Delete(ctx context.Context, ontology string) error {
	args := m.Called(ctx, ontology)
	return args.Error(0)
}
