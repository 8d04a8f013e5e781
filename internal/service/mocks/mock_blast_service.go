package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bridges/internal/model"
	"bridges/internal/service"
)

type MockBlastService struct {
	mock.Mock
}

func (m *MockBlastService) Submit(ctx context.Context, req model.BlastRequest) (*service.BlastJob, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BlastJob), args.Error(1)
}

func (m *MockBlastService) Status(ctx context.Context, id string) (*service.BlastJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BlastJob), args.Error(1)
}

func (m *MockBlastService) Hits(ctx context.Context, id string, filter model.BlastFilter) (*service.BlastHitsResult, error) {
	args := m.Called(ctx, id, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BlastHitsResult), args.Error(1)
}
