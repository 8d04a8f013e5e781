package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bridges/internal/model"
)

// mockBlastRunner stands in for the BLAST bridge.
type mockBlastRunner struct {
	mock.Mock
}

func (m *mockBlastRunner) Run(ctx context.Context, req model.BlastRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockBlastRunner) Status(ctx context.Context, jobID string) (model.BlastJobStatus, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(model.BlastJobStatus), args.Error(1)
}

func (m *mockBlastRunner) Result(ctx context.Context, jobID, resultType string) ([]byte, error) {
	args := m.Called(ctx, jobID, resultType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
