package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sellos/internal/model"
	"sellos/internal/repository"
)

// MockStampRecordRepo is a mock implementation of repository.StampRecordRepository.
type MockStampRecordRepo struct {
	mock.Mock
}

func (m *MockStampRecordRepo) Create(ctx context.Context, record *model.StampRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStampRecordRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StampRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StampRecord), args.Error(1)
}

func (m *MockStampRecordRepo) List(ctx context.Context, filter repository.StampRecordFilter, page, limit int) ([]model.StampRecord, int64, error) {
	args := m.Called(ctx, filter, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.StampRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockStampRecordRepo) ListAll(ctx context.Context, filter repository.StampRecordFilter) ([]model.StampRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StampRecord), args.Error(1)
}
