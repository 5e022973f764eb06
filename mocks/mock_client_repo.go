package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sellos/internal/model"
)

// MockClientRepo is a mock implementation of repository.ClientRepository.
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) FindByCUIT(ctx context.Context, cuit string) (*model.Client, error) {
	args := m.Called(ctx, cuit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepo) Search(ctx context.Context, search string, page, limit int) ([]model.Client, int64, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Client), args.Get(1).(int64), args.Error(2)
}

func (m *MockClientRepo) ListAll(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientRepo) FindRegistry(ctx context.Context, cuit string) (*model.ClientRegistry, error) {
	args := m.Called(ctx, cuit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientRegistry), args.Error(1)
}

func (m *MockClientRepo) LockRegistry(ctx context.Context, cuit string) (*model.ClientRegistry, error) {
	args := m.Called(ctx, cuit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientRegistry), args.Error(1)
}

func (m *MockClientRepo) SaveRegistry(ctx context.Context, registry *model.ClientRegistry) error {
	args := m.Called(ctx, registry)
	return args.Error(0)
}
