package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sellos/internal/model"
)

// MockCatalogRepo is a mock implementation of repository.CatalogRepository.
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) ListActs(ctx context.Context) ([]model.Act, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Act), args.Error(1)
}

func (m *MockCatalogRepo) FindActByCode(ctx context.Context, code string) (*model.Act, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Act), args.Error(1)
}

func (m *MockCatalogRepo) UpsertActs(ctx context.Context, acts []model.Act) error {
	args := m.Called(ctx, acts)
	return args.Error(0)
}

func (m *MockCatalogRepo) ListCurrencies(ctx context.Context) ([]model.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Currency), args.Error(1)
}

func (m *MockCatalogRepo) UpsertCurrencies(ctx context.Context, currencies []model.Currency) error {
	args := m.Called(ctx, currencies)
	return args.Error(0)
}

func (m *MockCatalogRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogRepo) UpsertProducts(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}
