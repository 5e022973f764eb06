package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sellos/internal/model"
	"sellos/internal/sellado"
	"sellos/internal/service"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetAct(ctx context.Context, code string) (sellado.Act, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(sellado.Act), args.Error(1)
}

func (m *MockCatalogService) GetFormData(ctx context.Context) (service.FormDataResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.FormDataResponse), args.Error(1)
}

func (m *MockCatalogService) ResolveCurrency(ctx context.Context, name string) (model.Currency, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Currency), args.Error(1)
}

func (m *MockCatalogService) ResolveProductCode(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) EnsureDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogService) ImportActs(ctx context.Context, acts []sellado.Act, operatorID string) (int, error) {
	args := m.Called(ctx, acts, operatorID)
	return args.Int(0), args.Error(1)
}
