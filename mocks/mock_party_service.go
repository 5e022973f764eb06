package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sellos/internal/service"
)

// MockPartyService is a mock implementation of service.PartyService.
type MockPartyService struct {
	mock.Mock
}

func (m *MockPartyService) Resolve(ctx context.Context, cuit string) (service.PartyResponse, error) {
	args := m.Called(ctx, cuit)
	return args.Get(0).(service.PartyResponse), args.Error(1)
}

func (m *MockPartyService) Registry(ctx context.Context, cuit string) (service.RegistryResponse, error) {
	args := m.Called(ctx, cuit)
	return args.Get(0).(service.RegistryResponse), args.Error(1)
}

func (m *MockPartyService) Search(ctx context.Context, search string, page, limit int) ([]service.PartyResponse, int64, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]service.PartyResponse), args.Get(1).(int64), args.Error(2)
}
