package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sellos/internal/service"
)

// MockAuditService is a mock implementation of service.AuditService.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Write(ctx context.Context, operatorID, action, entityID, entityName string, details interface{}) {
	m.Called(ctx, operatorID, action, entityID, entityName, details)
}

func (m *MockAuditService) GetAuditLogs(ctx context.Context, action string, page, limit int) ([]service.AuditLogResponse, int64, error) {
	args := m.Called(ctx, action, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]service.AuditLogResponse), args.Get(1).(int64), args.Error(2)
}
