package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"sellos/internal/sellado"
	"sellos/internal/service"
)

// MockStampService is a mock implementation of service.StampService.
type MockStampService struct {
	mock.Mock
}

func (m *MockStampService) NewForm(ctx context.Context, req service.NewFormRequest) (service.FormResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.FormResponse), args.Error(1)
}

func (m *MockStampService) Edit(ctx context.Context, req service.EditFormRequest) (service.FormResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.FormResponse), args.Error(1)
}

func (m *MockStampService) Preview(ctx context.Context, form sellado.Form) (service.FormResponse, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(service.FormResponse), args.Error(1)
}

func (m *MockStampService) Create(ctx context.Context, form sellado.Form, operatorID string) (service.StampRecordResponse, error) {
	args := m.Called(ctx, form, operatorID)
	return args.Get(0).(service.StampRecordResponse), args.Error(1)
}

func (m *MockStampService) Get(ctx context.Context, id string) (service.StampRecordResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.StampRecordResponse), args.Error(1)
}

func (m *MockStampService) List(ctx context.Context, req service.ListStampRecordsRequest, page, limit int) ([]service.StampRecordResponse, int64, error) {
	args := m.Called(ctx, req, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]service.StampRecordResponse), args.Get(1).(int64), args.Error(2)
}

// Export writes the string given as the third return value, if any, to w.
func (m *MockStampService) Export(ctx context.Context, req service.ListStampRecordsRequest, w io.Writer, operatorID string) (int, error) {
	args := m.Called(ctx, req, w, operatorID)
	if len(args) > 2 {
		if body, ok := args.Get(2).(string); ok {
			_, _ = io.WriteString(w, body)
		}
	}
	return args.Int(0), args.Error(1)
}
