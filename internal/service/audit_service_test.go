package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sellos/internal/model"
	"sellos/internal/service"
	"sellos/mocks"
)

func TestAuditService_Write(t *testing.T) {
	repo := new(mocks.MockAuditRepo)
	svc := service.NewAuditService(repo)

	repo.On("Log", mock.Anything, mock.MatchedBy(func(e *model.AuditLog) bool {
		return e.OperatorID == operator &&
			e.Action == model.ActionCreateStampRecord &&
			e.Details == `{"registration_no":41}`
	})).Return(nil).Once()

	svc.Write(ctx, operator, model.ActionCreateStampRecord, "id-1", "Agenda | 01", map[string]int{"registration_no": 41})
	repo.AssertExpectations(t)
}

func TestAuditService_WriteFailureIsSwallowed(t *testing.T) {
	repo := new(mocks.MockAuditRepo)
	svc := service.NewAuditService(repo)
	repo.On("Log", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	assert.NotPanics(t, func() {
		svc.Write(ctx, "", model.ActionImportActs, "", "", make(chan int))
	})
	entry := repo.Calls[0].Arguments.Get(1).(*model.AuditLog)
	assert.Equal(t, "null", entry.Details)
}

func TestAuditService_GetAuditLogs(t *testing.T) {
	repo := new(mocks.MockAuditRepo)
	svc := service.NewAuditService(repo)

	at := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	repo.On("List", mock.Anything, model.ActionExportRecords, 1, 20).Return([]model.AuditLog{
		{ID: uuid.New(), Action: model.ActionExportRecords, CreatedAt: at},
		{ID: uuid.New(), OperatorID: operator, Action: model.ActionExportRecords, CreatedAt: at},
	}, int64(2), nil)

	logs, total, err := svc.GetAuditLogs(ctx, model.ActionExportRecords, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, logs, 2)
	assert.Equal(t, "system", logs[0].OperatorID)
	assert.Equal(t, operator, logs[1].OperatorID)
	assert.Equal(t, "2025-02-01T10:00:00Z", logs[0].CreatedAt)
}
