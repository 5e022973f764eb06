package service

import (
	"context"
	"encoding/json"
	"time"

	"sellos/internal/logger"
	"sellos/internal/model"
	"sellos/internal/repository"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	OperatorID string `json:"operator_id"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

// AuditWriter records who did what. Writes are best effort and never fail
// the calling operation.
type AuditWriter interface {
	Write(ctx context.Context, operatorID, action, entityID, entityName string, details interface{})
}

type AuditService interface {
	AuditWriter
	GetAuditLogs(ctx context.Context, action string, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Write(ctx context.Context, operatorID, action, entityID, entityName string, details interface{}) {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("null")
	}

	entry := model.AuditLog{
		OperatorID: operatorID,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	}

	if err := s.repo.Log(ctx, &entry); err != nil {
		log := logger.WithComponent("audit")
		log.Warn().Err(err).Str("action", action).Str("entity_id", entityID).Msg("failed to write audit log")
	}
}

// GetAuditLogs returns a page of audit entries, newest first
func (s *auditService) GetAuditLogs(ctx context.Context, action string, page, limit int) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.repo.List(ctx, action, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		operator := l.OperatorID
		if operator == "" {
			operator = "system"
		}
		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			OperatorID: operator,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		})
	}

	return res, total, nil
}
