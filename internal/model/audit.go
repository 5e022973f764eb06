package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateStampRecord = "CREATE_STAMP_RECORD"
	ActionImportActs        = "IMPORT_ACTS"
	ActionExportRecords     = "EXPORT_STAMP_RECORDS"
)

// AuditLog tracks who did what to which entity
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OperatorID string    `gorm:"type:varchar(64);index" json:"operator_id"` // token subject, empty for automated jobs
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string    `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string    `gorm:"type:jsonb" json:"details"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
