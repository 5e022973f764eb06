package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Act is a contract type with its stamp-duty rates and default day offsets
type Act struct {
	Code                  string          `gorm:"type:varchar(2);primaryKey" json:"code"`
	Name                  string          `gorm:"type:varchar(100);not null" json:"name"`
	Description           string          `gorm:"type:text" json:"description"`
	UsesProduct           bool            `gorm:"default:false" json:"uses_product"`
	IVA1                  decimal.Decimal `gorm:"column:iva1;type:decimal(10,4);not null;default:0" json:"iva1"`
	IVA2                  decimal.Decimal `gorm:"column:iva2;type:decimal(10,4);not null;default:0" json:"iva2"`
	StampDutyRate         decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0" json:"stamp_duty_rate"`
	RegistrationRightRate decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0" json:"registration_right_rate"`
	BonusDefault          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"bonus_default"`
	Offset1Default        int             `gorm:"column:offset1_default;not null;default:15" json:"offset1_default"`
	Offset2Default        int             `gorm:"column:offset2_default;not null;default:15" json:"offset2_default"`
	IsActive              bool            `gorm:"not null;index" json:"is_active"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// Currency of a record; Code is the index stored on records
type Currency struct {
	Code int    `gorm:"primaryKey;autoIncrement:false" json:"code"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Type string `gorm:"type:varchar(2);not null" json:"type"` // PE, DO
}

// Product is a grain type selectable on acts with a product selector
type Product struct {
	Code int    `gorm:"primaryKey;autoIncrement:false" json:"code"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}
