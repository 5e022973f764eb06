package model

import (
	"time"

	"gorm.io/gorm"
)

// Client is a party that can act as buyer or seller, keyed by CUIT
type Client struct {
	CUIT         string         `gorm:"column:cuit;type:varchar(11);primaryKey" json:"cuit"`
	BusinessName string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"business_name"`
	Address      string         `gorm:"type:varchar(50)" json:"address"`
	City         string         `gorm:"type:varchar(45)" json:"city"`
	Phone        string         `gorm:"type:varchar(15)" json:"phone"`
	Email        string         `gorm:"type:varchar(45)" json:"email"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Label is the selector text "RAZON SOCIAL | CUIT"
func (c Client) Label() string {
	return c.BusinessName + " | " + c.CUIT
}

// ClientRegistry holds the registration counters of a client. The row is
// locked while a stamp number is taken from it.
type ClientRegistry struct {
	CUIT               string    `gorm:"column:cuit;type:varchar(11);primaryKey" json:"cuit"`
	DistrictCode       string    `gorm:"type:varchar(4);not null;default:'0'" json:"district_code"`
	NextStampNo        int64     `gorm:"not null;default:1" json:"next_stamp_no"`
	NextPresentationNo int64     `gorm:"not null;default:1" json:"next_presentation_no"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (ClientRegistry) TableName() string {
	return "client_registry"
}
