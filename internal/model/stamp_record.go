package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Record status values
const (
	StampStatusActive = "A"
	StampSubtypeNone  = "00"
)

// StampRecord is a registered stamp-duty liquidation. All derived amounts are
// stored as computed at submission time.
type StampRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RegistrationNo int64     `gorm:"uniqueIndex:idx_stamp_registration;not null" json:"registration_no"`
	DistrictCode   string    `gorm:"type:varchar(4);uniqueIndex:idx_stamp_registration;not null" json:"district_code"`
	ActCode        string    `gorm:"type:varchar(2);not null;index" json:"act_code"`
	ActName        string    `gorm:"type:varchar(100);not null" json:"act_name"`
	Subtype        string    `gorm:"type:varchar(2);not null;default:'00'" json:"subtype"`
	ContractNo     int       `gorm:"not null" json:"contract_no"`

	BuyerCUIT     string `gorm:"column:buyer_cuit;type:varchar(11);not null;index" json:"buyer_cuit"`
	BuyerName     string `gorm:"type:varchar(50)" json:"buyer_name"`
	BuyerAddress  string `gorm:"type:varchar(50)" json:"buyer_address"`
	SellerCUIT    string `gorm:"column:seller_cuit;type:varchar(11);not null;index" json:"seller_cuit"`
	SellerName    string `gorm:"type:varchar(50)" json:"seller_name"`
	SellerAddress string `gorm:"type:varchar(50)" json:"seller_address"`

	ControlDate      time.Time `gorm:"type:date;not null;index" json:"control_date"`
	IngressDate      time.Time `gorm:"type:date;not null" json:"ingress_date"`
	RegistrationDate time.Time `gorm:"type:date;not null" json:"registration_date"`
	Offset1          int       `gorm:"column:offset1;not null" json:"offset1"`
	Offset2          int       `gorm:"column:offset2;not null" json:"offset2"`

	Product     string          `gorm:"type:varchar(50)" json:"product"`
	ProductCode int             `gorm:"not null;default:0" json:"product_code"`
	NetWeight   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"net_weight"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"unit_price"`

	Operativo1      decimal.Decimal `gorm:"column:operativo1;type:decimal(18,4);not null" json:"operativo1"`
	Operativo2      decimal.Decimal `gorm:"column:operativo2;type:decimal(18,4);not null" json:"operativo2"`
	FixedSum1       decimal.Decimal `gorm:"column:fixed_sum1;type:decimal(18,4);not null" json:"fixed_sum1"`
	FixedSum2       decimal.Decimal `gorm:"column:fixed_sum2;type:decimal(18,4);not null" json:"fixed_sum2"`
	IVA1            decimal.Decimal `gorm:"column:iva1;type:decimal(10,4);not null" json:"iva1"`
	IVA2            decimal.Decimal `gorm:"column:iva2;type:decimal(10,4);not null" json:"iva2"`
	ExcludeFixedSum bool            `gorm:"not null;default:false" json:"exclude_fixed_sum"`

	IVA1Amount        decimal.Decimal `gorm:"column:iva1_amount;type:decimal(18,4);not null" json:"iva1_amount"`
	IVA2Amount        decimal.Decimal `gorm:"column:iva2_amount;type:decimal(18,4);not null" json:"iva2_amount"`
	TaxableBase       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"taxable_base"`
	RegistrationValue decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"registration_value"`
	StampDuty         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"stamp_duty"`
	RegistrationRight decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"registration_right"`
	Bonus             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"bonus"`
	Total             decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total"`
	Aliquot1          decimal.Decimal `gorm:"column:aliquot1;type:decimal(18,4);not null" json:"aliquot1"` // iva1 amount / 10
	Aliquot2          decimal.Decimal `gorm:"column:aliquot2;type:decimal(18,4);not null" json:"aliquot2"`
	RatesSummary      string          `gorm:"type:varchar(100)" json:"rates_summary"`

	CurrencyIndex  int    `gorm:"not null;default:1" json:"currency_index"`
	CurrencyType   string `gorm:"type:varchar(2);not null;default:'PE'" json:"currency_type"`
	PresentationNo int64  `gorm:"not null;default:0" json:"presentation_no"`
	Status         string `gorm:"type:varchar(1);not null;default:'A';index" json:"status"`
	Observations   string `gorm:"type:text" json:"observations"`
	CreatedBy      string `gorm:"type:varchar(64)" json:"created_by"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
