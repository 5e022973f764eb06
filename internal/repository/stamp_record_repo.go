package repository

import (
	"context"
	"time"

	"sellos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StampRecordFilter narrows record listings. Zero values are ignored.
type StampRecordFilter struct {
	BuyerCUIT  string
	SellerCUIT string
	ActCode    string
	From       *time.Time // control date, inclusive
	To         *time.Time // control date, inclusive
}

type StampRecordRepository interface {
	Create(ctx context.Context, record *model.StampRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StampRecord, error)
	List(ctx context.Context, filter StampRecordFilter, page, limit int) ([]model.StampRecord, int64, error)
	// ListAll returns every matching record ordered by registration number.
	ListAll(ctx context.Context, filter StampRecordFilter) ([]model.StampRecord, error)
}

type stampRecordRepository struct {
	db *gorm.DB
}

func NewStampRecordRepository(db *gorm.DB) StampRecordRepository {
	return &stampRecordRepository{db: db}
}

func (r *stampRecordRepository) Create(ctx context.Context, record *model.StampRecord) error {
	return GetDB(ctx, r.db).Create(record).Error
}

func (r *stampRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.StampRecord, error) {
	var record model.StampRecord
	if err := GetDB(ctx, r.db).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *stampRecordRepository) List(ctx context.Context, filter StampRecordFilter, page, limit int) ([]model.StampRecord, int64, error) {
	var records []model.StampRecord
	var total int64

	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.filtered(ctx, filter).Order("created_at DESC").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *stampRecordRepository) ListAll(ctx context.Context, filter StampRecordFilter) ([]model.StampRecord, error) {
	var records []model.StampRecord
	if err := r.filtered(ctx, filter).Order("registration_no ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *stampRecordRepository) filtered(ctx context.Context, f StampRecordFilter) *gorm.DB {
	query := GetDB(ctx, r.db).Model(&model.StampRecord{})
	if f.BuyerCUIT != "" {
		query = query.Where("buyer_cuit = ?", f.BuyerCUIT)
	}
	if f.SellerCUIT != "" {
		query = query.Where("seller_cuit = ?", f.SellerCUIT)
	}
	if f.ActCode != "" {
		query = query.Where("act_code = ?", f.ActCode)
	}
	if f.From != nil {
		query = query.Where("control_date >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("control_date <= ?", *f.To)
	}
	return query
}
