package repository

import (
	"context"

	"sellos/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepository interface {
	ListActs(ctx context.Context) ([]model.Act, error)
	FindActByCode(ctx context.Context, code string) (*model.Act, error)
	UpsertActs(ctx context.Context, acts []model.Act) error
	ListCurrencies(ctx context.Context) ([]model.Currency, error)
	UpsertCurrencies(ctx context.Context, currencies []model.Currency) error
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpsertProducts(ctx context.Context, products []model.Product) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListActs(ctx context.Context) ([]model.Act, error) {
	var acts []model.Act
	if err := GetDB(ctx, r.db).Where("is_active = ?", true).Order("code ASC").Find(&acts).Error; err != nil {
		return nil, err
	}
	return acts, nil
}

func (r *catalogRepository) FindActByCode(ctx context.Context, code string) (*model.Act, error) {
	var act model.Act
	if err := GetDB(ctx, r.db).Where("code = ? AND is_active = ?", code, true).First(&act).Error; err != nil {
		return nil, err
	}
	return &act, nil
}

func (r *catalogRepository) UpsertActs(ctx context.Context, acts []model.Act) error {
	if len(acts) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "uses_product", "iva1", "iva2", "stamp_duty_rate",
			"registration_right_rate", "bonus_default", "offset1_default", "offset2_default",
			"is_active", "updated_at",
		}),
	}).Create(&acts).Error
}

func (r *catalogRepository) ListCurrencies(ctx context.Context) ([]model.Currency, error) {
	var currencies []model.Currency
	if err := GetDB(ctx, r.db).Order("code ASC").Find(&currencies).Error; err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *catalogRepository) UpsertCurrencies(ctx context.Context, currencies []model.Currency) error {
	if len(currencies) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&currencies).Error
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := GetDB(ctx, r.db).Order("code ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) UpsertProducts(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}
