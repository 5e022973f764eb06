package repository

import (
	"context"

	"sellos/internal/model"

	"gorm.io/gorm"
)

type ClientRepository interface {
	FindByCUIT(ctx context.Context, cuit string) (*model.Client, error)
	Search(ctx context.Context, search string, page, limit int) ([]model.Client, int64, error)
	ListAll(ctx context.Context) ([]model.Client, error)
	FindRegistry(ctx context.Context, cuit string) (*model.ClientRegistry, error)
	// LockRegistry reads the registry row with a row lock; call it inside RunInTx.
	LockRegistry(ctx context.Context, cuit string) (*model.ClientRegistry, error)
	SaveRegistry(ctx context.Context, registry *model.ClientRegistry) error
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindByCUIT(ctx context.Context, cuit string) (*model.Client, error) {
	var client model.Client
	if err := GetDB(ctx, r.db).Where("cuit = ?", cuit).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Search(ctx context.Context, search string, page, limit int) ([]model.Client, int64, error) {
	var clients []model.Client
	var total int64

	filtered := func() *gorm.DB {
		query := GetDB(ctx, r.db).Model(&model.Client{})
		if search != "" {
			query = query.Where("business_name ILIKE ? OR cuit LIKE ?", "%"+search+"%", search+"%")
		}
		return query
	}

	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := filtered().Order("business_name ASC").Offset(offset).Limit(limit).Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (r *clientRepository) ListAll(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := GetDB(ctx, r.db).Order("business_name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) FindRegistry(ctx context.Context, cuit string) (*model.ClientRegistry, error) {
	var registry model.ClientRegistry
	if err := GetDB(ctx, r.db).Where("cuit = ?", cuit).First(&registry).Error; err != nil {
		return nil, err
	}
	return &registry, nil
}

func (r *clientRepository) LockRegistry(ctx context.Context, cuit string) (*model.ClientRegistry, error) {
	var registry model.ClientRegistry
	if err := forUpdate(ctx, r.db).Where("cuit = ?", cuit).First(&registry).Error; err != nil {
		return nil, err
	}
	return &registry, nil
}

func (r *clientRepository) SaveRegistry(ctx context.Context, registry *model.ClientRegistry) error {
	return GetDB(ctx, r.db).Save(registry).Error
}
