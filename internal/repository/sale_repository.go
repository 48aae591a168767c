package repository

import (
	"context"

	"github.com/borsibaar/barpos/internal/database"
	"github.com/borsibaar/barpos/internal/models"
	"gorm.io/gorm"
)

// GormSaleRepository is a GORM implementation of SaleRepository
type GormSaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new SaleRepository
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &GormSaleRepository{db: db}
}

// Create creates a sale with its items
func (r *GormSaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	return r.db.WithContext(ctx).Omit("Items.Product").Create(sale).Error
}

// FindByID finds a sale of the organization with items and products
func (r *GormSaleRepository) FindByID(ctx context.Context, organizationID, id uint64) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product").
		Where("organization_id = ? AND id = ?", organizationID, id).
		First(&sale).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

// List retrieves sales newest first with the total count
func (r *GormSaleRepository) List(ctx context.Context, filter SaleFilter) ([]models.Sale, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Where("organization_id = ?", filter.OrganizationID)

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []models.Sale
	if err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product").
		Order("created_at DESC, id DESC").
		Scopes(database.Paginate(filter.Pagination)).
		Find(&sales).Error; err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}
