package repository

import (
	"context"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository is a GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// Create creates a product and its empty inventory row
func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return err
		}

		inventory := &models.Inventory{
			OrganizationID: product.OrganizationID,
			ProductID:      product.ID,
			Quantity:       decimal.Zero,
		}
		if err := tx.Create(inventory).Error; err != nil {
			return err
		}
		product.Inventory = inventory
		return nil
	})
}

// FindByID finds a product of the organization with category and inventory
func (r *GormProductRepository) FindByID(ctx context.Context, organizationID, id uint64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Inventory").
		Where("organization_id = ? AND id = ?", organizationID, id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDForUpdate finds a product of the organization and locks its row.
// The category is preloaded for the dynamic pricing flag.
func (r *GormProductRepository) FindByIDForUpdate(ctx context.Context, organizationID, id uint64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Category").
		Where("organization_id = ? AND id = ?", organizationID, id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// List retrieves products with category and inventory
func (r *GormProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Inventory").
		Where("organization_id = ?", filter.OrganizationID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var products []models.Product
	if err := query.Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListDynamicPriced lists active products of the organization in dynamic pricing categories
func (r *GormProductRepository) ListDynamicPriced(ctx context.Context, organizationID uint64) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.organization_id = ? AND products.is_active = ? AND categories.dynamic_pricing = ?",
			organizationID, true, true).
		Order("products.id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update updates a product
func (r *GormProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).
		Model(product).
		Select("CategoryID", "Name", "Description", "BasePrice", "CurrentPrice", "MinPrice", "MaxPrice", "IsActive").
		Updates(product).Error
}

// UpdateCurrentPrice sets only the current price of a product
func (r *GormProductRepository) UpdateCurrentPrice(ctx context.Context, id uint64, price decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("current_price", price).Error
}

// Delete deletes a product with its inventory and inventory history
func (r *GormProductRepository) Delete(ctx context.Context, organizationID, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inventoryIDs []uint64
		if err := tx.Model(&models.Inventory{}).
			Where("product_id = ?", id).
			Pluck("id", &inventoryIDs).Error; err != nil {
			return err
		}

		result := tx.Where("organization_id = ? AND id = ?", organizationID, id).Delete(&models.Product{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if len(inventoryIDs) > 0 {
			if err := tx.Where("inventory_id IN ?", inventoryIDs).Delete(&models.InventoryTransaction{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", inventoryIDs).Delete(&models.Inventory{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CountSaleItems counts the sale lines that reference the product
func (r *GormProductRepository) CountSaleItems(ctx context.Context, productID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SaleItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}
