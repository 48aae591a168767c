package repository

import (
	"context"

	"github.com/borsibaar/barpos/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository is a GORM implementation of InventoryRepository
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByProductForUpdate finds the inventory row of a product and locks it
func (r *GormInventoryRepository) FindByProductForUpdate(ctx context.Context, organizationID, productID uint64) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("organization_id = ? AND product_id = ?", organizationID, productID).
		First(&inventory).Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

// FindByProduct finds the inventory row of a product
func (r *GormInventoryRepository) FindByProduct(ctx context.Context, organizationID, productID uint64) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND product_id = ?", organizationID, productID).
		First(&inventory).Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

// UpdateQuantity sets the quantity of an inventory row
func (r *GormInventoryRepository) UpdateQuantity(ctx context.Context, inventory *models.Inventory) error {
	return r.db.WithContext(ctx).
		Model(inventory).
		Update("quantity", inventory.Quantity).Error
}

// CreateTransaction records an inventory change
func (r *GormInventoryRepository) CreateTransaction(ctx context.Context, txn *models.InventoryTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// ListTransactions lists the history of an inventory row, newest first
func (r *GormInventoryRepository) ListTransactions(ctx context.Context, inventoryID uint64) ([]models.InventoryTransaction, error) {
	var txns []models.InventoryTransaction
	if err := r.db.WithContext(ctx).
		Where("inventory_id = ?", inventoryID).
		Order("created_at DESC, id DESC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
