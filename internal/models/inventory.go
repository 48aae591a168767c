package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InventoryTransactionType string

const (
	InventoryPurchase   InventoryTransactionType = "PURCHASE"
	InventoryRemoval    InventoryTransactionType = "REMOVAL"
	InventoryAdjustment InventoryTransactionType = "ADJUSTMENT"
	InventorySale       InventoryTransactionType = "SALE"
)

// Inventory is the stock level of a single product.
type Inventory struct {
	ID             uint64          `gorm:"primarykey" json:"id"`
	OrganizationID uint64          `gorm:"not null;index" json:"organization_id"`
	ProductID      uint64          `gorm:"not null;uniqueIndex" json:"product_id"`
	Quantity       decimal.Decimal `gorm:"type:decimal(16,4);not null" json:"quantity"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// InventoryTransaction records one change to an Inventory row.
type InventoryTransaction struct {
	ID             uint64                   `gorm:"primarykey" json:"id"`
	InventoryID    uint64                   `gorm:"not null;index" json:"inventory_id"`
	Type           InventoryTransactionType `gorm:"type:varchar(20);not null" json:"type"`
	QuantityChange decimal.Decimal          `gorm:"type:decimal(16,4);not null" json:"quantity_change"`
	QuantityBefore decimal.Decimal          `gorm:"type:decimal(16,4);not null" json:"quantity_before"`
	QuantityAfter  decimal.Decimal          `gorm:"type:decimal(16,4);not null" json:"quantity_after"`
	ReferenceID    string                   `gorm:"type:varchar(100)" json:"reference_id"`
	Notes          string                   `gorm:"type:varchar(500)" json:"notes"`
	CreatedBy      uuid.UUID                `gorm:"type:char(36);not null" json:"created_by"`
	CreatedAt      time.Time                `json:"created_at"`
}
