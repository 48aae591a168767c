package dto

import (
	"errors"
	"time"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddStockRequest is the body of POST /api/inventory/add
type AddStockRequest struct {
	ProductID uint64          `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"gt=0"`
	Notes     string          `json:"notes" binding:"max=255"`
}

// RemoveStockRequest is the body of POST /api/inventory/remove
type RemoveStockRequest struct {
	ProductID   uint64          `json:"product_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"gt=0"`
	ReferenceID string          `json:"reference_id" binding:"max=100"`
	Notes       string          `json:"notes" binding:"max=500"`
}

// AdjustStockRequest is the body of POST /api/inventory/adjust
type AdjustStockRequest struct {
	ProductID   uint64              `json:"product_id" binding:"required"`
	NewQuantity decimal.NullDecimal `json:"new_quantity"`
	Notes       string              `json:"notes" binding:"max=500"`
}

// Validate implements Validatable
func (r *AdjustStockRequest) Validate() error {
	if !r.NewQuantity.Valid {
		return errors.New("new_quantity is required")
	}
	if r.NewQuantity.Decimal.IsNegative() {
		return errors.New("new_quantity cannot be negative")
	}
	return nil
}

// InventoryDTO is the stock level of one product
type InventoryDTO struct {
	ProductID    uint64          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Quantity     decimal.Decimal `json:"quantity"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToInventoryDTO builds the stock view of a product with its inventory preloaded
func ToInventoryDTO(product models.Product) InventoryDTO {
	dto := InventoryDTO{
		ProductID:    product.ID,
		ProductName:  product.Name,
		CurrentPrice: product.CurrentPrice,
	}
	if product.Inventory != nil {
		dto.Quantity = product.Inventory.Quantity
		dto.UpdatedAt = product.Inventory.UpdatedAt
	}
	return dto
}

// InventoryTransactionDTO represents one stock movement
type InventoryTransactionDTO struct {
	ID             uint64                          `json:"id"`
	Type           models.InventoryTransactionType `json:"type"`
	QuantityChange decimal.Decimal                 `json:"quantity_change"`
	QuantityBefore decimal.Decimal                 `json:"quantity_before"`
	QuantityAfter  decimal.Decimal                 `json:"quantity_after"`
	ReferenceID    string                          `json:"reference_id,omitempty"`
	Notes          string                          `json:"notes,omitempty"`
	CreatedBy      uuid.UUID                       `json:"created_by"`
	CreatedAt      time.Time                       `json:"created_at"`
}

// ToInventoryTransactionDTOs converts a slice of inventory transactions
func ToInventoryTransactionDTOs(txns []models.InventoryTransaction) []InventoryTransactionDTO {
	dtos := make([]InventoryTransactionDTO, len(txns))
	for i, t := range txns {
		dtos[i] = InventoryTransactionDTO{
			ID:             t.ID,
			Type:           t.Type,
			QuantityChange: t.QuantityChange,
			QuantityBefore: t.QuantityBefore,
			QuantityAfter:  t.QuantityAfter,
			ReferenceID:    t.ReferenceID,
			Notes:          t.Notes,
			CreatedBy:      t.CreatedBy,
			CreatedAt:      t.CreatedAt,
		}
	}
	return dtos
}
