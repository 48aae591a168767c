package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/borsibaar/barpos/internal/constants"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line of a sale
type SaleItemRequest struct {
	ProductID uint64          `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"gt=0"`
}

// SaleRequest is the body of POST /api/sales
type SaleRequest struct {
	BarStationID uint64            `json:"bar_station_id" binding:"required"`
	Items        []SaleItemRequest `json:"items" binding:"required,dive"`
	Notes        string            `json:"notes" binding:"max=1000"`
}

// Validate implements Validatable
func (r *SaleRequest) Validate() error {
	if len(r.Items) == 0 {
		return errors.New("a sale needs at least one item")
	}
	if len(r.Items) > constants.MaxSaleItems {
		return fmt.Errorf("a sale accepts at most %d items", constants.MaxSaleItems)
	}
	for _, item := range r.Items {
		if !maxScale(item.Quantity, 4) {
			return errors.New("quantity allows at most 4 decimal places")
		}
	}
	return nil
}

// SaleItemDTO represents a sale line in API responses
type SaleItemDTO struct {
	ProductID   uint64          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleDTO represents a sale in API responses
type SaleDTO struct {
	ID           uint64          `json:"id"`
	BarStationID uint64          `json:"bar_station_id"`
	UserID       uuid.UUID       `json:"user_id"`
	Notes        string          `json:"notes"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Items        []SaleItemDTO   `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SaleListResponse represents a paginated list of sales
type SaleListResponse struct {
	Sales      []SaleDTO `json:"sales"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
	TotalPages int       `json:"total_pages"`
}

// ToSaleDTO converts a Sale model to SaleDTO
func ToSaleDTO(sale models.Sale) SaleDTO {
	items := make([]SaleItemDTO, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}

	return SaleDTO{
		ID:           sale.ID,
		BarStationID: sale.BarStationID,
		UserID:       sale.UserID,
		Notes:        sale.Notes,
		TotalAmount:  sale.TotalAmount,
		Items:        items,
		CreatedAt:    sale.CreatedAt,
	}
}

// ToSaleListResponse converts sales to a paginated response
func ToSaleListResponse(sales []models.Sale, page, pageSize int, totalCount int64) SaleListResponse {
	dtos := make([]SaleDTO, len(sales))
	for i, sale := range sales {
		dtos[i] = ToSaleDTO(sale)
	}

	return SaleListResponse{
		Sales:      dtos,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: utils.TotalPages(totalCount, pageSize),
	}
}
