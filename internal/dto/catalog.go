package dto

import (
	"errors"
	"time"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryRequest is the body for creating or updating a category
type CategoryRequest struct {
	Name           string `json:"name" binding:"required,max=50"`
	DynamicPricing *bool  `json:"dynamic_pricing" binding:"required"`
}

// CategoryDTO represents a category in API responses
type CategoryDTO struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	DynamicPricing bool      `json:"dynamic_pricing"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToCategoryDTO converts a Category model to CategoryDTO
func ToCategoryDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:             category.ID,
		Name:           category.Name,
		DynamicPricing: category.DynamicPricing,
		CreatedAt:      category.CreatedAt,
	}
}

// ToCategoryDTOs converts a slice of categories
func ToCategoryDTOs(categories []models.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		dtos[i] = ToCategoryDTO(c)
	}
	return dtos
}

// ProductRequest is the body for creating or updating a product.
// The current price is managed by the server and cannot be set.
type ProductRequest struct {
	CategoryID  uint64              `json:"category_id" binding:"required"`
	Name        string              `json:"name" binding:"required,max=120"`
	Description string              `json:"description" binding:"max=1000"`
	BasePrice   decimal.Decimal     `json:"base_price" binding:"gt=0"`
	MinPrice    decimal.NullDecimal `json:"min_price" binding:"omitempty,gt=0"`
	MaxPrice    decimal.NullDecimal `json:"max_price" binding:"omitempty,gt=0"`
	IsActive    *bool               `json:"is_active" binding:"required"`
}

// Validate implements Validatable
func (r *ProductRequest) Validate() error {
	for _, d := range []decimal.NullDecimal{decimal.NewNullDecimal(r.BasePrice), r.MinPrice, r.MaxPrice} {
		if d.Valid && !maxScale(d.Decimal, 4) {
			return errors.New("prices allow at most 4 decimal places")
		}
	}
	if r.MinPrice.Valid && r.MinPrice.Decimal.GreaterThan(r.BasePrice) {
		return errors.New("min_price cannot exceed base_price")
	}
	if r.MaxPrice.Valid && r.MaxPrice.Decimal.LessThan(r.BasePrice) {
		return errors.New("max_price cannot be below base_price")
	}
	if !r.MinPrice.Valid && r.BasePrice.LessThan(models.DefaultMinPrice) {
		return errors.New("base_price cannot be below the default minimum price")
	}
	return nil
}

// ProductDTO represents a product in API responses
type ProductDTO struct {
	ID             uint64              `json:"id"`
	CategoryID     uint64              `json:"category_id"`
	CategoryName   string              `json:"category_name"`
	DynamicPricing bool                `json:"dynamic_pricing"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	BasePrice      decimal.Decimal     `json:"base_price"`
	CurrentPrice   decimal.Decimal     `json:"current_price"`
	MinPrice       decimal.NullDecimal `json:"min_price"`
	MaxPrice       decimal.NullDecimal `json:"max_price"`
	IsActive       bool                `json:"is_active"`
	Quantity       decimal.Decimal     `json:"quantity"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// ToProductDTO converts a Product model to ProductDTO
func ToProductDTO(product models.Product) ProductDTO {
	dto := ProductDTO{
		ID:             product.ID,
		CategoryID:     product.CategoryID,
		CategoryName:   product.Category.Name,
		DynamicPricing: product.Category.DynamicPricing,
		Name:           product.Name,
		Description:    product.Description,
		BasePrice:      product.BasePrice,
		CurrentPrice:   product.CurrentPrice,
		MinPrice:       product.MinPrice,
		MaxPrice:       product.MaxPrice,
		IsActive:       product.IsActive,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
	if product.Inventory != nil {
		dto.Quantity = product.Inventory.Quantity
	}
	return dto
}

// ToProductDTOs converts a slice of products
func ToProductDTOs(products []models.Product) []ProductDTO {
	dtos := make([]ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = ToProductDTO(p)
	}
	return dtos
}
