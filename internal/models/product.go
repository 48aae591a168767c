package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinPrice is the price floor used when a product has no explicit minimum.
var DefaultMinPrice = decimal.NewFromFloat(0.05)

type Product struct {
	ID             uint64              `gorm:"primarykey" json:"id"`
	OrganizationID uint64              `gorm:"not null;index" json:"organization_id"`
	CategoryID     uint64              `gorm:"not null;index" json:"category_id"`
	Name           string              `gorm:"type:varchar(120);not null" json:"name"`
	Description    string              `gorm:"type:varchar(1000)" json:"description"`
	BasePrice      decimal.Decimal     `gorm:"type:decimal(19,4);not null" json:"base_price"`
	CurrentPrice   decimal.Decimal     `gorm:"type:decimal(19,4);not null" json:"current_price"`
	MinPrice       decimal.NullDecimal `gorm:"type:decimal(19,4)" json:"min_price"`
	MaxPrice       decimal.NullDecimal `gorm:"type:decimal(19,4)" json:"max_price"`
	IsActive       bool                `gorm:"not null" json:"is_active"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`

	// Relations
	Category  Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Inventory *Inventory `gorm:"foreignKey:ProductID" json:"inventory,omitempty"`
}

// PriceFloor returns the lowest price the product may be sold at.
func (p *Product) PriceFloor() decimal.Decimal {
	if p.MinPrice.Valid {
		return p.MinPrice.Decimal
	}
	return DefaultMinPrice
}

// ClampPrice bounds price to the product's [floor, max] range.
func (p *Product) ClampPrice(price decimal.Decimal) decimal.Decimal {
	if floor := p.PriceFloor(); price.LessThan(floor) {
		price = floor
	}
	if p.MaxPrice.Valid && price.GreaterThan(p.MaxPrice.Decimal) {
		price = p.MaxPrice.Decimal
	}
	return price
}
