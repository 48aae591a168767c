package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Organization struct {
	ID                uint64          `gorm:"primarykey" json:"id"`
	Name              string          `gorm:"type:varchar(100);not null" json:"name"`
	PriceIncreaseStep decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_increase_step"`
	PriceDecreaseStep decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_decrease_step"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
