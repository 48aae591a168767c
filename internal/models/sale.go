package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Sale struct {
	ID             uint64          `gorm:"primarykey" json:"id"`
	OrganizationID uint64          `gorm:"not null;index" json:"organization_id"`
	BarStationID   uint64          `gorm:"not null;index" json:"bar_station_id"`
	UserID         uuid.UUID       `gorm:"type:char(36);not null;index" json:"user_id"`
	Notes          string          `gorm:"type:varchar(1000)" json:"notes"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"total_amount"`
	CreatedAt      time.Time       `json:"created_at"`

	// Relations
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

type SaleItem struct {
	ID         uint64          `gorm:"primarykey" json:"id"`
	SaleID     uint64          `gorm:"not null;index" json:"sale_id"`
	ProductID  uint64          `gorm:"not null;index" json:"product_id"`
	Quantity   decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"total_price"`

	// Relations
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
