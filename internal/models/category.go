package models

import "time"

type Category struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	OrganizationID uint64    `gorm:"not null;uniqueIndex:idx_categories_org_name" json:"organization_id"`
	Name           string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_org_name" json:"name"`
	DynamicPricing bool      `gorm:"not null" json:"dynamic_pricing"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
