package dto

import (
	"errors"
	"time"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/shopspring/decimal"
)

// OrganizationRequest is the body for creating or updating an organization
type OrganizationRequest struct {
	Name              string          `json:"name" binding:"required,max=100"`
	PriceIncreaseStep decimal.Decimal `json:"price_increase_step" binding:"gte=0.01"`
	PriceDecreaseStep decimal.Decimal `json:"price_decrease_step" binding:"gte=0.01"`
}

// Validate implements Validatable
func (r *OrganizationRequest) Validate() error {
	if !maxScale(r.PriceIncreaseStep, 2) || !maxScale(r.PriceDecreaseStep, 2) {
		return errors.New("price steps allow at most 2 decimal places")
	}
	return nil
}

// OrganizationSummaryDTO is the short form listed for the onboarding picker
type OrganizationSummaryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// OrganizationDTO represents an organization in API responses
type OrganizationDTO struct {
	ID                uint64          `json:"id"`
	Name              string          `json:"name"`
	PriceIncreaseStep decimal.Decimal `json:"price_increase_step"`
	PriceDecreaseStep decimal.Decimal `json:"price_decrease_step"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToOrganizationDTO converts an Organization model to OrganizationDTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:                org.ID,
		Name:              org.Name,
		PriceIncreaseStep: org.PriceIncreaseStep,
		PriceDecreaseStep: org.PriceDecreaseStep,
		CreatedAt:         org.CreatedAt,
		UpdatedAt:         org.UpdatedAt,
	}
}

// ToOrganizationSummaries converts organizations to their short form
func ToOrganizationSummaries(orgs []models.Organization) []OrganizationSummaryDTO {
	dtos := make([]OrganizationSummaryDTO, len(orgs))
	for i, org := range orgs {
		dtos[i] = OrganizationSummaryDTO{ID: org.ID, Name: org.Name}
	}
	return dtos
}
