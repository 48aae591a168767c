package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidOrganizationName = apierrors.New(apierrors.KindInvalidInput, "organization name cannot be empty")

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	orgRepo repository.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		orgRepo: orgRepo,
	}
}

// OrganizationInput represents the editable fields of an organization.
type OrganizationInput struct {
	Name              string
	PriceIncreaseStep decimal.Decimal
	PriceDecreaseStep decimal.Decimal
}

// CreateOrganization creates a new organization. The creator joins it
// separately through onboarding.
func (s *OrganizationService) CreateOrganization(ctx context.Context, input OrganizationInput) (*models.Organization, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidOrganizationName
	}

	org := &models.Organization{
		Name:              name,
		PriceIncreaseStep: input.PriceIncreaseStep,
		PriceDecreaseStep: input.PriceDecreaseStep,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return org, nil
}

// ListOrganizations returns every organization, for picking one to join.
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// GetCurrentOrganization returns the organization of principal.
func (s *OrganizationService) GetCurrentOrganization(ctx context.Context, principal *models.User) (*models.Organization, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return org, nil
}

// UpdateCurrentOrganization updates the name and pricing steps of principal's organization.
func (s *OrganizationService) UpdateCurrentOrganization(ctx context.Context, principal *models.User, input OrganizationInput) (*models.Organization, error) {
	org, err := s.GetCurrentOrganization(ctx, principal)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidOrganizationName
	}

	org.Name = name
	org.PriceIncreaseStep = input.PriceIncreaseStep
	org.PriceDecreaseStep = input.PriceDecreaseStep
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return org, nil
}
