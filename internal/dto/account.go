package dto

import (
	"errors"

	"github.com/borsibaar/barpos/internal/models"
)

// SignupRequest is the body of POST /api/auth/signup
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email,max=150"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// OnboardingRequest is the body of POST /api/account/onboarding
type OnboardingRequest struct {
	OrganizationID uint64 `json:"organization_id" binding:"required"`
	AcceptTerms    bool   `json:"accept_terms"`
}

// Validate implements Validatable
func (r *OnboardingRequest) Validate() error {
	if !r.AcceptTerms {
		return errors.New("terms must be accepted")
	}
	return nil
}

// AccountSummary is the profile returned by GET /api/account
type AccountSummary struct {
	Email           string           `json:"email"`
	Name            string           `json:"name"`
	Role            *models.RoleName `json:"role"`
	OrganizationID  *uint64          `json:"organization_id"`
	NeedsOnboarding bool             `json:"needs_onboarding"`
}

// ToAccountSummary builds the profile of user
func ToAccountSummary(user models.User) AccountSummary {
	summary := AccountSummary{
		Email:           user.Email,
		Name:            user.Name,
		OrganizationID:  user.OrganizationID,
		NeedsOnboarding: !user.HasOrganization(),
	}
	if user.Role != nil {
		role := user.Role.Name
		summary.Role = &role
	}
	return summary
}
