package services

import (
	"context"
	"fmt"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
)

// UserService lists the members of an organization.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListOrganizationUsers returns the users of principal's organization.
func (s *UserService) ListOrganizationUsers(ctx context.Context, principal *models.User) ([]models.User, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
