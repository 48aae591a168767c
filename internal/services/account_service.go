package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/borsibaar/barpos/internal/telemetry"
	"gorm.io/gorm"
)

var (
	ErrOrganizationNotFound = apierrors.New(apierrors.KindNotFound, "organization not found")
	ErrAdminRoleMissing     = apierrors.New(apierrors.KindConfiguration, "role ADMIN is not seeded")
)

// AccountService handles the signed in user's own account.
type AccountService struct {
	repos *repository.Repositories
}

// NewAccountService creates a new AccountService.
func NewAccountService(repos *repository.Repositories) *AccountService {
	return &AccountService{repos: repos}
}

// CompleteOnboarding joins principal to the organization. The first user to
// join an organization that has no admin becomes its admin.
//
// Calling it again after a successful onboarding is a no-op, whatever the
// organization. The organization row is locked for the duration of the
// transaction so two first joiners cannot both see "no admin yet".
func (s *AccountService) CompleteOnboarding(ctx context.Context, principal *models.User, organizationID uint64) error {
	if principal == nil {
		return ErrNotAuthenticated
	}
	if principal.HasOrganization() {
		telemetry.OnboardingsTotal.WithLabelValues("noop").Inc()
		return nil
	}

	var (
		user    *models.User
		outcome = "member"
	)
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		var err error
		user, err = tx.Users.FindByID(ctx, principal.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotAuthenticated
			}
			return fmt.Errorf("failed to reload user: %w", err)
		}
		if user.HasOrganization() {
			outcome = "noop"
			return nil
		}

		if _, err := tx.Organizations.FindByIDForUpdate(ctx, organizationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrganizationNotFound
			}
			return fmt.Errorf("failed to lock organization: %w", err)
		}

		adminRole, err := tx.Roles.FindByName(ctx, models.RoleAdmin)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAdminRoleMissing
			}
			return fmt.Errorf("failed to look up admin role: %w", err)
		}

		hasAdmin, err := tx.Users.ExistsByOrganizationAndRole(ctx, organizationID, adminRole.ID)
		if err != nil {
			return fmt.Errorf("failed to check organization admins: %w", err)
		}
		if !hasAdmin {
			user.RoleID = &adminRole.ID
			user.Role = adminRole
			outcome = "admin"
		}

		user.OrganizationID = &organizationID
		if err := tx.Users.Save(ctx, user); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	telemetry.OnboardingsTotal.WithLabelValues(outcome).Inc()
	slog.InfoContext(ctx, "user onboarded",
		"user_id", user.ID, "organization_id", *user.OrganizationID, "outcome", outcome)

	principal.OrganizationID = user.OrganizationID
	principal.RoleID = user.RoleID
	principal.Role = user.Role
	return nil
}
