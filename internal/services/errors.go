package services

import (
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
)

// Principal errors shared by the access policy and the services.
var (
	ErrNotAuthenticated = apierrors.New(apierrors.KindUnauthenticated, "Not authenticated")
	ErrNoOrganization   = apierrors.New(apierrors.KindInvalidState, "User has no organization")
	ErrAdminRequired    = apierrors.New(apierrors.KindForbidden, "Admin role required")
)

// organizationID returns the organization every query of user is scoped to.
func organizationID(user *models.User) (uint64, error) {
	if user == nil {
		return 0, ErrNotAuthenticated
	}
	if !user.HasOrganization() {
		return 0, ErrNoOrganization
	}
	return *user.OrganizationID, nil
}
