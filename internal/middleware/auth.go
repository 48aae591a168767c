package middleware

import (
	"errors"
	"fmt"

	"github.com/borsibaar/barpos/internal/constants"
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/borsibaar/barpos/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoadPrincipal loads the user referenced by the session and stores it as
// the request principal. Requests without a session, or whose session points
// at a user that no longer exists, continue without a principal.
func LoadPrincipal(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw, ok := session.Get(constants.ContextKeyUserID).(string)
		if !ok {
			c.Next()
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.AbortWith(c, fmt.Errorf("failed to load session user: %w", err))
				return
			}
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyPrincipal, user)
		c.Next()
	}
}

// ResolvePrincipal returns the authenticated user of the request.
// With requireOrganization set, a user that has not onboarded yet is rejected
// with an invalid state error.
func ResolvePrincipal(c *gin.Context, requireOrganization bool) (*models.User, error) {
	value, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return nil, services.ErrNotAuthenticated
	}

	user, ok := value.(*models.User)
	if !ok || user == nil {
		return nil, services.ErrNotAuthenticated
	}

	if requireOrganization && !user.HasOrganization() {
		return nil, services.ErrNoOrganization
	}
	return user, nil
}

// CurrentPrincipal returns the authenticated user, who must belong to an organization.
func CurrentPrincipal(c *gin.Context) (*models.User, error) {
	return ResolvePrincipal(c, true)
}
