package handlers

import (
	"net/http"

	"github.com/borsibaar/barpos/internal/dto"
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/middleware"
	"github.com/borsibaar/barpos/internal/services"
	"github.com/gin-gonic/gin"
)

// AccountHandler serves the caller's own account.
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// GetAccount returns the caller's profile. Users that have not onboarded
// yet get needs_onboarding=true instead of an error.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	user, err := middleware.ResolvePrincipal(c, false)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountSummary(*user))
}

// CompleteOnboarding joins the caller to an organization.
func (h *AccountHandler) CompleteOnboarding(c *gin.Context) {
	user, err := middleware.ResolvePrincipal(c, false)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	var req dto.OnboardingRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.accountService.CompleteOnboarding(c.Request.Context(), user, req.OrganizationID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
