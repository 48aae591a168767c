package handlers

import (
	"net/http"

	"github.com/borsibaar/barpos/internal/dto"
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/services"
	"github.com/gin-gonic/gin"
)

// OrganizationHandler serves organizations and the caller's current organization.
type OrganizationHandler struct {
	orgService *services.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// CreateOrganization creates a new organization
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req dto.OrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.orgService.CreateOrganization(c.Request.Context(), services.OrganizationInput{
		Name:              req.Name,
		PriceIncreaseStep: req.PriceIncreaseStep,
		PriceDecreaseStep: req.PriceDecreaseStep,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationDTO(*org))
}

// ListOrganizations returns all organizations a user can join
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.orgService.ListOrganizations(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organizations": dto.ToOrganizationSummaries(orgs),
	})
}

// GetCurrentOrganization returns the caller's organization
func (h *OrganizationHandler) GetCurrentOrganization(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	org, err := h.orgService.GetCurrentOrganization(c.Request.Context(), user)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}

// UpdateCurrentOrganization updates the caller's organization
func (h *OrganizationHandler) UpdateCurrentOrganization(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.OrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.orgService.UpdateCurrentOrganization(c.Request.Context(), user, services.OrganizationInput{
		Name:              req.Name,
		PriceIncreaseStep: req.PriceIncreaseStep,
		PriceDecreaseStep: req.PriceDecreaseStep,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}
