package handlers

import (
	"net/http"

	"github.com/borsibaar/barpos/internal/dto"
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/services"
	"github.com/gin-gonic/gin"
)

// BarStationHandler serves bar station management and assignment lookups.
type BarStationHandler struct {
	stationService *services.BarStationService
}

// NewBarStationHandler creates a new BarStationHandler.
func NewBarStationHandler(stationService *services.BarStationService) *BarStationHandler {
	return &BarStationHandler{stationService: stationService}
}

// ListStations returns every station of the organization
func (h *BarStationHandler) ListStations(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stations, err := h.stationService.ListStations(c.Request.Context(), user)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBarStationDTOs(stations))
}

// ListAssignedStations returns the stations the caller is assigned to
func (h *BarStationHandler) ListAssignedStations(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stations, err := h.stationService.ListAssignedStations(c.Request.Context(), user)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBarStationDTOs(stations))
}

// GetStation returns a single station
func (h *BarStationHandler) GetStation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	station, err := h.stationService.GetStation(c.Request.Context(), user, id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBarStationDTO(*station))
}

// CreateStation creates a station with its user assignments
func (h *BarStationHandler) CreateStation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.BarStationRequest
	if !bindJSON(c, &req) {
		return
	}

	station, err := h.stationService.CreateStation(c.Request.Context(), user, stationInput(req))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBarStationDTO(*station))
}

// UpdateStation replaces a station's fields and assignments
func (h *BarStationHandler) UpdateStation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.BarStationRequest
	if !bindJSON(c, &req) {
		return
	}

	station, err := h.stationService.UpdateStation(c.Request.Context(), user, id, stationInput(req))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBarStationDTO(*station))
}

// DeleteStation deletes a station
func (h *BarStationHandler) DeleteStation(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.stationService.DeleteStation(c.Request.Context(), user, id); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func stationInput(req dto.BarStationRequest) services.BarStationInput {
	return services.BarStationInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    *req.IsActive,
		UserIDs:     req.UserIDs,
	}
}
