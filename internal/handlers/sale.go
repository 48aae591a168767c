package handlers

import (
	"net/http"

	"github.com/borsibaar/barpos/internal/dto"
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/services"
	"github.com/borsibaar/barpos/internal/utils"
	"github.com/gin-gonic/gin"
)

// SaleHandler serves sales.
type SaleHandler struct {
	saleService *services.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleService *services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// CreateSale records a sale at a bar station
func (h *SaleHandler) CreateSale(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.SaleRequest
	if !bindJSON(c, &req) {
		return
	}

	items := make([]services.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = services.SaleItemInput{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), user, services.SaleInput{
		BarStationID: req.BarStationID,
		Items:        items,
		Notes:        req.Notes,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleDTO(*sale))
}

// ListSales returns sales newest first with pagination
func (h *SaleHandler) ListSales(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	pagination := utils.GetPaginationParams(c)
	sales, total, err := h.saleService.ListSales(c.Request.Context(), user, pagination)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleListResponse(sales, pagination.Page, pagination.Limit, total))
}

// GetSale returns a single sale
func (h *SaleHandler) GetSale(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), user, id)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleDTO(*sale))
}
