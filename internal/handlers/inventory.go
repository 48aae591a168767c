package handlers

import (
	"net/http"

	"github.com/borsibaar/barpos/internal/dto"
	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/services"
	"github.com/gin-gonic/gin"
)

// InventoryHandler serves stock levels and stock movements.
type InventoryHandler struct {
	inventoryService *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// ListInventory returns the stock level of every product
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	products, err := h.inventoryService.ListInventory(c.Request.Context(), user)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	items := make([]dto.InventoryDTO, len(products))
	for i, p := range products {
		items[i] = dto.ToInventoryDTO(p)
	}
	c.JSON(http.StatusOK, items)
}

// ListTransactions returns the stock history of a product
func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := idParam(c, "productId")
	if !ok {
		return
	}

	txns, err := h.inventoryService.ListTransactions(c.Request.Context(), user, productID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryTransactionDTOs(txns))
}

// AddStock increases the stock of a product
func (h *InventoryHandler) AddStock(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.AddStockRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.inventoryService.AddStock(c.Request.Context(), user, services.StockChangeInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	h.respond(c, product, err)
}

// RemoveStock decreases the stock of a product
func (h *InventoryHandler) RemoveStock(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.RemoveStockRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.inventoryService.RemoveStock(c.Request.Context(), user, services.StockChangeInput{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		ReferenceID: req.ReferenceID,
		Notes:       req.Notes,
	})
	h.respond(c, product, err)
}

// AdjustStock sets the stock of a product to a counted quantity
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.AdjustStockRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.inventoryService.AdjustStock(c.Request.Context(), user, services.StockChangeInput{
		ProductID: req.ProductID,
		Quantity:  req.NewQuantity.Decimal,
		Notes:     req.Notes,
	})
	h.respond(c, product, err)
}

func (h *InventoryHandler) respond(c *gin.Context, product *models.Product, err error) {
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryDTO(*product))
}
