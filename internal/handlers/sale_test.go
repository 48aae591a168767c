package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/borsibaar/barpos/internal/dto"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// bar is an onboarded organization with an admin and a bartender
// assigned to one station selling one dynamically priced product.
type bar struct {
	admin     *client
	bartender *client
	stationID uint64
	productID uint64
}

func setupBar(t *testing.T, env testEnv) bar {
	t.Helper()

	admin := env.signup(t, "owner@example.com", "Owner")
	bartender := env.signup(t, "bartender@example.com", "Bartender")
	org := createOrganization(t, admin, "Student Bar")
	onboard(t, admin, org.ID)
	onboard(t, bartender, org.ID)

	summary := account(t, bartender)
	w := admin.do(http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []dto.UserDTO
	decode(t, w, &users)
	var assignee string
	for _, u := range users {
		if u.Email == summary.Email {
			assignee = u.ID.String()
		}
	}
	require.NotEmpty(t, assignee)

	w = admin.do(http.MethodPost, "/api/bar-stations", map[string]interface{}{
		"name":        "Main bar",
		"description": "Ground floor",
		"is_active":   true,
		"user_ids":    []string{assignee},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var station dto.BarStationDTO
	decode(t, w, &station)
	require.Len(t, station.Users, 1)

	w = admin.do(http.MethodPost, "/api/categories", map[string]interface{}{
		"name":            "Beer",
		"dynamic_pricing": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var category dto.CategoryDTO
	decode(t, w, &category)

	w = admin.do(http.MethodPost, "/api/products", map[string]interface{}{
		"category_id": category.ID,
		"name":        "Lager",
		"base_price":  3.00,
		"min_price":   2.00,
		"max_price":   3.20,
		"is_active":   true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var product dto.ProductDTO
	decode(t, w, &product)
	require.True(t, product.Quantity.IsZero())

	w = admin.do(http.MethodPost, "/api/inventory/add", map[string]interface{}{
		"product_id": product.ID,
		"quantity":   10,
		"notes":      "delivery",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return bar{admin: admin, bartender: bartender, stationID: station.ID, productID: product.ID}
}

func TestSaleHandler_CreateSale(t *testing.T) {
	env := setupTestEnv(t)
	b := setupBar(t, env)

	w := b.bartender.do(http.MethodPost, "/api/sales", map[string]interface{}{
		"bar_station_id": b.stationID,
		"items": []map[string]interface{}{
			{"product_id": b.productID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sale dto.SaleDTO
	decode(t, w, &sale)
	require.Equal(t, "6.00", sale.TotalAmount.StringFixed(2))
	require.Len(t, sale.Items, 1)
	require.Equal(t, "Lager", sale.Items[0].ProductName)

	w = b.bartender.do(http.MethodGet, fmt.Sprintf("/api/products/%d", b.productID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var product dto.ProductDTO
	decode(t, w, &product)
	require.Equal(t, "3.10", product.CurrentPrice.StringFixed(2))
	require.True(t, product.Quantity.Equal(decimal.NewFromInt(8)), product.Quantity.String())

	// The next sale raises the price to the cap.
	w = b.bartender.do(http.MethodPost, "/api/sales", map[string]interface{}{
		"bar_station_id": b.stationID,
		"items": []map[string]interface{}{
			{"product_id": b.productID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	decode(t, w, &sale)
	require.Equal(t, "3.10", sale.TotalAmount.StringFixed(2))

	w = b.bartender.do(http.MethodGet, fmt.Sprintf("/api/products/%d", b.productID), nil)
	decode(t, w, &product)
	require.Equal(t, "3.20", product.CurrentPrice.StringFixed(2))

	w = b.admin.do(http.MethodGet, fmt.Sprintf("/api/inventory/product/%d/transactions", b.productID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []dto.InventoryTransactionDTO
	decode(t, w, &history)
	require.Len(t, history, 3)
	require.Equal(t, models.InventorySale, history[0].Type)
	require.Equal(t, models.InventoryPurchase, history[2].Type)
}

func TestSaleHandler_Rejections(t *testing.T) {
	env := setupTestEnv(t)
	b := setupBar(t, env)

	w := b.bartender.do(http.MethodPost, "/api/sales", map[string]interface{}{
		"bar_station_id": b.stationID,
		"items":          []map[string]interface{}{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = b.bartender.do(http.MethodPost, "/api/sales", map[string]interface{}{
		"bar_station_id": b.stationID,
		"items": []map[string]interface{}{
			{"product_id": b.productID, "quantity": 11},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = b.bartender.do(http.MethodPost, "/api/sales", map[string]interface{}{
		"bar_station_id": b.stationID,
		"items": []map[string]interface{}{
			{"product_id": b.productID, "quantity": -1},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = b.bartender.do(http.MethodPost, "/api/sales", map[string]interface{}{
		"bar_station_id": 9999,
		"items": []map[string]interface{}{
			{"product_id": b.productID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Stock is untouched by the rejected sales.
	w = b.admin.do(http.MethodGet, "/api/inventory", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inventory []dto.InventoryDTO
	decode(t, w, &inventory)
	require.Len(t, inventory, 1)
	require.True(t, inventory[0].Quantity.Equal(decimal.NewFromInt(10)), inventory[0].Quantity.String())
}

func TestSaleHandler_Visibility(t *testing.T) {
	env := setupTestEnv(t)
	b := setupBar(t, env)

	sell := func(c *client) uint64 {
		w := c.do(http.MethodPost, "/api/sales", map[string]interface{}{
			"bar_station_id": b.stationID,
			"items": []map[string]interface{}{
				{"product_id": b.productID, "quantity": 1},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var sale dto.SaleDTO
		decode(t, w, &sale)
		return sale.ID
	}

	adminSale := sell(b.admin)
	sell(b.bartender)
	sell(b.bartender)

	w := b.bartender.do(http.MethodGet, "/api/sales?page=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.SaleListResponse
	decode(t, w, &list)
	require.EqualValues(t, 2, list.TotalCount)
	require.Equal(t, 2, list.TotalPages)
	require.Len(t, list.Sales, 1)

	w = b.admin.do(http.MethodGet, "/api/sales", nil)
	decode(t, w, &list)
	require.EqualValues(t, 3, list.TotalCount)

	w = b.bartender.do(http.MethodGet, fmt.Sprintf("/api/sales/%d", adminSale), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = b.admin.do(http.MethodGet, fmt.Sprintf("/api/sales/%d", adminSale), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCatalog_OrganizationIsolation(t *testing.T) {
	env := setupTestEnv(t)
	b := setupBar(t, env)

	other := env.signup(t, "rival@example.com", "Rival")
	org := createOrganization(t, other, "Rival Bar")
	onboard(t, other, org.ID)

	w := other.do(http.MethodGet, fmt.Sprintf("/api/products/%d", b.productID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = other.do(http.MethodGet, fmt.Sprintf("/api/bar-stations/%d", b.stationID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = other.do(http.MethodPost, "/api/inventory/add", map[string]interface{}{
		"product_id": b.productID,
		"quantity":   5,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = other.do(http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []dto.ProductDTO
	decode(t, w, &products)
	require.Empty(t, products)
}

func TestProductHandler_Validation(t *testing.T) {
	env := setupTestEnv(t)
	b := setupBar(t, env)

	w := b.admin.do(http.MethodGet, fmt.Sprintf("/api/products/%d", b.productID), nil)
	var product dto.ProductDTO
	decode(t, w, &product)

	w = b.admin.do(http.MethodPost, "/api/products", map[string]interface{}{
		"category_id": product.CategoryID,
		"name":        "Free beer",
		"base_price":  0,
		"is_active":   true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Details map[string]string `json:"details"`
	}
	decode(t, w, &body)
	require.Contains(t, body.Details, "base_price")

	w = b.admin.do(http.MethodPost, "/api/products", map[string]interface{}{
		"category_id": product.CategoryID,
		"name":        "Upside down",
		"base_price":  3.00,
		"min_price":   4.00,
		"is_active":   true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = b.admin.do(http.MethodGet, "/api/products?category_id=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = b.admin.do(http.MethodGet, fmt.Sprintf("/api/products?category_id=%d", product.CategoryID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []dto.ProductDTO
	decode(t, w, &products)
	require.Len(t, products, 1)

	w = b.bartender.do(http.MethodDelete, fmt.Sprintf("/api/products/%d", b.productID), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = b.admin.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", product.CategoryID), nil)
	require.Equal(t, http.StatusConflict, w.Code)
}
