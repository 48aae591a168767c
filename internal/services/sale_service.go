package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/borsibaar/barpos/internal/telemetry"
	"github.com/borsibaar/barpos/internal/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound         = apierrors.New(apierrors.KindNotFound, "sale not found")
	ErrEmptySale            = apierrors.New(apierrors.KindInvalidInput, "a sale needs at least one item")
	ErrBarStationInactive   = apierrors.New(apierrors.KindInvalidInput, "bar station is not active")
	ErrNotAssignedToStation = apierrors.New(apierrors.KindForbidden, "user is not assigned to this bar station")
	ErrProductInactive      = apierrors.New(apierrors.KindInvalidInput, "product is not active")
)

// SaleService records sales and reads the sales history.
type SaleService struct {
	repos *repository.Repositories
}

// NewSaleService creates a new SaleService.
func NewSaleService(repos *repository.Repositories) *SaleService {
	return &SaleService{repos: repos}
}

// SaleItemInput is one product line of a sale.
type SaleItemInput struct {
	ProductID uint64
	Quantity  decimal.Decimal
}

// SaleInput represents a sale at a bar station.
type SaleInput struct {
	BarStationID uint64
	Items        []SaleItemInput
	Notes        string
}

// saleLine is a merged sale item with its locked rows.
type saleLine struct {
	product   *models.Product
	inventory *models.Inventory
	quantity  decimal.Decimal
}

// CreateSale records a sale at a station. Admins may sell at any station of
// their organization, other members only at stations they are assigned to.
//
// The sale, its items, the stock decrements and the dynamic price increases
// commit together. Lines for the same product are merged.
func (s *SaleService) CreateSale(ctx context.Context, principal *models.User, input SaleInput) (*models.Sale, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptySale
	}

	var sale *models.Sale
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		station, err := findStation(ctx, tx, orgID, input.BarStationID)
		if err != nil {
			return err
		}
		if !station.IsActive {
			return ErrBarStationInactive
		}
		if !principal.IsAdmin() {
			assigned, err := tx.BarStations.IsUserAssigned(ctx, station.ID, principal.ID)
			if err != nil {
				return fmt.Errorf("failed to check station assignment: %w", err)
			}
			if !assigned {
				return ErrNotAssignedToStation
			}
		}

		org, err := tx.Organizations.FindByID(ctx, orgID)
		if err != nil {
			return fmt.Errorf("failed to find organization: %w", err)
		}

		lines, err := lockSaleLines(ctx, tx, orgID, input.Items)
		if err != nil {
			return err
		}

		sale = &models.Sale{
			OrganizationID: orgID,
			BarStationID:   station.ID,
			UserID:         principal.ID,
			Notes:          input.Notes,
			TotalAmount:    decimal.Zero,
			Items:          make([]models.SaleItem, 0, len(lines)),
		}
		for _, line := range lines {
			unitPrice := line.product.CurrentPrice
			total := unitPrice.Mul(line.quantity).Round(4)
			sale.Items = append(sale.Items, models.SaleItem{
				ProductID:  line.product.ID,
				Quantity:   line.quantity,
				UnitPrice:  unitPrice,
				TotalPrice: total,
				Product:    *line.product,
			})
			sale.TotalAmount = sale.TotalAmount.Add(total)
		}

		if err := tx.Sales.Create(ctx, sale); err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		reference := fmt.Sprintf("sale:%d", sale.ID)
		for _, line := range lines {
			after := line.inventory.Quantity.Sub(line.quantity)
			if err := recordStockChange(ctx, tx, line.inventory, after, models.InventoryTransaction{
				Type:        models.InventorySale,
				ReferenceID: reference,
				CreatedBy:   principal.ID,
			}); err != nil {
				return err
			}

			if !line.product.Category.DynamicPricing {
				continue
			}
			raised := line.product.ClampPrice(line.product.CurrentPrice.Add(org.PriceIncreaseStep))
			if raised.Equal(line.product.CurrentPrice) {
				continue
			}
			if err := tx.Products.UpdateCurrentPrice(ctx, line.product.ID, raised); err != nil {
				return fmt.Errorf("failed to raise product price: %w", err)
			}
			telemetry.PriceAdjustmentsTotal.WithLabelValues("up").Inc()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	telemetry.SalesTotal.Inc()
	telemetry.SaleItemsTotal.Add(float64(len(sale.Items)))
	slog.InfoContext(ctx, "sale recorded",
		"sale_id", sale.ID, "organization_id", orgID, "bar_station_id", sale.BarStationID,
		"items", len(sale.Items), "total", sale.TotalAmount.String())

	return sale, nil
}

// mergeSaleItems folds items for the same product into one line and orders
// the lines by product ID. Rows are locked in that order, the same order the
// price decay uses, so concurrent transactions cannot deadlock on them.
func mergeSaleItems(items []SaleItemInput) ([]saleLine, error) {
	var lines []saleLine
	index := make(map[uint64]int, len(items))
	for _, item := range items {
		if !item.Quantity.IsPositive() {
			return nil, ErrInvalidQuantity
		}
		if i, ok := index[item.ProductID]; ok {
			lines[i].quantity = lines[i].quantity.Add(item.Quantity)
			continue
		}
		index[item.ProductID] = len(lines)
		lines = append(lines, saleLine{quantity: item.Quantity, product: &models.Product{ID: item.ProductID}})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].product.ID < lines[j].product.ID
	})
	return lines, nil
}

// lockSaleLines locks each product of the merged lines and its stock row
// and checks the stock covers the requested quantity.
func lockSaleLines(ctx context.Context, tx *repository.Repositories, orgID uint64, items []SaleItemInput) ([]saleLine, error) {
	lines, err := mergeSaleItems(items)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		productID := lines[i].product.ID
		product, err := tx.Products.FindByIDForUpdate(ctx, orgID, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, fmt.Errorf("failed to lock product: %w", err)
		}
		if !product.IsActive {
			return nil, ErrProductInactive
		}

		inventory, err := tx.Inventory.FindByProductForUpdate(ctx, orgID, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInsufficientStock
			}
			return nil, fmt.Errorf("failed to lock inventory: %w", err)
		}
		if inventory.Quantity.LessThan(lines[i].quantity) {
			return nil, ErrInsufficientStock
		}

		lines[i].product = product
		lines[i].inventory = inventory
	}
	return lines, nil
}

// ListSales returns a page of sales, newest first. Admins see every sale of
// the organization, other members only their own.
func (s *SaleService) ListSales(ctx context.Context, principal *models.User, page utils.PaginationParams) ([]models.Sale, int64, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, 0, err
	}

	filter := repository.SaleFilter{OrganizationID: orgID, Pagination: page}
	if !principal.IsAdmin() {
		filter.UserID = &principal.ID
	}

	sales, total, err := s.repos.Sales.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, total, nil
}

// GetSale returns a sale visible to principal.
func (s *SaleService) GetSale(ctx context.Context, principal *models.User, saleID uint64) (*models.Sale, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	sale, err := s.repos.Sales.FindByID(ctx, orgID, saleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	if !principal.IsAdmin() && sale.UserID != principal.ID {
		return nil, ErrSaleNotFound
	}
	return sale, nil
}
