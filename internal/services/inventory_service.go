package services

import (
	"context"
	"errors"
	"fmt"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInsufficientStock = apierrors.New(apierrors.KindInvalidInput, "insufficient stock")
	ErrInvalidQuantity   = apierrors.New(apierrors.KindInvalidInput, "quantity must be positive")
)

// InventoryService manages stock levels. Every change is recorded as an
// inventory transaction in the same database transaction as the new quantity.
type InventoryService struct {
	repos *repository.Repositories
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repos *repository.Repositories) *InventoryService {
	return &InventoryService{repos: repos}
}

// StockChangeInput describes a manual stock movement.
type StockChangeInput struct {
	ProductID   uint64
	Quantity    decimal.Decimal
	ReferenceID string
	Notes       string
}

// ListInventory returns every product of principal's organization with its stock.
func (s *InventoryService) ListInventory(ctx context.Context, principal *models.User) ([]models.Product, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	products, err := s.repos.Products.List(ctx, repository.ProductFilter{OrganizationID: orgID})
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return products, nil
}

// ListTransactions returns the stock history of a product, newest first.
func (s *InventoryService) ListTransactions(ctx context.Context, principal *models.User, productID uint64) ([]models.InventoryTransaction, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	inventory, err := s.repos.Inventory.FindByProduct(ctx, orgID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find inventory: %w", err)
	}

	txns, err := s.repos.Inventory.ListTransactions(ctx, inventory.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory transactions: %w", err)
	}
	return txns, nil
}

// AddStock records a purchase.
func (s *InventoryService) AddStock(ctx context.Context, principal *models.User, input StockChangeInput) (*models.Product, error) {
	if !input.Quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	return s.change(ctx, principal, input, func(current decimal.Decimal) (decimal.Decimal, error) {
		return current.Add(input.Quantity), nil
	}, models.InventoryPurchase)
}

// RemoveStock records a removal such as breakage or waste.
func (s *InventoryService) RemoveStock(ctx context.Context, principal *models.User, input StockChangeInput) (*models.Product, error) {
	if !input.Quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	return s.change(ctx, principal, input, func(current decimal.Decimal) (decimal.Decimal, error) {
		if current.LessThan(input.Quantity) {
			return decimal.Zero, ErrInsufficientStock
		}
		return current.Sub(input.Quantity), nil
	}, models.InventoryRemoval)
}

// AdjustStock sets the stock to an absolute count, for example after a stocktake.
// input.Quantity is the new quantity.
func (s *InventoryService) AdjustStock(ctx context.Context, principal *models.User, input StockChangeInput) (*models.Product, error) {
	if input.Quantity.IsNegative() {
		return nil, ErrInvalidQuantity
	}
	return s.change(ctx, principal, input, func(decimal.Decimal) (decimal.Decimal, error) {
		return input.Quantity, nil
	}, models.InventoryAdjustment)
}

func (s *InventoryService) change(
	ctx context.Context,
	principal *models.User,
	input StockChangeInput,
	apply func(current decimal.Decimal) (decimal.Decimal, error),
	txnType models.InventoryTransactionType,
) (*models.Product, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		inventory, err := tx.Inventory.FindByProductForUpdate(ctx, orgID, input.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("failed to lock inventory: %w", err)
		}

		after, err := apply(inventory.Quantity)
		if err != nil {
			return err
		}
		return recordStockChange(ctx, tx, inventory, after, models.InventoryTransaction{
			Type:        txnType,
			ReferenceID: input.ReferenceID,
			Notes:       input.Notes,
			CreatedBy:   principal.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return findProduct(ctx, s.repos, orgID, input.ProductID)
}

// recordStockChange sets inventory to after and writes txn describing the change.
// The caller must hold the inventory row lock.
func recordStockChange(ctx context.Context, tx *repository.Repositories, inventory *models.Inventory, after decimal.Decimal, txn models.InventoryTransaction) error {
	before := inventory.Quantity
	inventory.Quantity = after
	if err := tx.Inventory.UpdateQuantity(ctx, inventory); err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}

	txn.InventoryID = inventory.ID
	txn.QuantityBefore = before
	txn.QuantityAfter = after
	txn.QuantityChange = after.Sub(before)
	if err := tx.Inventory.CreateTransaction(ctx, &txn); err != nil {
		return fmt.Errorf("failed to record inventory transaction: %w", err)
	}
	return nil
}
