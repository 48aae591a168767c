package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound    = apierrors.New(apierrors.KindNotFound, "product not found")
	ErrInvalidProductName = apierrors.New(apierrors.KindInvalidInput, "product name cannot be empty")
	ErrInvalidCategory    = apierrors.New(apierrors.KindInvalidInput, "category does not exist in the organization")
	ErrInvalidPriceBounds = apierrors.New(apierrors.KindInvalidInput, "prices must satisfy min_price <= base_price <= max_price")
	ErrProductHasSales    = apierrors.New(apierrors.KindConflict, "product has recorded sales")
)

// ProductService manages the product catalog.
type ProductService struct {
	repos *repository.Repositories
}

// NewProductService creates a new ProductService.
func NewProductService(repos *repository.Repositories) *ProductService {
	return &ProductService{repos: repos}
}

// ProductInput represents the editable fields of a product.
type ProductInput struct {
	CategoryID  uint64
	Name        string
	Description string
	BasePrice   decimal.Decimal
	MinPrice    decimal.NullDecimal
	MaxPrice    decimal.NullDecimal
	IsActive    bool
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidProductName
	}
	if !in.BasePrice.IsPositive() {
		return ErrInvalidPriceBounds
	}
	floor := models.DefaultMinPrice
	if in.MinPrice.Valid {
		floor = in.MinPrice.Decimal
	}
	if in.BasePrice.LessThan(floor) {
		return ErrInvalidPriceBounds
	}
	if in.MaxPrice.Valid && in.MaxPrice.Decimal.LessThan(in.BasePrice) {
		return ErrInvalidPriceBounds
	}
	return nil
}

// ListProducts returns the products of principal's organization, optionally
// narrowed to one category.
func (s *ProductService) ListProducts(ctx context.Context, principal *models.User, categoryID *uint64) ([]models.Product, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	products, err := s.repos.Products.List(ctx, repository.ProductFilter{
		OrganizationID: orgID,
		CategoryID:     categoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns a product of principal's organization.
func (s *ProductService) GetProduct(ctx context.Context, principal *models.User, productID uint64) (*models.Product, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}
	return findProduct(ctx, s.repos, orgID, productID)
}

// CreateProduct creates a product priced at its base price, with empty stock.
func (s *ProductService) CreateProduct(ctx context.Context, principal *models.User, input ProductInput) (*models.Product, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	var productID uint64
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := checkCategory(ctx, tx, orgID, input.CategoryID); err != nil {
			return err
		}

		product := &models.Product{
			OrganizationID: orgID,
			CategoryID:     input.CategoryID,
			Name:           strings.TrimSpace(input.Name),
			Description:    strings.TrimSpace(input.Description),
			BasePrice:      input.BasePrice,
			CurrentPrice:   input.BasePrice,
			MinPrice:       input.MinPrice,
			MaxPrice:       input.MaxPrice,
			IsActive:       input.IsActive,
		}
		if err := tx.Products.Create(ctx, product); err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		productID = product.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return findProduct(ctx, s.repos, orgID, productID)
}

// UpdateProduct updates a product. Changing the base price resets the current
// price to it; otherwise the current price is kept within the new bounds.
func (s *ProductService) UpdateProduct(ctx context.Context, principal *models.User, productID uint64, input ProductInput) (*models.Product, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		product, err := tx.Products.FindByIDForUpdate(ctx, orgID, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("failed to find product: %w", err)
		}
		if err := checkCategory(ctx, tx, orgID, input.CategoryID); err != nil {
			return err
		}

		if !product.BasePrice.Equal(input.BasePrice) {
			product.CurrentPrice = input.BasePrice
		}
		product.CategoryID = input.CategoryID
		product.Name = strings.TrimSpace(input.Name)
		product.Description = strings.TrimSpace(input.Description)
		product.BasePrice = input.BasePrice
		product.MinPrice = input.MinPrice
		product.MaxPrice = input.MaxPrice
		product.IsActive = input.IsActive
		product.CurrentPrice = product.ClampPrice(product.CurrentPrice)

		if err := tx.Products.Update(ctx, product); err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return findProduct(ctx, s.repos, orgID, productID)
}

// DeleteProduct deletes a product that has never been sold, along with its stock history.
func (s *ProductService) DeleteProduct(ctx context.Context, principal *models.User, productID uint64) error {
	orgID, err := organizationID(principal)
	if err != nil {
		return err
	}

	return s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := findProduct(ctx, tx, orgID, productID); err != nil {
			return err
		}

		sold, err := tx.Products.CountSaleItems(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to count product sales: %w", err)
		}
		if sold > 0 {
			return ErrProductHasSales
		}

		if err := tx.Products.Delete(ctx, orgID, productID); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
}

func findProduct(ctx context.Context, repos *repository.Repositories, orgID, productID uint64) (*models.Product, error) {
	product, err := repos.Products.FindByID(ctx, orgID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}

func checkCategory(ctx context.Context, repos *repository.Repositories, orgID, categoryID uint64) error {
	if _, err := repos.Categories.FindByID(ctx, orgID, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCategory
		}
		return fmt.Errorf("failed to find category: %w", err)
	}
	return nil
}
