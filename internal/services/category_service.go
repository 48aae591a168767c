package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = apierrors.New(apierrors.KindNotFound, "category not found")
	ErrCategoryNameTaken   = apierrors.New(apierrors.KindConflict, "a category with this name already exists")
	ErrCategoryInUse       = apierrors.New(apierrors.KindConflict, "category still has products")
	ErrInvalidCategoryName = apierrors.New(apierrors.KindInvalidInput, "category name cannot be empty")
)

// CategoryService manages product categories.
type CategoryService struct {
	repos *repository.Repositories
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repos *repository.Repositories) *CategoryService {
	return &CategoryService{repos: repos}
}

// CategoryInput represents the editable fields of a category.
type CategoryInput struct {
	Name           string
	DynamicPricing bool
}

// ListCategories returns the categories of principal's organization.
func (s *CategoryService) ListCategories(ctx context.Context, principal *models.User) ([]models.Category, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	categories, err := s.repos.Categories.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategory returns a category of principal's organization.
func (s *CategoryService) GetCategory(ctx context.Context, principal *models.User, categoryID uint64) (*models.Category, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	category, err := s.repos.Categories.FindByID(ctx, orgID, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// CreateCategory creates a category. Names are unique within an organization.
func (s *CategoryService) CreateCategory(ctx context.Context, principal *models.User, input CategoryInput) (*models.Category, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidCategoryName
	}

	category := &models.Category{
		OrganizationID: orgID,
		Name:           name,
		DynamicPricing: input.DynamicPricing,
	}
	if err := s.repos.Categories.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// UpdateCategory renames a category or toggles its dynamic pricing.
func (s *CategoryService) UpdateCategory(ctx context.Context, principal *models.User, categoryID uint64, input CategoryInput) (*models.Category, error) {
	category, err := s.GetCategory(ctx, principal, categoryID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidCategoryName
	}

	category.Name = name
	category.DynamicPricing = input.DynamicPricing
	if err := s.repos.Categories.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory deletes a category that no product uses.
func (s *CategoryService) DeleteCategory(ctx context.Context, principal *models.User, categoryID uint64) error {
	category, err := s.GetCategory(ctx, principal, categoryID)
	if err != nil {
		return err
	}

	count, err := s.repos.Categories.CountProducts(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("failed to count category products: %w", err)
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := s.repos.Categories.Delete(ctx, category.OrganizationID, category.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
