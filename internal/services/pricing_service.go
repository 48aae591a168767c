package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/borsibaar/barpos/internal/telemetry"
	"gorm.io/gorm"
)

// PricingService lowers dynamic prices back towards their floor between sales.
type PricingService struct {
	repos *repository.Repositories
}

// NewPricingService creates a new PricingService.
func NewPricingService(repos *repository.Repositories) *PricingService {
	return &PricingService{repos: repos}
}

// DecayPrices lowers the current price of every active dynamic-priced product
// by its organization's decrease step, never below the product's floor.
// Each organization is processed in its own transaction; it returns the
// number of products whose price changed.
func (s *PricingService) DecayPrices(ctx context.Context) (int, error) {
	orgs, err := s.repos.Organizations.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list organizations: %w", err)
	}

	changed := 0
	var errs []error
	for i := range orgs {
		if err := ctx.Err(); err != nil {
			return changed, err
		}

		n, err := s.decayOrganization(ctx, &orgs[i])
		if err != nil {
			slog.ErrorContext(ctx, "price decay failed", "organization_id", orgs[i].ID, "error", err)
			errs = append(errs, err)
			continue
		}
		changed += n
	}

	return changed, errors.Join(errs...)
}

func (s *PricingService) decayOrganization(ctx context.Context, org *models.Organization) (int, error) {
	if !org.PriceDecreaseStep.IsPositive() {
		return 0, nil
	}

	changed := 0
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		candidates, err := tx.Products.ListDynamicPriced(ctx, org.ID)
		if err != nil {
			return fmt.Errorf("failed to list dynamic products: %w", err)
		}

		for _, candidate := range candidates {
			// re-read under lock, a concurrent sale may have raised the price
			product, err := tx.Products.FindByIDForUpdate(ctx, org.ID, candidate.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return fmt.Errorf("failed to lock product %d: %w", candidate.ID, err)
			}

			lowered := product.ClampPrice(product.CurrentPrice.Sub(org.PriceDecreaseStep))
			if !lowered.LessThan(product.CurrentPrice) {
				continue
			}
			if err := tx.Products.UpdateCurrentPrice(ctx, product.ID, lowered); err != nil {
				return fmt.Errorf("failed to lower price of product %d: %w", product.ID, err)
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if changed > 0 {
		telemetry.PriceAdjustmentsTotal.WithLabelValues("down").Add(float64(changed))
	}
	return changed, nil
}
