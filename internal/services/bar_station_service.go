package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBarStationNotFound  = apierrors.New(apierrors.KindNotFound, "bar station not found")
	ErrInvalidStationName  = apierrors.New(apierrors.KindInvalidInput, "bar station name cannot be empty")
	ErrInvalidStationUsers = apierrors.New(apierrors.KindInvalidInput, "one or more users do not exist or are not members of the organization")
)

// BarStationService manages the bar stations of an organization.
type BarStationService struct {
	repos *repository.Repositories
}

// NewBarStationService creates a new BarStationService.
func NewBarStationService(repos *repository.Repositories) *BarStationService {
	return &BarStationService{repos: repos}
}

// BarStationInput represents the editable fields of a bar station.
type BarStationInput struct {
	Name        string
	Description string
	IsActive    bool
	UserIDs     []uuid.UUID
}

// ListStations returns every station of principal's organization.
func (s *BarStationService) ListStations(ctx context.Context, principal *models.User) ([]models.BarStation, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	stations, err := s.repos.BarStations.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bar stations: %w", err)
	}
	return stations, nil
}

// ListAssignedStations returns the stations principal is assigned to.
func (s *BarStationService) ListAssignedStations(ctx context.Context, principal *models.User) ([]models.BarStation, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	stations, err := s.repos.BarStations.ListByUser(ctx, orgID, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bar stations: %w", err)
	}
	return stations, nil
}

// GetStation returns a station of principal's organization.
func (s *BarStationService) GetStation(ctx context.Context, principal *models.User, stationID uint64) (*models.BarStation, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}
	return findStation(ctx, s.repos, orgID, stationID)
}

// CreateStation creates a station and assigns the given users to it.
func (s *BarStationService) CreateStation(ctx context.Context, principal *models.User, input BarStationInput) (*models.BarStation, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidStationName
	}

	var station *models.BarStation
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		users, err := resolveStationUsers(ctx, tx, orgID, input.UserIDs)
		if err != nil {
			return err
		}

		station = &models.BarStation{
			OrganizationID: orgID,
			Name:           name,
			Description:    strings.TrimSpace(input.Description),
			IsActive:       input.IsActive,
			Users:          users,
		}
		if err := tx.BarStations.Create(ctx, station); err != nil {
			return fmt.Errorf("failed to create bar station: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return station, nil
}

// UpdateStation updates a station and replaces its user assignments.
func (s *BarStationService) UpdateStation(ctx context.Context, principal *models.User, stationID uint64, input BarStationInput) (*models.BarStation, error) {
	orgID, err := organizationID(principal)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidStationName
	}

	var station *models.BarStation
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		var err error
		station, err = findStation(ctx, tx, orgID, stationID)
		if err != nil {
			return err
		}

		users, err := resolveStationUsers(ctx, tx, orgID, input.UserIDs)
		if err != nil {
			return err
		}

		station.Name = name
		station.Description = strings.TrimSpace(input.Description)
		station.IsActive = input.IsActive
		if err := tx.BarStations.Update(ctx, station, users); err != nil {
			return fmt.Errorf("failed to update bar station: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return station, nil
}

// DeleteStation deletes a station of principal's organization.
func (s *BarStationService) DeleteStation(ctx context.Context, principal *models.User, stationID uint64) error {
	orgID, err := organizationID(principal)
	if err != nil {
		return err
	}

	if err := s.repos.BarStations.Delete(ctx, orgID, stationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBarStationNotFound
		}
		return fmt.Errorf("failed to delete bar station: %w", err)
	}
	return nil
}

func findStation(ctx context.Context, repos *repository.Repositories, orgID, stationID uint64) (*models.BarStation, error) {
	station, err := repos.BarStations.FindByID(ctx, orgID, stationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBarStationNotFound
		}
		return nil, fmt.Errorf("failed to find bar station: %w", err)
	}
	return station, nil
}

// resolveStationUsers loads the users behind ids, all of which must belong to the organization.
func resolveStationUsers(ctx context.Context, repos *repository.Repositories, orgID uint64, ids []uuid.UUID) ([]models.User, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	users, err := repos.Users.FindByIDsInOrganization(ctx, orgID, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to load station users: %w", err)
	}
	if len(users) != len(unique) {
		return nil, ErrInvalidStationUsers
	}
	return users, nil
}
