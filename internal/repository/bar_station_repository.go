package repository

import (
	"context"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBarStationRepository is a GORM implementation of BarStationRepository
type GormBarStationRepository struct {
	db *gorm.DB
}

// NewBarStationRepository creates a new BarStationRepository
func NewBarStationRepository(db *gorm.DB) BarStationRepository {
	return &GormBarStationRepository{db: db}
}

// Create creates a station together with its user assignments
func (r *GormBarStationRepository) Create(ctx context.Context, station *models.BarStation) error {
	return r.db.WithContext(ctx).Omit("Users.*").Create(station).Error
}

// FindByID finds a station of the organization with its users
func (r *GormBarStationRepository) FindByID(ctx context.Context, organizationID, id uint64) (*models.BarStation, error) {
	var station models.BarStation
	if err := r.db.WithContext(ctx).
		Preload("Users", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("organization_id = ? AND id = ?", organizationID, id).
		First(&station).Error; err != nil {
		return nil, err
	}
	return &station, nil
}

// ListByOrganization lists all stations of the organization
func (r *GormBarStationRepository) ListByOrganization(ctx context.Context, organizationID uint64) ([]models.BarStation, error) {
	var stations []models.BarStation
	if err := r.db.WithContext(ctx).
		Preload("Users", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("organization_id = ?", organizationID).
		Order("name ASC").
		Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

// ListByUser lists the stations of the organization the user is assigned to
func (r *GormBarStationRepository) ListByUser(ctx context.Context, organizationID uint64, userID uuid.UUID) ([]models.BarStation, error) {
	var stations []models.BarStation
	if err := r.db.WithContext(ctx).
		Preload("Users", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Joins("JOIN bar_station_users ON bar_station_users.bar_station_id = bar_stations.id").
		Where("bar_stations.organization_id = ? AND bar_station_users.user_id = ?", organizationID, userID).
		Order("bar_stations.name ASC").
		Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

// Update updates a station and replaces its user assignments
func (r *GormBarStationRepository) Update(ctx context.Context, station *models.BarStation, users []models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(station).
			Select("Name", "Description", "IsActive").
			Updates(station).Error; err != nil {
			return err
		}

		if err := tx.Model(station).Association("Users").Replace(users); err != nil {
			return err
		}
		station.Users = users
		return nil
	})
}

// Delete deletes a station of the organization and its assignments
func (r *GormBarStationRepository) Delete(ctx context.Context, organizationID, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("organization_id = ? AND id = ?", organizationID, id).Delete(&models.BarStation{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Exec("DELETE FROM bar_station_users WHERE bar_station_id = ?", id).Error
	})
}

// IsUserAssigned reports whether the user is assigned to the station
func (r *GormBarStationRepository) IsUserAssigned(ctx context.Context, stationID uint64, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("bar_station_users").
		Where("bar_station_id = ? AND user_id = ?", stationID, userID).
		Count(&count).Error
	return count > 0, err
}
