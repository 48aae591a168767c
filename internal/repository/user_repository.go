package repository

import (
	"context"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Role").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Save persists the organization and role of a user
func (r *GormUserRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"organization_id": user.OrganizationID,
			"role_id":         user.RoleID,
		}).Error
}

// ExistsByOrganizationAndRole reports whether any user of the organization holds the role
func (r *GormUserRepository) ExistsByOrganizationAndRole(ctx context.Context, organizationID, roleID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("organization_id = ? AND role_id = ?", organizationID, roleID).
		Count(&count).Error
	return count > 0, err
}

// ListByOrganization lists all users of an organization
func (r *GormUserRepository) ListByOrganization(ctx context.Context, organizationID uint64) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("organization_id = ?", organizationID).
		Order("name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByIDsInOrganization returns the users among ids that belong to the organization
func (r *GormUserRepository) FindByIDsInOrganization(ctx context.Context, organizationID uint64, ids []uuid.UUID) ([]models.User, error) {
	users := []models.User{}
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id IN ?", organizationID, ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
