package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an authenticated account. OrganizationID is nil until the user onboards.
type User struct {
	ID             uuid.UUID      `gorm:"type:char(36);primarykey" json:"id"`
	Email          string         `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Name           string         `gorm:"type:varchar(100);not null" json:"name"`
	PasswordHash   string         `gorm:"type:varchar(255);not null" json:"-"`
	OrganizationID *uint64        `gorm:"index" json:"organization_id"`
	RoleID         *uint64        `gorm:"index" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Role         *Role         `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

// BeforeCreate assigns a random ID when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HasOrganization reports whether the user has completed onboarding.
func (u *User) HasOrganization() bool {
	return u.OrganizationID != nil
}

// RoleName returns the user's role name, or "" when no role is assigned.
func (u *User) RoleName() RoleName {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.RoleName() == RoleAdmin
}
