package dto

import (
	"github.com/borsibaar/barpos/internal/models"
	"github.com/google/uuid"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID             uuid.UUID        `json:"id"`
	Email          string           `json:"email"`
	Name           string           `json:"name"`
	Role           *models.RoleName `json:"role"`
	OrganizationID *uint64          `json:"organization_id"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		OrganizationID: user.OrganizationID,
	}
	if user.Role != nil {
		role := user.Role.Name
		dto.Role = &role
	}
	return dto
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = ToUserDTO(u)
	}
	return dtos
}
