package dto

import (
	"time"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/google/uuid"
)

// BarStationRequest is the body for creating or updating a bar station.
// UserIDs replaces the full assignment list and may be empty.
type BarStationRequest struct {
	Name        string      `json:"name" binding:"required,min=2,max=100"`
	Description string      `json:"description" binding:"max=500"`
	IsActive    *bool       `json:"is_active" binding:"required"`
	UserIDs     []uuid.UUID `json:"user_ids" binding:"required"`
}

// BarStationDTO represents a bar station in API responses
type BarStationDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	Users       []UserDTO `json:"users"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToBarStationDTO converts a BarStation model to BarStationDTO
func ToBarStationDTO(station models.BarStation) BarStationDTO {
	return BarStationDTO{
		ID:          station.ID,
		Name:        station.Name,
		Description: station.Description,
		IsActive:    station.IsActive,
		Users:       ToUserDTOs(station.Users),
		CreatedAt:   station.CreatedAt,
		UpdatedAt:   station.UpdatedAt,
	}
}

// ToBarStationDTOs converts a slice of stations
func ToBarStationDTOs(stations []models.BarStation) []BarStationDTO {
	dtos := make([]BarStationDTO, len(stations))
	for i, s := range stations {
		dtos[i] = ToBarStationDTO(s)
	}
	return dtos
}
