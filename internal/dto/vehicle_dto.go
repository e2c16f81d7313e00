package dto

import (
	"time"

	"github.com/google/uuid"
)

// VehicleRequest carries the multipart form fields of a vehicle create/update.
// The optional image part is handled separately.
type VehicleRequest struct {
	Name         string
	Brand        string
	Model        string
	Version      string
	Color        string
	LicensePlate string
	Mileage      int
}

type VehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Version      string    `json:"version"`
	Color        string    `json:"color"`
	LicensePlate string    `json:"license_plate"`
	Mileage      int       `json:"mileage"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type VehicleListData struct {
	Vehicles   []VehicleResponse `json:"vehicles"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"total_pages"`
}
