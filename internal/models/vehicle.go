package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle belongs to exactly one user. Image holds the stored filename only;
// the public URL is derived at the response boundary and never persisted.
type Vehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string    `gorm:"size:100" json:"name"`
	Brand        string    `gorm:"size:45;not null" json:"brand"`
	Model        string    `gorm:"size:45;not null" json:"model"`
	Version      string    `gorm:"size:45" json:"version"`
	Color        string    `gorm:"size:45;not null" json:"color"`
	LicensePlate string    `gorm:"size:10" json:"license_plate"`
	Mileage      int       `json:"mileage"`
	Image        *string   `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	User         User      `gorm:"foreignKey:UserID" json:"-"`
}
