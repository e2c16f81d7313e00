package models

import (
	"time"

	"github.com/google/uuid"
)

// Tracking modes controlling which dimensions drive a reminder.
const (
	TrackingKm     = "km"
	TrackingTime   = "time"
	TrackingKmTime = "km_time"
)

func ValidTrackingMode(mode string) bool {
	return mode == TrackingKm || mode == TrackingTime || mode == TrackingKmTime
}

// MaintenanceReminder is reachable only through its vehicle; its effective
// owner is the vehicle's owner.
type MaintenanceReminder struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	VehicleID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Title               string     `gorm:"size:100;not null" json:"title"`
	Description         string     `gorm:"size:255" json:"description"`
	Type                string     `gorm:"size:10;not null" json:"type"`
	KmTarget            *int       `json:"km_target"`
	DaysTarget          *int       `json:"days_target"`
	LastKmRecord        *int       `json:"last_km_record"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"update_date"`
	Vehicle             Vehicle    `gorm:"foreignKey:VehicleID" json:"-"`
}

// TracksKm reports whether the distance dimension applies to this reminder.
func (r *MaintenanceReminder) TracksKm() bool {
	return r.Type == TrackingKm || r.Type == TrackingKmTime
}

// TracksTime reports whether the time dimension applies to this reminder.
func (r *MaintenanceReminder) TracksTime() bool {
	return r.Type == TrackingTime || r.Type == TrackingKmTime
}
