package dto

import (
	"time"

	"github.com/google/uuid"
)

type MaintenanceRequest struct {
	VehicleID           string `json:"vehicle_id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Type                string `json:"type"`
	KmTarget            *int   `json:"km_target"`
	DaysTarget          *int   `json:"days_target"`
	LastKmRecord        *int   `json:"last_km_record"`
	LastMaintenanceDate string `json:"last_maintenance_date"` // YYYY-MM-DD
}

// MaintenanceResponse is a reminder row plus the derived remaining values.
// A nil remaining value means the dimension does not apply to the reminder's
// tracking mode; negative values mean overdue.
type MaintenanceResponse struct {
	ID                  uuid.UUID  `json:"id"`
	VehicleID           uuid.UUID  `json:"vehicle_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Type                string     `json:"type"`
	KmTarget            *int       `json:"km_target"`
	DaysTarget          *int       `json:"days_target"`
	LastKmRecord        *int       `json:"last_km_record"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date"`
	UpdateDate          time.Time  `json:"update_date"`
	KmRemaining         *int       `json:"km_remaining"`
	DaysRemaining       *int       `json:"days_remaining"`
}

type MaintenanceListData struct {
	Reminders  []MaintenanceResponse `json:"reminders"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	Total      int64                 `json:"total"`
	TotalPages int                   `json:"total_pages"`
}
