package models

// VehicleBrand and VehicleColor are seeded lookup catalogs served by /data.

type VehicleBrand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:45;not null;uniqueIndex" json:"name"`
}

type VehicleColor struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:45;not null;uniqueIndex" json:"name"`
}
