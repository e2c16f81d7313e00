package ownership

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy returns a GORM scope restricting a vehicle query to rows owned by
// userID. A vehicle outside the scope is indistinguishable from a nonexistent
// one.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// ThroughVehicle returns a GORM scope restricting a maintenance reminder query
// to reminders whose vehicle belongs to userID. Ownership is always resolved
// by joining through the vehicle, never from a client-supplied owner id.
func ThroughVehicle(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN vehicles ON vehicles.id = maintenance_reminders.vehicle_id").
			Where("vehicles.user_id = ?", userID)
	}
}
