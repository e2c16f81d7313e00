package services

import (
	"time"

	"github.com/autoassist/auto-assist-api/internal/models"
)

// DeriveRemaining computes how much distance and time is left before a
// reminder triggers, given the vehicle's current mileage and today's date.
// A nil result means the dimension does not apply to the reminder's tracking
// mode; a missing last_maintenance_date also yields nil days, matching the
// NULL propagation of the source data. Negative values signal an overdue
// reminder and are passed through unclamped.
func DeriveRemaining(r *models.MaintenanceReminder, mileage int, today time.Time) (kmRemaining, daysRemaining *int) {
	if r.TracksKm() {
		target, last := 0, 0
		if r.KmTarget != nil {
			target = *r.KmTarget
		}
		if r.LastKmRecord != nil {
			last = *r.LastKmRecord
		}
		v := target - (mileage - last)
		kmRemaining = &v
	}

	if r.TracksTime() && r.LastMaintenanceDate != nil {
		target := 0
		if r.DaysTarget != nil {
			target = *r.DaysTarget
		}
		v := target - wholeDays(*r.LastMaintenanceDate, today)
		daysRemaining = &v
	}

	return kmRemaining, daysRemaining
}

// wholeDays is the calendar-day difference between two instants, ignoring
// time of day.
func wholeDays(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate).Hours() / 24)
}
