package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/autoassist/auto-assist-api/internal/dto"
	"github.com/autoassist/auto-assist-api/internal/models"
)

func TestMaintenanceCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)
	owner := seedUser(t, db, "owner@example.com")
	vehicleID := seedVehicle(t, db, owner, func(v *models.Vehicle) { v.Mileage = 7000 })

	created, err := svc.Create(owner, &dto.MaintenanceRequest{
		VehicleID:    vehicleID.String(),
		Title:        "Oil change",
		Type:         models.TrackingKm,
		KmTarget:     intPtr(10000),
		LastKmRecord: intPtr(5000),
	})
	require.NoError(t, err)

	got, err := svc.GetByID(owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Oil change", got.Title)
	require.NotNil(t, got.KmRemaining)
	require.Equal(t, 8000, *got.KmRemaining)
	require.Nil(t, got.DaysRemaining)
}

func TestMaintenanceCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)
	owner := seedUser(t, db, "owner@example.com")
	vehicleID := seedVehicle(t, db, owner, nil)

	var ve *ValidationError

	_, err := svc.Create(owner, &dto.MaintenanceRequest{Title: "Oil change", Type: models.TrackingKm})
	require.ErrorAs(t, err, &ve)

	_, err = svc.Create(owner, &dto.MaintenanceRequest{
		VehicleID: "not-a-uuid", Title: "Oil change", Type: models.TrackingKm,
	})
	require.ErrorAs(t, err, &ve)

	_, err = svc.Create(owner, &dto.MaintenanceRequest{
		VehicleID: vehicleID.String(), Title: "Oil change", Type: "weekly",
	})
	require.ErrorAs(t, err, &ve)

	_, err = svc.Create(owner, &dto.MaintenanceRequest{
		VehicleID: vehicleID.String(), Title: "Oil change", Type: models.TrackingTime,
		LastMaintenanceDate: "01/02/2026",
	})
	require.ErrorAs(t, err, &ve)
}

func TestMaintenanceCreateForeignVehicle(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	aliceVehicle := seedVehicle(t, db, alice, nil)

	// A vehicle outside the caller's scope reads as nonexistent.
	_, err := svc.Create(bob, &dto.MaintenanceRequest{
		VehicleID: aliceVehicle.String(),
		Title:     "Oil change",
		Type:      models.TrackingKm,
		KmTarget:  intPtr(10000),
	})
	require.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestMaintenanceTransitiveOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	vehicleID := seedVehicle(t, db, alice, nil)

	created, err := svc.Create(alice, &dto.MaintenanceRequest{
		VehicleID: vehicleID.String(),
		Title:     "Brake check",
		Type:      models.TrackingKm,
		KmTarget:  intPtr(20000),
	})
	require.NoError(t, err)

	_, err = svc.GetByID(bob, created.ID)
	require.ErrorIs(t, err, ErrReminderNotFound)

	err = svc.Update(bob, created.ID, &dto.MaintenanceRequest{
		VehicleID: vehicleID.String(), Title: "Hijacked", Type: models.TrackingKm,
	})
	require.ErrorIs(t, err, ErrReminderNotFound)

	err = svc.Delete(bob, created.ID)
	require.ErrorIs(t, err, ErrReminderNotFound)

	_, _, _, err = svc.List(bob, MaintenanceFilters{}, 1, 10)
	require.ErrorIs(t, err, ErrNoReminders)
}

func TestMaintenanceListDerivesRemaining(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)
	owner := seedUser(t, db, "owner@example.com")
	vehicleID := seedVehicle(t, db, owner, func(v *models.Vehicle) { v.Mileage = 7000 })

	_, err := svc.Create(owner, &dto.MaintenanceRequest{
		VehicleID:    vehicleID.String(),
		Title:        "Oil change",
		Type:         models.TrackingKm,
		KmTarget:     intPtr(10000),
		LastKmRecord: intPtr(5000),
	})
	require.NoError(t, err)

	yearAgo := time.Now().AddDate(-1, 0, 0).Format("2006-01-02")
	_, err = svc.Create(owner, &dto.MaintenanceRequest{
		VehicleID:           vehicleID.String(),
		Title:               "Insurance renewal",
		Type:                models.TrackingTime,
		DaysTarget:          intPtr(365),
		LastMaintenanceDate: yearAgo,
	})
	require.NoError(t, err)

	reminders, total, totalPages, err := svc.List(owner, MaintenanceFilters{}, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Equal(t, 1, totalPages)
	require.Len(t, reminders, 2)

	byTitle := map[string]dto.MaintenanceResponse{}
	for _, r := range reminders {
		byTitle[r.Title] = r
	}

	oil := byTitle["Oil change"]
	require.NotNil(t, oil.KmRemaining)
	require.Equal(t, 8000, *oil.KmRemaining)
	require.Nil(t, oil.DaysRemaining)

	insurance := byTitle["Insurance renewal"]
	require.Nil(t, insurance.KmRemaining)
	require.NotNil(t, insurance.DaysRemaining)
	require.LessOrEqual(t, *insurance.DaysRemaining, 0, "a year-old date is due or overdue")
}

func TestMaintenanceListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)
	owner := seedUser(t, db, "owner@example.com")
	carA := seedVehicle(t, db, owner, nil)
	carB := seedVehicle(t, db, owner, nil)

	for _, r := range []struct {
		vehicle uuid.UUID
		title   string
	}{
		{carA, "Oil change"},
		{carA, "Tire rotation"},
		{carB, "Oil change"},
	} {
		_, err := svc.Create(owner, &dto.MaintenanceRequest{
			VehicleID: r.vehicle.String(),
			Title:     r.title,
			Type:      models.TrackingKm,
			KmTarget:  intPtr(10000),
		})
		require.NoError(t, err)
	}

	_, total, _, err := svc.List(owner, MaintenanceFilters{VehicleID: carA.String()}, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	reminders, total, _, err := svc.List(owner, MaintenanceFilters{VehicleID: carA.String(), Search: "oil"}, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Oil change", reminders[0].Title)

	_, _, _, err = svc.List(owner, MaintenanceFilters{Search: "timing belt"}, 1, 10)
	require.ErrorIs(t, err, ErrNoReminders)
}

func TestMaintenanceUpdateMoveToForeignVehicle(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	aliceVehicle := seedVehicle(t, db, alice, nil)
	bobVehicle := seedVehicle(t, db, bob, nil)

	created, err := svc.Create(alice, &dto.MaintenanceRequest{
		VehicleID: aliceVehicle.String(),
		Title:     "Oil change",
		Type:      models.TrackingKm,
		KmTarget:  intPtr(10000),
	})
	require.NoError(t, err)

	err = svc.Update(alice, created.ID, &dto.MaintenanceRequest{
		VehicleID: bobVehicle.String(),
		Title:     "Oil change",
		Type:      models.TrackingKm,
		KmTarget:  intPtr(10000),
	})
	require.ErrorIs(t, err, ErrVehicleNotFound)

	var reminder models.MaintenanceReminder
	require.NoError(t, db.First(&reminder, "id = ?", created.ID).Error)
	require.Equal(t, aliceVehicle, reminder.VehicleID)
}

func TestMaintenanceUpdateFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)
	owner := seedUser(t, db, "owner@example.com")
	vehicleID := seedVehicle(t, db, owner, func(v *models.Vehicle) { v.Mileage = 43000 })

	created, err := svc.Create(owner, &dto.MaintenanceRequest{
		VehicleID: vehicleID.String(),
		Title:     "Oil change",
		Type:      models.TrackingKm,
		KmTarget:  intPtr(10000),
	})
	require.NoError(t, err)

	err = svc.Update(owner, created.ID, &dto.MaintenanceRequest{
		VehicleID:           vehicleID.String(),
		Title:               "Oil and filter change",
		Type:                models.TrackingKmTime,
		KmTarget:            intPtr(5000),
		DaysTarget:          intPtr(180),
		LastKmRecord:        intPtr(40000),
		LastMaintenanceDate: "2026-08-01",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Oil and filter change", got.Title)
	require.Equal(t, models.TrackingKmTime, got.Type)
	require.NotNil(t, got.KmRemaining)
	require.Equal(t, 2000, *got.KmRemaining)
	require.NotNil(t, got.DaysRemaining)
}

func TestMaintenanceDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(db)
	owner := seedUser(t, db, "owner@example.com")
	vehicleID := seedVehicle(t, db, owner, nil)

	created, err := svc.Create(owner, &dto.MaintenanceRequest{
		VehicleID: vehicleID.String(),
		Title:     "Oil change",
		Type:      models.TrackingKm,
		KmTarget:  intPtr(10000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(owner, created.ID))

	_, err = svc.GetByID(owner, created.ID)
	require.ErrorIs(t, err, ErrReminderNotFound)
}
